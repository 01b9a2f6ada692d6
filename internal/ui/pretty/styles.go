// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/mdblock/pkg/classify"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Line kinds
	Blank      lipgloss.Style
	Rule       lipgloss.Style
	FenceOpen  lipgloss.Style
	Code       lipgloss.Style
	FenceClose lipgloss.Style
	Text       lipgloss.Style

	// Line components
	FilePath lipgloss.Style
	Location lipgloss.Style
	Info     lipgloss.Style
	Language lipgloss.Style

	// Status
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style

	// Summary and table
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	TableHeader  lipgloss.Style
	TableBorder  lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }

	return &Styles{
		Blank:      fg("8"),
		Rule:       fg("13").Bold(true),
		FenceOpen:  fg("14").Bold(true),
		Code:       fg("7"),
		FenceClose: fg("14"),
		Text:       lipgloss.NewStyle(),

		FilePath: lipgloss.NewStyle().Bold(true),
		Location: fg("8"),
		Info:     fg("11"),
		Language: fg("10").Italic(true),

		Error:   fg("9").Bold(true),
		Warning: fg("11").Bold(true),
		Success: fg("10").Bold(true),
		Failure: fg("9").Bold(true),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		TableHeader:  fg("7").Bold(true),
		TableBorder:  fg("8"),

		Dim:  fg("8"),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Blank:        plain,
		Rule:         plain,
		FenceOpen:    plain,
		Code:         plain,
		FenceClose:   plain,
		Text:         plain,
		FilePath:     plain,
		Location:     plain,
		Info:         plain,
		Language:     plain,
		Error:        plain,
		Warning:      plain,
		Success:      plain,
		Failure:      plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		TableHeader:  plain,
		TableBorder:  plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// KindStyle returns the style used for a line kind.
func (s *Styles) KindStyle(kind classify.Kind) lipgloss.Style {
	switch kind {
	case classify.KindBlank:
		return s.Blank
	case classify.KindRule:
		return s.Rule
	case classify.KindFenceOpen:
		return s.FenceOpen
	case classify.KindCode:
		return s.Code
	case classify.KindFenceClose:
		return s.FenceClose
	default:
		return s.Text
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
