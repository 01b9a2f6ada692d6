package pretty

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yaklabco/mdblock/pkg/runner"
)

// FenceTableHeaders are the column titles of the fence table.
//
//nolint:gochecknoglobals // Read-only lookup table.
var FenceTableHeaders = []string{"FILE", "LINES", "BODY", "FENCE", "INFO", "LANGUAGE"}

// PathFunc shortens a path for display.
type PathFunc func(string) string

// FormatFenceTable renders every fence in result as a bordered table.
// A table wider than maxWidth is squeezed to fit; 0 means unlimited.
// Returns "" when there are no fences.
func (s *Styles) FormatFenceTable(result *runner.Result, display PathFunc, maxWidth int) string {
	if result == nil {
		return ""
	}
	if display == nil {
		display = func(p string) string { return p }
	}

	var rows [][]string
	var unclosed []bool

	for _, file := range result.Files {
		if file.Document == nil {
			continue
		}
		lastLine := len(file.Document.Lines)
		for _, fence := range file.Document.Fences {
			span := strconv.Itoa(fence.OpenLine) + "-"
			if fence.Closed {
				span += strconv.Itoa(fence.CloseLine)
			} else {
				span += "EOF"
			}

			lang := fence.Language
			if lang == "" {
				lang = "-"
			}

			rows = append(rows, []string{
				display(file.Path),
				span,
				strconv.Itoa(fence.BodyLines(lastLine)),
				fence.Char.String() + "x" + strconv.Itoa(fence.Length),
				fence.Info,
				lang,
			})
			unclosed = append(unclosed, !fence.Closed)
		}
	}

	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.TableBorder).
		Headers(FenceTableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return s.TableHeader.Padding(0, 1)
			case unclosed[row]:
				return s.Warning.Padding(0, 1)
			default:
				return cell
			}
		})

	out := t.Render()
	if maxWidth > 0 && lipgloss.Width(out) > maxWidth {
		out = t.Width(maxWidth).Render()
	}

	return out + "\n"
}
