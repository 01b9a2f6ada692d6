package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdblock/internal/ui/pretty"
	"github.com/yaklabco/mdblock/pkg/classify"
)

// minFlagGap is the run of spaces pflag places between a flag and its usage.
const minFlagGap = 2

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	Description lipgloss.Style
	Example     lipgloss.Style
	Dim         lipgloss.Style

	// kind renders a line kind name in the color scan output uses.
	kind func(classify.Kind) lipgloss.Style
}

// NewHelpStyles creates help styles based on color mode. Kind names share
// their palette with the scan reporters.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	output := pretty.NewStyles(colorEnabled)
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{
			Command: plain, Heading: plain, Subcommand: plain, Flag: plain,
			Description: plain, Example: plain, Dim: plain,
			kind: output.KindStyle,
		}
	}

	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return &HelpStyles{
		Command:     fg("14").Bold(true),
		Heading:     fg("11").Bold(true),
		Subcommand:  fg("10"),
		Flag:        fg("12"),
		Description: lipgloss.NewStyle(),
		Example:     fg("8"),
		Dim:         fg("8"),
		kind:        output.KindStyle,
	}
}

// HelpFormatter provides styled help output for Cobra commands.
type HelpFormatter struct {
	styles *HelpStyles
}

// NewHelpFormatter creates a new help formatter with the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer))}
}

// ApplyToCommand installs the styled help and usage functions on cmd.
// Subcommands inherit them through Cobra's parent lookup.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	usage := template.Must(template.New("usage").Funcs(h.funcs()).Parse(usageTemplate))
	help := template.Must(template.Must(usage.Clone()).New("help").Parse(helpTemplate))

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		if err := usage.Execute(command.OutOrStdout(), command); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := help.ExecuteTemplate(command.OutOrStdout(), "help", command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func (h *HelpFormatter) funcs() template.FuncMap {
	s := h.styles
	return template.FuncMap{
		"command":     s.Command.Render,
		"heading":     s.Heading.Render,
		"subcommand":  s.Subcommand.Render,
		"description": s.Description.Render,
		"example":     s.Example.Render,
		"dim":         s.Dim.Render,
		"flags":       h.flagUsages,
		"kinds":       h.kindLegend,
		"isRoot":      func(c *cobra.Command) bool { return !c.HasParent() },
		"rpad":        func(str string, n int) string { return fmt.Sprintf("%-*s", n, str) },
		"join":        strings.Join,
		"trim": func(str string) string {
			lines := strings.Split(str, "\n")
			for i, line := range lines {
				lines[i] = strings.TrimRight(line, " \t")
			}
			return strings.Join(lines, "\n")
		},
	}
}

const usageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ description .Short }}{{end}}{{end}}
{{- end}}

{{- if isRoot .}}

{{ heading "Line Kinds:" }}
{{ kinds }}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ command .CommandPath }}{{if .Version}} {{ dim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ trim . }}

{{end}}{{ template "usage" . }}`

// kindLegend lists every line kind in its output color.
func (h *HelpFormatter) kindLegend() string {
	names := make([]string, 0, len(classify.AllKinds()))
	for _, kind := range classify.AllKinds() {
		names = append(names, h.styles.kind(kind).Render(kind.String()))
	}
	return "  " + strings.Join(names, "  ")
}

// flagUsages styles pflag's usage block one line at a time.
func (h *HelpFormatter) flagUsages(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine styles "  -j, --jobs int   usage" as flags, type, and usage.
// Lines that do not have that shape, such as wrapped usage, pass through.
func (h *HelpFormatter) styleFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	flagPart, usage, ok := splitFlagLine(trimmed)
	if !ok {
		return line
	}

	tokens := strings.Fields(flagPart)
	for i, token := range tokens {
		if !strings.HasPrefix(token, "-") {
			tokens[i] = h.styles.Dim.Render(token)
			continue
		}
		name, comma := strings.CutSuffix(token, ",")
		tokens[i] = h.styles.Flag.Render(name)
		if comma {
			tokens[i] += ","
		}
	}

	return indent + strings.Join(tokens, " ") + "   " + h.styles.Description.Render(usage)
}

// splitFlagLine splits at the first gap of minFlagGap or more spaces.
func splitFlagLine(line string) (string, string, bool) {
	gap := strings.Repeat(" ", minFlagGap)
	idx := strings.Index(line, gap)
	if idx < 0 {
		return "", "", false
	}

	usage := strings.TrimLeft(line[idx:], " ")
	if usage == "" {
		return "", "", false
	}
	return line[:idx], usage, true
}
