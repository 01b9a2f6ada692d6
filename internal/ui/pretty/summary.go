package pretty

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/mdblock/pkg/classify"
	"github.com/yaklabco/mdblock/pkg/runner"
)

const (
	summaryDividerWidth = 40
	summaryLabelWidth   = 18
	unknownLanguage     = "(none)"
)

// plural returns word with an "s" unless n is 1.
func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "120 lines in 3 files: 2 rules, 4 fences (1 unclosed)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesProcessed == 0 && stats.FilesErrored == 0 {
		return s.Dim.Render("No Markdown files found") + "\n"
	}

	rules := stats.ByKind[classify.KindRule]
	msg := fmt.Sprintf("%d %s in %d %s: %d %s, %d %s",
		stats.Lines, plural(stats.Lines, "line"),
		stats.FilesProcessed, plural(stats.FilesProcessed, "file"),
		rules, plural(rules, "rule"),
		stats.Fences, plural(stats.Fences, "fence"))

	if stats.UnclosedFences > 0 {
		msg += " " + s.Warning.Render(fmt.Sprintf("(%d unclosed)", stats.UnclosedFences))
	}
	if stats.FilesErrored > 0 {
		msg += ", " + s.Error.Render(fmt.Sprintf("%d %s failed", stats.FilesErrored, plural(stats.FilesErrored, "file")))
	}

	return msg + "\n"
}

// FormatSummary formats run statistics as a summary block with per-kind and
// per-language totals.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var b strings.Builder

	row := func(label string, value string) {
		b.WriteString(fmt.Sprintf("  %-*s %s\n", summaryLabelWidth, label+":", value))
	}

	b.WriteString(s.SummaryTitle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", summaryDividerWidth))
	b.WriteString("\n")

	row("Files classified", s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)))
	if stats.FilesErrored > 0 {
		row("Files failed", s.Failure.Render(strconv.Itoa(stats.FilesErrored)))
	}
	if stats.FilesStale > 0 {
		row("Files changed", s.Warning.Render(strconv.Itoa(stats.FilesStale)))
	}
	row("Lines", s.SummaryValue.Render(strconv.Itoa(stats.Lines)))

	b.WriteString("\n")
	for _, kind := range classify.AllKinds() {
		row(kind.String(), s.KindStyle(kind).Render(strconv.Itoa(stats.ByKind[kind])))
	}

	b.WriteString("\n")
	row("Fences", s.SummaryValue.Render(strconv.Itoa(stats.Fences)))
	if stats.UnclosedFences > 0 {
		row("Unclosed", s.Warning.Render(strconv.Itoa(stats.UnclosedFences)))
	}

	for _, lang := range sortedLanguages(stats.Languages) {
		name := lang
		if name == "" {
			name = unknownLanguage
		}
		row("  "+name, s.Language.Render(strconv.Itoa(stats.Languages[lang])))
	}

	if stats.Disagreements > 0 {
		b.WriteString("\n")
		row("Disagreements", s.Failure.Render(strconv.Itoa(stats.Disagreements)))
	}

	return b.String()
}

// sortedLanguages orders languages by descending count, then name.
func sortedLanguages(counts map[string]int) []string {
	langs := make([]string, 0, len(counts))
	for lang := range counts {
		langs = append(langs, lang)
	}

	slices.SortFunc(langs, func(a, b string) int {
		if counts[a] != counts[b] {
			return counts[b] - counts[a]
		}
		return strings.Compare(a, b)
	})

	return langs
}
