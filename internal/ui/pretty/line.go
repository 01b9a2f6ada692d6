package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdblock/pkg/classify"
	"github.com/yaklabco/mdblock/pkg/parser/goldmark"
)

// kindColumnWidth pads kind names so details line up.
const kindColumnWidth = 11

// FormatLine formats one classified line as "path:line: kind  detail".
func (s *Styles) FormatLine(path string, line classify.Line) string {
	var b strings.Builder

	b.WriteString(s.FilePath.Render(path))
	b.WriteString(s.Location.Render(fmt.Sprintf(":%d:", line.Number)))
	b.WriteString(" ")

	name := line.Kind.String()
	detail := s.lineDetail(line)
	if detail == "" {
		b.WriteString(s.KindStyle(line.Kind).Render(name))
	} else {
		b.WriteString(s.KindStyle(line.Kind).Render(fmt.Sprintf("%-*s", kindColumnWidth, name)))
		b.WriteString(" ")
		b.WriteString(detail)
	}

	b.WriteString("\n")
	return b.String()
}

// lineDetail describes the delimiter of a rule or fence line.
func (s *Styles) lineDetail(line classify.Line) string {
	switch line.Kind {
	case classify.KindRule:
		return s.Dim.Render("char=") + line.RuleChar
	case classify.KindFenceOpen, classify.KindFenceClose:
		detail := strings.Repeat(line.FenceChar.String(), line.FenceLength)
		if line.Info != "" {
			detail += " " + s.Info.Render(line.Info)
		}
		return detail
	default:
		return ""
	}
}

// FormatFence formats a fence as "path:open-close lang (info)".
func (s *Styles) FormatFence(path string, fence classify.Fence) string {
	span := fmt.Sprintf(":%d-%d", fence.OpenLine, fence.CloseLine)
	if !fence.Closed {
		span = fmt.Sprintf(":%d-EOF", fence.OpenLine)
	}

	lang := fence.Language
	if lang == "" {
		lang = "-"
	}

	out := s.FilePath.Render(path) + s.Location.Render(span) + " " + s.Language.Render(lang)
	if !fence.Closed {
		out += " " + s.Warning.Render("unclosed")
	}
	return out + "\n"
}

// FormatDisagreement formats a goldmark disagreement.
func (s *Styles) FormatDisagreement(d goldmark.Disagreement) string {
	loc := s.FilePath.Render(d.Path)
	if d.Line > 0 {
		loc += s.Location.Render(fmt.Sprintf(":%d", d.Line))
	}

	return fmt.Sprintf("%s: %s classifier=%s goldmark=%s\n",
		loc, s.Warning.Render(d.Kind), d.Classifier, d.Goldmark)
}

// FormatFileError formats a file that could not be processed.
func (s *Styles) FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s: %s\n", s.FilePath.Render(path), s.Error.Render(fmt.Sprintf("error: %v", err)))
}
