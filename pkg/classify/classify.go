// Package classify walks a Markdown document line by line and labels each
// line as blank, a horizontal rule, part of a fenced code block, or text.
package classify

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/mdblock/internal/logging"
	"github.com/yaklabco/mdblock/pkg/blockscan"
	"github.com/yaklabco/mdblock/pkg/langdetect"
	"github.com/yaklabco/mdblock/pkg/mdast"
)

// cancelCheckInterval is how many lines are classified between context checks.
const cancelCheckInterval = 1024

// lineTrim is the set of bytes trimmed from an info string.
const lineTrim = " \t\r\n"

// Options controls classification.
type Options struct {
	// DetectLanguages inspects fence bodies when the info string names no language.
	DetectLanguages bool
}

// classifier holds the walk state for a single document.
type classifier struct {
	content []byte
	opts    Options
	doc     *Document
	open    *Fence
}

// Classify labels every line of content.
// Content is referenced by the returned document, not copied.
func Classify(ctx context.Context, path string, content []byte, opts Options) (*Document, error) {
	snapshot := mdast.NewFileSnapshot(path, content)

	c := &classifier{
		content: content,
		opts:    opts,
		doc: &Document{
			Path:     path,
			Snapshot: snapshot,
			Lines:    make([]Line, 0, snapshot.LineCount()),
			Counts:   make(map[Kind]int),
		},
	}

	offset := 0
	for offset < len(content) {
		if len(c.doc.Lines)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("classify %s: %w", path, err)
			}
		}

		offset = c.classifyLine(offset)
	}

	if c.open != nil {
		c.open.BodyEnd = len(content)
		c.finishFence()
		logging.ForFile(ctx, path).Debug("unclosed code fence",
			logging.FieldLine, c.doc.Fences[len(c.doc.Fences)-1].OpenLine)
	}

	return c.doc, nil
}

// classifyLine labels the line starting at offset and returns the offset of the next line.
func (c *classifier) classifyLine(offset int) int {
	view := c.lineView(offset)
	number, _ := c.doc.Snapshot.LineAt(offset)
	line := Line{
		Number: number,
		Start:  offset,
		End:    offset + len(view),
	}

	if c.open != nil {
		c.classifyFenced(&line, view)
	} else {
		c.classifyOutside(&line, view)
	}

	c.doc.Lines = append(c.doc.Lines, line)
	c.doc.Counts[line.Kind]++

	return line.End
}

// lineView returns content from offset through the next newline, inclusive.
func (c *classifier) lineView(offset int) []byte {
	rest := c.content[offset:]
	if idx := bytes.IndexByte(rest, '\n'); idx >= 0 {
		return rest[:idx+1]
	}
	return rest
}

func (c *classifier) classifyOutside(line *Line, view []byte) {
	if _, ok := blockscan.MatchBlankLine(view); ok {
		line.Kind = KindBlank
		return
	}

	if _, ok := blockscan.MatchHorizontalRule(withoutCR(view)); ok {
		line.Kind = KindRule
		line.RuleChar = string(blockscan.SkipPrefix(view)[:1])
		return
	}

	if m, ok := blockscan.MatchCodeFence(view); ok {
		info := string(bytes.Trim(m.Remainder, lineTrim))

		// A backtick fence cannot carry a backtick in its info string.
		if m.Char == blockscan.Backtick && strings.IndexByte(info, '`') >= 0 {
			line.Kind = KindText
			return
		}

		line.Kind = KindFenceOpen
		line.FenceChar = m.Char
		line.FenceLength = m.Length
		line.Info = info

		c.open = &Fence{
			OpenLine:  line.Number,
			Char:      m.Char,
			Length:    m.Length,
			Info:      info,
			BodyStart: line.End,
		}
		return
	}

	line.Kind = KindText
}

func (c *classifier) classifyFenced(line *Line, view []byte) {
	m, ok := blockscan.MatchCodeFence(view)
	if !ok || m.Char != c.open.Char || m.Length < c.open.Length || !isBlankRemainder(m.Remainder) {
		line.Kind = KindCode
		return
	}

	line.Kind = KindFenceClose
	line.FenceChar = m.Char
	line.FenceLength = m.Length

	c.open.CloseLine = line.Number
	c.open.Closed = true
	c.open.BodyEnd = line.Start
	c.finishFence()
}

// finishFence resolves the open fence's language and records it.
func (c *classifier) finishFence() {
	fence := c.open
	c.open = nil

	body := c.content[fence.BodyStart:fence.BodyEnd]
	fence.Language = langdetect.Resolve(fence.Info, body, c.opts.DetectLanguages)

	c.doc.Fences = append(c.doc.Fences, *fence)
}

// isBlankRemainder reports whether the rest of a closing fence line is empty or whitespace.
func isBlankRemainder(rest []byte) bool {
	if len(rest) == 0 {
		return true
	}
	_, ok := blockscan.MatchBlankLine(rest)
	return ok
}

// withoutCR drops the carriage return of a CRLF ending, or of a final line
// that ends in a bare CR, so rules in Windows files are recognized.
func withoutCR(view []byte) []byte {
	body := bytes.TrimSuffix(view, []byte("\n"))
	if bytes.HasSuffix(body, []byte("\r")) {
		return body[:len(body)-1]
	}
	return view
}
