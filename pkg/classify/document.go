package classify

import (
	"github.com/yaklabco/mdblock/pkg/blockscan"
	"github.com/yaklabco/mdblock/pkg/mdast"
)

// Line is one classified line of a document.
type Line struct {
	// Number is the 1-based line number.
	Number int `json:"line"`

	// Kind is the line's classification.
	Kind Kind `json:"kind"`

	// Start and End are byte offsets; End includes the line terminator.
	Start int `json:"start"`
	End   int `json:"end"`

	// RuleChar is the item character of a rule line.
	RuleChar string `json:"rule_char,omitempty"`

	// FenceChar, FenceLength and Info describe fence open and close lines.
	FenceChar   blockscan.FenceChar `json:"fence_char,omitempty"`
	FenceLength int                 `json:"fence_length,omitempty"`
	Info        string              `json:"info,omitempty"`
}

// Fence is a fenced code block from its opening line to its closing line.
type Fence struct {
	// OpenLine is the 1-based line of the opening fence.
	OpenLine int `json:"open_line"`

	// CloseLine is the 1-based line of the closing fence, or 0 when unclosed.
	CloseLine int `json:"close_line,omitempty"`

	Char     blockscan.FenceChar `json:"char"`
	Length   int                 `json:"length"`
	Info     string              `json:"info,omitempty"`
	Language string              `json:"language,omitempty"`

	// Closed is false for a fence that runs to the end of the document.
	Closed bool `json:"closed"`

	// BodyStart and BodyEnd delimit the fenced content in the document.
	BodyStart int `json:"-"`
	BodyEnd   int `json:"-"`
}

// BodyLines returns the number of content lines inside the fence.
func (f Fence) BodyLines(lastLine int) int {
	end := f.CloseLine
	if !f.Closed {
		end = lastLine + 1
	}
	if n := end - f.OpenLine - 1; n > 0 {
		return n
	}
	return 0
}

// Document is the classification of one Markdown file.
type Document struct {
	Path     string
	Snapshot *mdast.FileSnapshot
	Lines    []Line
	Fences   []Fence
	Counts   map[Kind]int
}

// LinesOf returns the lines whose kind is one of kinds, in document order.
// With no kinds, every line is returned.
func (d *Document) LinesOf(kinds ...Kind) []Line {
	if len(kinds) == 0 {
		return d.Lines
	}

	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}

	var out []Line
	for _, line := range d.Lines {
		if want[line.Kind] {
			out = append(out, line)
		}
	}
	return out
}

// UnclosedFences returns the number of fences that reach the end of the document.
func (d *Document) UnclosedFences() int {
	n := 0
	for _, f := range d.Fences {
		if !f.Closed {
			n++
		}
	}
	return n
}

// Text returns the bytes of a line without its terminator.
func (d *Document) Text(line Line) []byte {
	return d.Snapshot.LineContent(line.Number)
}
