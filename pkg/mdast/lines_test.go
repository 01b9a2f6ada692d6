package mdast_test

import (
	"testing"

	"github.com/yaklabco/mdblock/pkg/mdast"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []mdast.LineInfo
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []mdast.LineInfo{},
		},
		{
			name:    "rule without newline",
			content: "***",
			expected: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 3, EndOffset: 3},
			},
		},
		{
			name:    "rule with LF",
			content: "***\n",
			expected: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 3, EndOffset: 4},
				{StartOffset: 4, NewlineStart: 4, EndOffset: 4},
			},
		},
		{
			name:    "blank CRLF line between fences",
			content: "```\r\n\r\n```",
			expected: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 3, EndOffset: 5},
				{StartOffset: 5, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 10, EndOffset: 10},
			},
		},
		{
			name:    "lone carriage return is content",
			content: "a\rb\n",
			expected: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 3, EndOffset: 4},
				{StartOffset: 4, NewlineStart: 4, EndOffset: 4},
			},
		},
		{
			name:    "consecutive newlines",
			content: "\n\n",
			expected: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 0, EndOffset: 1},
				{StartOffset: 1, NewlineStart: 1, EndOffset: 2},
				{StartOffset: 2, NewlineStart: 2, EndOffset: 2},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			lines := mdast.BuildLines([]byte(testCase.content))

			if len(lines) != len(testCase.expected) {
				t.Fatalf("expected %d lines, got %d", len(testCase.expected), len(lines))
			}

			for i, exp := range testCase.expected {
				if lines[i] != exp {
					t.Errorf("line %d: expected %+v, got %+v", i, exp, lines[i])
				}
			}
		})
	}
}

func TestFileSnapshot_PositionOf(t *testing.T) {
	t.Parallel()

	snapshot := mdast.NewFileSnapshot("test.md", []byte("---\n\n```go\n"))

	tests := []struct {
		name     string
		offset   int
		expected mdast.Position
	}{
		{"start of file", 0, mdast.Position{Line: 1, Column: 1}},
		{"newline of rule", 3, mdast.Position{Line: 1, Column: 4}},
		{"blank line", 4, mdast.Position{Line: 2, Column: 1}},
		{"fence info", 8, mdast.Position{Line: 3, Column: 4}},
		{"end of file", 11, mdast.Position{Line: 4, Column: 1}},
		{"negative offset", -1, mdast.Position{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := snapshot.PositionOf(testCase.offset)
			if got != testCase.expected {
				t.Errorf("PositionOf(%d): expected %+v, got %+v", testCase.offset, testCase.expected, got)
			}

			line, col := snapshot.LineAt(testCase.offset)
			if line != got.Line || col != got.Column {
				t.Errorf("LineAt(%d) = (%d, %d), disagrees with PositionOf", testCase.offset, line, col)
			}

			if got.IsValid() != (testCase.offset >= 0) {
				t.Errorf("IsValid() = %v for offset %d", got.IsValid(), testCase.offset)
			}
		})
	}
}

func TestLineAt_CoversEveryOffset(t *testing.T) {
	t.Parallel()

	content := "* * *\r\n\t\n~~~ text\n"
	snapshot := mdast.NewFileSnapshot("test.md", []byte(content))

	for offset := range len(content) {
		line, col := snapshot.LineAt(offset)
		if line == 0 {
			t.Errorf("LineAt(%d) returned invalid position", offset)
			continue
		}

		info := snapshot.Lines[line-1]
		if got := info.StartOffset + col - 1; got != offset {
			t.Errorf("offset %d -> (%d, %d) points back at %d", offset, line, col, got)
		}
		if offset >= info.EndOffset {
			t.Errorf("offset %d lies past the end of line %d", offset, line)
		}
	}
}

func TestFileSnapshot_LineContent(t *testing.T) {
	t.Parallel()

	snapshot := mdast.NewFileSnapshot("test.md", []byte("---\r\n  \nlast"))

	tests := []struct {
		line     int
		expected string
	}{
		{1, "---"},
		{2, "  "},
		{3, "last"},
		{0, ""},
		{4, ""},
	}

	for _, testCase := range tests {
		got := string(snapshot.LineContent(testCase.line))
		if got != testCase.expected {
			t.Errorf("LineContent(%d): expected %q, got %q", testCase.line, testCase.expected, got)
		}
	}

	if snapshot.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", snapshot.LineCount())
	}
}
