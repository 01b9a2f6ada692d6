package mdast

import (
	"bytes"
	"sort"
)

// Position is a 1-based line and byte column.
type Position struct {
	Line   int
	Column int
}

// IsValid reports whether the position refers to a real location.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// BuildLines constructs line metadata from file content.
// It handles both LF (\n) and CRLF (\r\n) line endings. A trailing newline
// produces a final empty line, matching how editors number lines.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	lines := make([]LineInfo, 0, bytes.Count(content, []byte{'\n'})+1)
	lineStart := 0

	for lineStart < len(content) {
		idx := bytes.IndexByte(content[lineStart:], '\n')
		if idx < 0 {
			break
		}
		nl := lineStart + idx

		newlineStart := nl
		if nl > lineStart && content[nl-1] == '\r' {
			newlineStart = nl - 1
		}

		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    nl + 1,
		})
		lineStart = nl + 1
	}

	// Last line, which may be empty or lack a trailing newline.
	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})

	return lines
}

// LineCount returns the number of lines in the file.
func (f *FileSnapshot) LineCount() int {
	return len(f.Lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes.
// Returns (0, 0) if the offset is out of range.
func (f *FileSnapshot) LineAt(offset int) (int, int) {
	pos := f.PositionOf(offset)
	return pos.Line, pos.Column
}

// PositionOf converts a byte offset to a Position.
// Offsets at or past the end of content map onto the last line.
func (f *FileSnapshot) PositionOf(offset int) Position {
	if offset < 0 || len(f.Lines) == 0 {
		return Position{}
	}

	if offset >= len(f.Content) {
		last := f.Lines[len(f.Lines)-1]
		return Position{Line: len(f.Lines), Column: offset - last.StartOffset + 1}
	}

	lineIdx := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].EndOffset > offset
	})
	if lineIdx >= len(f.Lines) {
		lineIdx = len(f.Lines) - 1
	}

	info := f.Lines[lineIdx]
	if offset < info.StartOffset {
		return Position{}
	}

	return Position{Line: lineIdx + 1, Column: offset - info.StartOffset + 1}
}

// LineContent returns the content of a 1-based line number, excluding the newline.
// Returns nil if the line number is out of range.
func (f *FileSnapshot) LineContent(line int) []byte {
	if line < 1 || line > len(f.Lines) {
		return nil
	}

	info := f.Lines[line-1]
	return f.Content[info.StartOffset:info.NewlineStart]
}
