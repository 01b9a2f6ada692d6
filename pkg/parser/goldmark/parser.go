// Package goldmark cross-checks the line classifier against the goldmark
// CommonMark parser. It counts the thematic breaks and fenced code blocks
// goldmark finds at the top level of a document.
package goldmark

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdblock/pkg/mdast"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Parser wraps a configured goldmark instance.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a new goldmark-based parser for the given flavor.
// Supported flavors are "commonmark" and "gfm".
// Invalid flavors default to "commonmark".
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// CensusFence is a fenced code block found by goldmark.
type CensusFence struct {
	// Line is the 1-based line of the block's info string or first content
	// line, or 0 when the block has neither.
	Line int `json:"line,omitempty"`

	// Info is the trimmed info string.
	Info string `json:"info"`

	// Language is the first word of the info string.
	Language string `json:"language,omitempty"`
}

// Census is what goldmark found at the top level of a document.
type Census struct {
	ThematicBreaks int           `json:"thematic_breaks"`
	Fences         []CensusFence `json:"fences"`
}

// Census parses content and counts its top-level thematic breaks and fenced code blocks.
func (p *Parser) Census(ctx context.Context, content []byte) (*Census, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("census cancelled: %w", err)
	}

	reader := text.NewReader(content)
	doc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("census cancelled: %w", err)
	}

	lines := &mdast.FileSnapshot{Content: content, Lines: mdast.BuildLines(content)}
	census := &Census{Fences: []CensusFence{}}

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.ThematicBreak:
			census.ThematicBreaks++
		case *ast.FencedCodeBlock:
			census.Fences = append(census.Fences, fenceOf(n, content, lines))
		}
	}

	return census, nil
}

// fenceOf extracts what the census records about a fenced code block.
func fenceOf(block *ast.FencedCodeBlock, content []byte, lines *mdast.FileSnapshot) CensusFence {
	fence := CensusFence{Language: string(block.Language(content))}

	if block.Info != nil {
		seg := block.Info.Segment
		fence.Info = string(seg.Value(content))
		fence.Line = lines.PositionOf(seg.Start).Line
		return fence
	}

	// The opening fence is the line before the first content line.
	if block.Lines().Len() > 0 {
		if line := lines.PositionOf(block.Lines().At(0).Start).Line; line > 1 {
			fence.Line = line - 1
		}
	}

	return fence
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}
