// Package reporter writes classification and verification results.
package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdblock/internal/ui/pretty"
	"github.com/yaklabco/mdblock/pkg/runner"
)

// Reporter formats and writes results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of items reported (lines, or disagreements when
	// verifying) and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
//
//nolint:ireturn // Factory returns the interface by design.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// base holds what every styled reporter needs.
type base struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

func newBase(opts Options) base {
	return base{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// flush flushes the buffer, keeping the first error.
func (b *base) flush(err *error) {
	if flushErr := b.bw.Flush(); *err == nil && flushErr != nil {
		*err = fmt.Errorf("flush output: %w", flushErr)
	}
}

// reportDisagreements writes every disagreement and returns how many there were.
func (b *base) reportDisagreements(result *runner.Result) int {
	total := 0
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprint(b.bw, b.styles.FormatFileError(b.opts.displayPath(file.Path), file.Error))
			continue
		}
		for _, d := range file.Disagreements {
			d.Path = b.opts.displayPath(d.Path)
			fmt.Fprint(b.bw, b.styles.FormatDisagreement(d))
			total++
		}
	}
	return total
}
