package reporter

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/yaklabco/mdblock/pkg/runner"
)

// TableReporter writes a bordered table of fenced code blocks.
type TableReporter struct {
	base
	termWidth int
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	return &TableReporter{
		base:      newBase(opts),
		termWidth: getTerminalWidth(opts.Writer),
	}
}

// Report implements Reporter. The returned count is the number of fences.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer r.flush(&err)

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No Markdown files found."))
		}
		return 0, nil
	}

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(r.opts.displayPath(file.Path), file.Error))
		}
	}

	table := r.styles.FormatFenceTable(result, r.opts.displayPath, r.termWidth)
	if table == "" {
		fmt.Fprintln(r.bw, r.styles.Dim.Render("No fenced code blocks."))
	} else {
		fmt.Fprint(r.bw, table)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return result.Stats.Fences, nil
}

// getTerminalWidth returns the width of w when it is a terminal, or 0.
func getTerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
