package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdblock/pkg/runner"
)

// TextReporter writes one line per reported classification.
type TextReporter struct {
	base
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{base: newBase(opts)}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer r.flush(&err)

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No Markdown files found."))
		}
		return 0, nil
	}

	var total int
	if r.opts.Verify {
		total = r.reportDisagreements(result)
		if r.opts.ShowSummary {
			r.writeVerifySummary(result, total)
		}
		return total, nil
	}

	kinds := r.opts.kinds()
	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)

		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
			continue
		}
		if file.Document == nil {
			continue
		}

		for _, line := range file.Document.LinesOf(kinds...) {
			fmt.Fprint(r.bw, r.styles.FormatLine(path, line))
			total++
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

func (r *TextReporter) writeVerifySummary(result *runner.Result, total int) {
	if total == 0 {
		fmt.Fprintln(r.bw, r.styles.Success.Render(
			fmt.Sprintf("goldmark agrees on %d %s", result.Stats.FilesProcessed, plural(result.Stats.FilesProcessed, "file"))))
		return
	}
	fmt.Fprintln(r.bw, r.styles.Failure.Render(
		fmt.Sprintf("%d %s with goldmark", total, plural(total, "disagreement"))))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
