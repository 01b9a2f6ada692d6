package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdblock/pkg/runner"
)

// SummaryReporter writes only aggregate totals.
type SummaryReporter struct {
	base
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	return &SummaryReporter{base: newBase(opts)}
}

// Report implements Reporter. The returned count is the number of lines classified.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer r.flush(&err)

	if result == nil {
		result = &runner.Result{}
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
	return result.Stats.Lines, nil
}
