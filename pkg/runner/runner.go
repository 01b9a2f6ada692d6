package runner

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/mdblock/internal/logging"
	"github.com/yaklabco/mdblock/pkg/classify"
	"github.com/yaklabco/mdblock/pkg/fsutil"
	"github.com/yaklabco/mdblock/pkg/parser/goldmark"
)

// Runner classifies discovered files with a bounded number of workers.
type Runner struct {
	// Verifier, when set, cross-checks every file against goldmark.
	Verifier *goldmark.Parser
}

// New creates a Runner. A nil verifier disables cross-checking.
func New(verifier *goldmark.Parser) *Runner {
	return &Runner{Verifier: verifier}
}

// Run discovers files under opts.Paths and classifies them concurrently.
// Outcomes are returned in discovery order regardless of completion order.
// A file that cannot be read or classified is recorded in its outcome and
// does not stop the run.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	outcomes := make([]FileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, path := range files {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			outcomes[i] = r.processFile(groupCtx, path, opts)
			return nil
		})
	}

	// Workers never return errors; per-file failures live in the outcomes.
	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldLines, result.Stats.Lines)

	return result, nil
}

// processFile reads, classifies, and optionally verifies a single file.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}
	start := time.Now()

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Info = info

	doc, err := classify.Classify(ctx, path, content, opts.Classify)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Document = doc

	if r.Verifier != nil {
		census, err := r.Verifier.Census(ctx, content)
		if err != nil {
			outcome.Error = fmt.Errorf("verify %s: %w", path, err)
			return outcome
		}
		outcome.Census = census
		outcome.Disagreements = goldmark.Compare(doc, census)
	}

	// A file rewritten mid-run still has a consistent classification of the
	// bytes that were read; flag it so the caller can decide.
	stale, err := fsutil.CheckModified(ctx, info)
	if err == nil {
		outcome.Stale = stale
	}

	outcome.Duration = time.Since(start)
	logging.ForFile(ctx, path).Debug("classified file",
		logging.FieldLines, len(doc.Lines),
		logging.FieldDuration, outcome.Duration)

	return outcome
}
