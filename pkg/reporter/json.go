package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdblock/pkg/classify"
	"github.com/yaklabco/mdblock/pkg/parser/goldmark"
	"github.com/yaklabco/mdblock/pkg/runner"
)

// jsonSchemaVersion is bumped when the JSON layout changes incompatibly.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path          string                  `json:"path"`
	Digest        string                  `json:"sha256,omitempty"`
	Lines         []classify.Line         `json:"lines,omitempty"`
	Fences        []classify.Fence        `json:"fences"`
	Counts        map[classify.Kind]int   `json:"counts,omitempty"`
	Disagreements []goldmark.Disagreement `json:"disagreements,omitempty"`
	Stale         bool                    `json:"stale,omitempty"`
	Error         string                  `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int                   `json:"files_discovered"`
	FilesProcessed  int                   `json:"files_processed"`
	FilesErrored    int                   `json:"files_errored"`
	Lines           int                   `json:"lines"`
	ByKind          map[classify.Kind]int `json:"by_kind"`
	Fences          int                   `json:"fences"`
	UnclosedFences  int                   `json:"unclosed_fences"`
	Languages       map[string]int        `json:"languages"`
	Disagreements   int                   `json:"disagreements"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output, count := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return count, nil
}

// buildOutput converts a result and returns it with the number of reported items.
func (r *JSONReporter) buildOutput(result *runner.Result) (*JSONOutput, int) {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			ByKind:    make(map[classify.Kind]int),
			Languages: make(map[string]int),
		},
	}

	if result == nil {
		return output, 0
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesDiscovered: stats.FilesDiscovered,
		FilesProcessed:  stats.FilesProcessed,
		FilesErrored:    stats.FilesErrored,
		Lines:           stats.Lines,
		ByKind:          nonNil(stats.ByKind),
		Fences:          stats.Fences,
		UnclosedFences:  stats.UnclosedFences,
		Languages:       nonNil(stats.Languages),
		Disagreements:   stats.Disagreements,
	}

	kinds := r.opts.kinds()
	count := 0

	output.Files = make([]JSONFileResult, 0, len(result.Files))
	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:   r.opts.displayPath(file.Path),
			Fences: make([]classify.Fence, 0),
			Stale:  file.Stale,
		}

		if file.Info != nil {
			fileResult.Digest = file.Info.Digest()
		}
		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		if doc := file.Document; doc != nil {
			fileResult.Fences = append(fileResult.Fences, doc.Fences...)
			fileResult.Counts = doc.Counts

			if !r.opts.Verify {
				fileResult.Lines = doc.LinesOf(kinds...)
				count += len(fileResult.Lines)
			}
		}

		for _, d := range file.Disagreements {
			d.Path = fileResult.Path
			fileResult.Disagreements = append(fileResult.Disagreements, d)
		}
		if r.opts.Verify {
			count += len(file.Disagreements)
		}

		output.Files = append(output.Files, fileResult)
	}

	return output, count
}

func nonNil[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return make(map[K]V)
	}
	return m
}
