package runner

import (
	"time"

	"github.com/yaklabco/mdblock/pkg/classify"
	"github.com/yaklabco/mdblock/pkg/fsutil"
	"github.com/yaklabco/mdblock/pkg/parser/goldmark"
)

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the absolute file path.
	Path string

	// Info describes the file as it was read. Nil if reading failed.
	Info *fsutil.FileInfo

	// Document is the classification. Nil if Error is set.
	Document *classify.Document

	// Census and Disagreements are set when the runner verifies against goldmark.
	Census        *goldmark.Census
	Disagreements []goldmark.Disagreement

	// Stale is set when the file changed on disk after it was read.
	Stale bool

	// Duration is how long reading and classification took.
	Duration time.Duration

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesErrored    int
	FilesStale      int

	// Lines is the total number of classified lines.
	Lines int

	// ByKind counts lines per classification.
	ByKind map[classify.Kind]int

	// Fences is the total number of fenced code blocks.
	Fences int

	// UnclosedFences counts fences that run to the end of their file.
	UnclosedFences int

	// Languages counts fences per resolved language; unknown is keyed "".
	Languages map[string]int

	// Disagreements is the total number of goldmark differences.
	Disagreements int
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome

	Stats Stats
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// HasDisagreements reports whether verification found any difference.
func (r *Result) HasDisagreements() bool {
	if r == nil {
		return false
	}
	return r.Stats.Disagreements > 0
}

func newStats() Stats {
	return Stats{
		ByKind:    make(map[classify.Kind]int),
		Languages: make(map[string]int),
	}
}

// accumulate adds a file outcome to the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Document == nil {
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Stale {
		r.Stats.FilesStale++
	}

	doc := outcome.Document
	r.Stats.Lines += len(doc.Lines)
	for kind, n := range doc.Counts {
		r.Stats.ByKind[kind] += n
	}

	r.Stats.Fences += len(doc.Fences)
	for _, fence := range doc.Fences {
		if !fence.Closed {
			r.Stats.UnclosedFences++
		}
		r.Stats.Languages[fence.Language]++
	}

	r.Stats.Disagreements += len(outcome.Disagreements)
}
