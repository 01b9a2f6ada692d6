package reporter

import (
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/yaklabco/mdblock/pkg/classify"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses minified JSON.
	Compact bool

	// Only limits the reported lines to these kinds. Empty means every
	// kind except text.
	Only []classify.Kind

	// Verify reports goldmark disagreements instead of classified lines.
	Verify bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowSummary: true,
	}
}

// kinds returns the line kinds to report.
func (o Options) kinds() []classify.Kind {
	if len(o.Only) > 0 {
		return o.Only
	}
	return slices.DeleteFunc(classify.AllKinds(), func(k classify.Kind) bool {
		return k == classify.KindText
	})
}

// displayPath makes path relative to WorkingDir when possible.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil {
		return path
	}
	return rel
}
