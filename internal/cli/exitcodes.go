package cli

import (
	"errors"

	"github.com/yaklabco/mdblock/internal/configloader"
	"github.com/yaklabco/mdblock/pkg/runner"
)

// Exit codes for mdblock.
const (
	// ExitSuccess indicates the run completed cleanly.
	ExitSuccess = 0

	// ExitMismatch indicates verify found disagreements with goldmark.
	ExitMismatch = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates that one or more files could not be read.
	ExitIOError = 74
)

var (
	// ErrMismatchFound is returned by verify when goldmark disagrees.
	ErrMismatchFound = errors.New("classifier and goldmark disagree")

	// ErrFilesFailed is returned when one or more files could not be processed.
	ErrFilesFailed = errors.New("some files could not be processed")

	// ErrConfigLoad wraps every configuration loading failure.
	ErrConfigLoad = errors.New("failed to load configuration")

	// ErrInvalidUsage wraps bad flag values.
	ErrInvalidUsage = errors.New("invalid usage")
)

// ExitCodeFromResult determines the exit code for a completed run.
// Unreadable files outrank disagreements.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasErrors() {
		return ExitIOError
	}
	if result.HasDisagreements() {
		return ExitMismatch
	}
	return ExitSuccess
}

// ExitCodeFromError maps an error returned by a command to an exit code.
func ExitCodeFromError(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrMismatchFound):
		return ExitMismatch
	case errors.Is(err, ErrFilesFailed):
		return ExitIOError
	case errors.Is(err, ErrConfigLoad), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	default:
		return ExitInternalError
	}
}

// resultError converts a run outcome into the command's error.
func resultError(result *runner.Result) error {
	switch ExitCodeFromResult(result) {
	case ExitIOError:
		return ErrFilesFailed
	case ExitMismatch:
		return ErrMismatchFound
	default:
		return nil
	}
}
