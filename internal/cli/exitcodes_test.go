package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdblock/internal/cli"
	"github.com/yaklabco/mdblock/internal/configloader"
	"github.com/yaklabco/mdblock/pkg/runner"
)

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		want   int
	}{
		{name: "nil result", result: nil, want: cli.ExitSuccess},
		{name: "clean", result: &runner.Result{Stats: runner.Stats{FilesProcessed: 1}}, want: cli.ExitSuccess},
		{name: "disagreement", result: &runner.Result{Stats: runner.Stats{Disagreements: 2}}, want: cli.ExitMismatch},
		{
			name:   "errors outrank disagreements",
			result: &runner.Result{Stats: runner.Stats{FilesErrored: 1, Disagreements: 2}},
			want:   cli.ExitIOError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFromResult(tt.result))
		})
	}
}

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "mismatch", err: cli.ErrMismatchFound, want: cli.ExitMismatch},
		{name: "files failed", err: cli.ErrFilesFailed, want: cli.ExitIOError},
		{name: "config load", err: errors.Join(cli.ErrConfigLoad, errors.New("bad yaml")), want: cli.ExitConfigError},
		{
			name: "validation",
			err:  fmt.Errorf("wrapped: %w", &configloader.ValidationError{Field: "jobs", Message: "bad"}),
			want: cli.ExitConfigError,
		},
		{name: "usage", err: errors.Join(cli.ErrInvalidUsage, errors.New("bad flag")), want: cli.ExitInvalidUsage},
		{name: "other", err: errors.New("unexpected"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFromError(tt.err))
		})
	}
}
