// Package runner classifies many Markdown files concurrently.
package runner

import (
	"github.com/yaklabco/mdblock/pkg/classify"
	"github.com/yaklabco/mdblock/pkg/config"
)

// Options controls file discovery and classification.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and globs.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions considered Markdown.
	// Defaults to DefaultExtensions().
	Extensions []string

	// IncludeGlobs restrict discovery to matching paths, relative to WorkingDir.
	IncludeGlobs []string

	// ExcludeGlobs skip matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs caps the number of files classified at once.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Classify is passed to classify.Classify for every file.
	Classify classify.Options
}

// OptionsFromConfig builds runner options for paths from a resolved configuration.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	return Options{
		Paths:          paths,
		Extensions:     cfg.Extensions,
		ExcludeGlobs:   cfg.Ignore,
		FollowSymlinks: cfg.FollowSymlinks,
		Jobs:           cfg.Jobs,
		Classify:       classify.Options{DetectLanguages: cfg.DetectLanguages},
	}
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return config.DefaultExtensions()
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
