package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdblock/pkg/runner"
)

// makeTree creates files (slash-separated, relative to dir) with a one-line body.
func makeTree(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("***\n"), 0o644))
	}
}

// discoverRel runs Discover and returns slash-separated paths relative to dir.
func discoverRel(t *testing.T, dir string, opts runner.Options) []string {
	t.Helper()

	if opts.WorkingDir == "" {
		opts.WorkingDir = dir
	}
	files, err := runner.Discover(context.Background(), opts)
	require.NoError(t, err)

	rel := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir,
		"readme.md",
		"intro.draft.md",
		"CHANGES.MD",
		"docs/guide.md",
		"docs/api.markdown",
		"docs/a.md",
		"docs/b.md",
		"docs/drafts/wip.md",
		"site/drafts/old.md",
		"site/page.mdx",
		"src/main.go",
		"notes.txt",
		".hidden.md",
		".github/template.md",
	)

	all := []string{
		"CHANGES.MD",
		"docs/a.md", "docs/api.markdown", "docs/b.md", "docs/drafts/wip.md", "docs/guide.md",
		"intro.draft.md", "readme.md", "site/drafts/old.md",
	}

	tests := []struct {
		name string
		opts runner.Options
		want []string
	}{
		{
			name: "directory walk skips hidden entries and other extensions",
			opts: runner.Options{Paths: []string{"."}},
			want: all,
		},
		{
			name: "no paths means the working directory",
			opts: runner.Options{},
			want: all,
		},
		{
			name: "custom extensions",
			opts: runner.Options{Extensions: []string{".mdx", ".txt"}},
			want: []string{"notes.txt", "site/page.mdx"},
		},
		{
			name: "explicit file bypasses the hidden rule",
			opts: runner.Options{Paths: []string{".hidden.md"}},
			want: []string{".hidden.md"},
		},
		{
			name: "explicit file still needs a matching extension",
			opts: runner.Options{Paths: []string{"notes.txt"}},
			want: []string{},
		},
		{
			name: "multiple paths are merged and de-duplicated",
			opts: runner.Options{Paths: []string{"docs", "readme.md", "docs/guide.md", "./readme.md"}},
			want: []string{
				"docs/a.md", "docs/api.markdown", "docs/b.md", "docs/drafts/wip.md", "docs/guide.md",
				"readme.md",
			},
		},
		{
			name: "doublestar directory anywhere",
			opts: runner.Options{ExcludeGlobs: []string{"**/drafts/**"}},
			want: []string{
				"CHANGES.MD",
				"docs/a.md", "docs/api.markdown", "docs/b.md", "docs/guide.md",
				"intro.draft.md", "readme.md",
			},
		},
		{
			name: "base name pattern at any depth",
			opts: runner.Options{ExcludeGlobs: []string{"*.draft.md", "docs/**", "site/**", "*.MD"}},
			want: []string{"readme.md"},
		},
		{
			name: "brace alternatives",
			opts: runner.Options{IncludeGlobs: []string{"docs/{a,b}.md"}},
			want: []string{"docs/a.md", "docs/b.md"},
		},
		{
			name: "exclude wins over include",
			opts: runner.Options{IncludeGlobs: []string{"docs/**"}, ExcludeGlobs: []string{"docs/drafts"}},
			want: []string{"docs/a.md", "docs/api.markdown", "docs/b.md", "docs/guide.md"},
		},
		{
			name: "empty pattern ignored",
			opts: runner.Options{ExcludeGlobs: []string{""}, IncludeGlobs: []string{"site/**"}},
			want: []string{"site/drafts/old.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, discoverRel(t, dir, tt.opts))
		})
	}
}

func TestDiscover_SortedAbsolutePaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir, "z.md", "a.md", "m/b.md")

	files, err := runner.Discover(context.Background(), runner.Options{Paths: []string{"z.md", "."}, WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "m", "b.md"),
		filepath.Join(dir, "z.md"),
	}, files)
	for _, f := range files {
		assert.True(t, filepath.IsAbs(f), "%s should be absolute", f)
	}
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"missing.md"},
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.md")
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir, "a.md")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscover_FileSymlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir, "real.md")
	if err := os.Symlink(filepath.Join(dir, "real.md"), filepath.Join(dir, "link.md")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	assert.Equal(t, []string{"link.md", "real.md"}, discoverRel(t, dir, runner.Options{}))
}

func TestDiscover_DirectorySymlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir, "real/doc.md")

	external := t.TempDir()
	makeTree(t, external, "external.md")

	if err := os.Symlink(external, filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	assert.Equal(t, []string{"real/doc.md"}, discoverRel(t, dir, runner.Options{}),
		"directory symlinks are not followed by default")

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir, FollowSymlinks: true})
	require.NoError(t, err)
	require.Len(t, files, 2)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.ElementsMatch(t, []string{"doc.md", "external.md"}, names)
}

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t, []string{".md", ".markdown"}, runner.DefaultExtensions())
}
