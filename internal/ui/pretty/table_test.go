package pretty_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdblock/internal/ui/pretty"
	"github.com/yaklabco/mdblock/pkg/blockscan"
	"github.com/yaklabco/mdblock/pkg/classify"
	"github.com/yaklabco/mdblock/pkg/runner"
)

func TestFormatFenceTable(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/repo/docs/a.md",
				Document: &classify.Document{
					Lines: make([]classify.Line, 12),
					Fences: []classify.Fence{
						{OpenLine: 3, CloseLine: 6, Closed: true, Char: blockscan.Backtick, Length: 3, Info: "go", Language: "go"},
						{OpenLine: 9, Char: blockscan.Tilde, Length: 4},
					},
				},
			},
			{Path: "/repo/empty.md", Document: &classify.Document{}},
		},
	}

	out := styles.FormatFenceTable(result, filepath.Base, 0)

	for _, header := range pretty.FenceTableHeaders {
		assert.Contains(t, out, header)
	}
	assert.Contains(t, out, "a.md")
	assert.NotContains(t, out, "/repo/")
	assert.Contains(t, out, "3-6")
	assert.Contains(t, out, "`x3")
	assert.Contains(t, out, "9-EOF")
	assert.Contains(t, out, "~x4")
	assert.NotContains(t, out, "empty.md")
	assert.Equal(t, 2, strings.Count(out, "a.md"), "one row per fence")

	assert.Contains(t, rowFields(out, "3-6"), "2", "closed fence body excludes both fence lines")
	assert.Contains(t, rowFields(out, "9-EOF"), "3", "unclosed fence body runs to the last line")
}

// rowFields returns the whitespace-separated cells of the table row containing key.
func rowFields(out, key string) []string {
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, key) {
			return strings.Fields(line)
		}
	}
	return nil
}

func TestFormatFenceTable_MaxWidth(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := &runner.Result{Files: []runner.FileOutcome{{
		Path: strings.Repeat("long/", 30) + "a.md",
		Document: &classify.Document{Fences: []classify.Fence{
			{OpenLine: 1, CloseLine: 2, Closed: true, Char: blockscan.Backtick, Length: 3},
		}},
	}}}

	out := styles.FormatFenceTable(result, nil, 60)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestFormatFenceTable_Empty(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Empty(t, styles.FormatFenceTable(nil, nil, 0))
	assert.Empty(t, styles.FormatFenceTable(&runner.Result{}, nil, 80))
}
