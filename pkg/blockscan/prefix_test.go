package blockscan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdblock/pkg/blockscan"
)

func TestSkipPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no spaces", "***", "***"},
		{"one space", " ***", "***"},
		{"two spaces", "  ***", "***"},
		{"three spaces", "   ***", "***"},
		{"four spaces keeps one", "    ***", " ***"},
		{"tab is not skipped", "\t***", "\t***"},
		{"space then tab", " \t***", "\t***"},
		{"only spaces", "     ", "  "},
		{"newline stops skip", " \n", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := blockscan.SkipPrefix([]byte(tt.input))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestSkipPrefix_SharesBuffer(t *testing.T) {
	t.Parallel()

	input := []byte("  abc")
	got := blockscan.SkipPrefix(input)

	assert.Same(t, &input[2], &got[0], "result must alias the input")
}
