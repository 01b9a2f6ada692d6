package classify_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdblock/pkg/blockscan"
	"github.com/yaklabco/mdblock/pkg/classify"
)

func classifyString(t *testing.T, content string, opts classify.Options) *classify.Document {
	t.Helper()

	doc, err := classify.Classify(context.Background(), "test.md", []byte(content), opts)
	require.NoError(t, err)
	return doc
}

func kindsOf(doc *classify.Document) []classify.Kind {
	kinds := make([]classify.Kind, len(doc.Lines))
	for i, line := range doc.Lines {
		kinds[i] = line.Kind
	}
	return kinds
}

func TestClassify_Document(t *testing.T) {
	t.Parallel()

	content := strings.Join([]string{
		"# Title",
		"",
		"---",
		"```go",
		"fmt.Println()",
		"",
		"***",
		"```",
		"~~~~ python x",
		"~~~",
		"```",
		"~~~~~  ",
		"~~~ ",
		"text",
	}, "\n")

	doc := classifyString(t, content, classify.Options{})

	assert.Equal(t, []classify.Kind{
		classify.KindText,
		classify.KindBlank,
		classify.KindRule,
		classify.KindFenceOpen,
		classify.KindCode,
		classify.KindCode,
		classify.KindCode,
		classify.KindFenceClose,
		classify.KindFenceOpen,
		classify.KindCode,
		classify.KindCode,
		classify.KindFenceClose,
		classify.KindFenceOpen,
		classify.KindCode,
	}, kindsOf(doc))

	assert.Equal(t, map[classify.Kind]int{
		classify.KindText:       1,
		classify.KindBlank:      1,
		classify.KindRule:       1,
		classify.KindFenceOpen:  3,
		classify.KindCode:       6,
		classify.KindFenceClose: 2,
	}, doc.Counts)

	require.Len(t, doc.Fences, 3)

	assert.Equal(t, 4, doc.Fences[0].OpenLine)
	assert.Equal(t, 8, doc.Fences[0].CloseLine)
	assert.Equal(t, blockscan.Backtick, doc.Fences[0].Char)
	assert.Equal(t, 3, doc.Fences[0].Length)
	assert.Equal(t, "go", doc.Fences[0].Info)
	assert.Equal(t, "go", doc.Fences[0].Language)
	assert.True(t, doc.Fences[0].Closed)
	assert.Equal(t, "fmt.Println()\n\n***\n", string(content[doc.Fences[0].BodyStart:doc.Fences[0].BodyEnd]))

	assert.Equal(t, 9, doc.Fences[1].OpenLine)
	assert.Equal(t, 12, doc.Fences[1].CloseLine)
	assert.Equal(t, blockscan.Tilde, doc.Fences[1].Char)
	assert.Equal(t, 4, doc.Fences[1].Length)
	assert.Equal(t, "python x", doc.Fences[1].Info)
	assert.Equal(t, "python", doc.Fences[1].Language)

	assert.Equal(t, 13, doc.Fences[2].OpenLine)
	assert.Zero(t, doc.Fences[2].CloseLine)
	assert.False(t, doc.Fences[2].Closed)
	assert.Empty(t, doc.Fences[2].Language)
	assert.Equal(t, 1, doc.Fences[2].BodyLines(len(doc.Lines)))
	assert.Equal(t, 1, doc.UnclosedFences())

	rule := doc.Lines[2]
	assert.Equal(t, 3, rule.Number)
	assert.Equal(t, "-", rule.RuleChar)
	assert.Equal(t, "---", string(doc.Text(rule)))
}

func TestClassify_Lines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []classify.Kind
	}{
		{"empty", "", []classify.Kind{}},
		{"no trailing newline", "abc", []classify.Kind{classify.KindText}},
		{"whitespace only", " \t \r\n", []classify.Kind{classify.KindBlank}},
		{"spaced rule", "* * *\n", []classify.Kind{classify.KindRule}},
		{"rule with trailing text", "* * * a\n", []classify.Kind{classify.KindText}},
		{"underscore rule", "___\n", []classify.Kind{classify.KindRule}},
		{"two dashes", "--\n", []classify.Kind{classify.KindText}},
		{"crlf rule", "---\r\nx\r\n", []classify.Kind{classify.KindRule, classify.KindText}},
		{"bare cr after final rule", "text\n***\r", []classify.Kind{classify.KindText, classify.KindRule}},
		{"cr inside rule", "**\r*\n", []classify.Kind{classify.KindText}},
		{"tab in rule", "-\t-\t-\n", []classify.Kind{classify.KindText}},
		{"indented three", "   ```\n", []classify.Kind{classify.KindFenceOpen}},
		{"indented four", "    ```\n", []classify.Kind{classify.KindText}},
		{"backtick in backtick info", "``` a`b\n", []classify.Kind{classify.KindText}},
		{"backtick in tilde info", "~~~ a`b\n", []classify.Kind{classify.KindFenceOpen}},
		{
			"close with trailing text is code",
			"```\n``` x\n```\n",
			[]classify.Kind{classify.KindFenceOpen, classify.KindCode, classify.KindFenceClose},
		},
		{
			"close without newline",
			"```\nx\n```",
			[]classify.Kind{classify.KindFenceOpen, classify.KindCode, classify.KindFenceClose},
		},
		{
			"indented close",
			"````\n   ````\n",
			[]classify.Kind{classify.KindFenceOpen, classify.KindFenceClose},
		},
		{
			"blank and rule inside fence",
			"~~~\n\n---\n~~~\n",
			[]classify.Kind{classify.KindFenceOpen, classify.KindCode, classify.KindCode, classify.KindFenceClose},
		},
		{
			"rule takes priority over fence",
			"***\n",
			[]classify.Kind{classify.KindRule},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := classifyString(t, tt.content, classify.Options{})
			assert.Equal(t, tt.want, kindsOf(doc))
		})
	}
}

func TestClassify_LinesCoverContent(t *testing.T) {
	t.Parallel()

	content := "a\n\n```\nb\r\n```\n---\nlast"
	doc := classifyString(t, content, classify.Options{})

	offset := 0
	for i, line := range doc.Lines {
		assert.Equal(t, i+1, line.Number)
		number, column := doc.Snapshot.LineAt(line.Start)
		assert.Equal(t, line.Number, number)
		assert.Equal(t, 1, column)
		assert.Equal(t, offset, line.Start)
		assert.Greater(t, line.End, line.Start)
		offset = line.End
	}
	assert.Equal(t, len(content), offset)
}

func TestClassify_FenceFields(t *testing.T) {
	t.Parallel()

	doc := classifyString(t, "  ````` {.rust}  \r\nfn x() {}\n`````\n", classify.Options{})

	open := doc.Lines[0]
	assert.Equal(t, classify.KindFenceOpen, open.Kind)
	assert.Equal(t, blockscan.Backtick, open.FenceChar)
	assert.Equal(t, 5, open.FenceLength)
	assert.Equal(t, "{.rust}", open.Info)

	require.Len(t, doc.Fences, 1)
	assert.Equal(t, "rust", doc.Fences[0].Language)
	assert.Equal(t, 1, doc.Fences[0].BodyLines(len(doc.Lines)))
}

func TestClassify_DetectLanguages(t *testing.T) {
	t.Parallel()

	content := "```\npackage main\n\nfunc main() {}\n```\n"

	doc := classifyString(t, content, classify.Options{})
	require.Len(t, doc.Fences, 1)
	assert.Empty(t, doc.Fences[0].Language)

	doc = classifyString(t, content, classify.Options{DetectLanguages: true})
	require.Len(t, doc.Fences, 1)
	assert.Equal(t, "go", doc.Fences[0].Language)
}

func TestClassify_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := classify.Classify(ctx, "test.md", []byte("text\n"), classify.Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestClassify_EmptyContentNotCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc, err := classify.Classify(ctx, "empty.md", nil, classify.Options{})
	require.NoError(t, err)
	assert.Empty(t, doc.Lines)
	assert.Empty(t, doc.Counts)
}

func TestDocument_LinesOf(t *testing.T) {
	t.Parallel()

	doc := classifyString(t, "a\n\n---\n\nb\n", classify.Options{})

	assert.Len(t, doc.LinesOf(), 5)
	assert.Len(t, doc.LinesOf(classify.KindBlank), 2)

	rules := doc.LinesOf(classify.KindRule, classify.KindFenceOpen)
	require.Len(t, rules, 1)
	assert.Equal(t, 3, rules[0].Number)
}

func TestKind(t *testing.T) {
	t.Parallel()

	for _, kind := range classify.AllKinds() {
		parsed, ok := classify.ParseKind(kind.String())
		assert.True(t, ok, kind.String())
		assert.Equal(t, kind, parsed)
	}

	parsed, ok := classify.ParseKind(" Fence-Open ")
	assert.True(t, ok)
	assert.Equal(t, classify.KindFenceOpen, parsed)

	_, ok = classify.ParseKind("heading")
	assert.False(t, ok)

	assert.Equal(t, "kind(42)", classify.Kind(42).String())
	assert.Len(t, classify.KindNames(), len(classify.AllKinds()))

	var k classify.Kind
	require.NoError(t, k.UnmarshalText([]byte("code")))
	assert.Equal(t, classify.KindCode, k)
	require.Error(t, k.UnmarshalText([]byte("nope")))
}

func BenchmarkClassify(b *testing.B) {
	var sb strings.Builder
	for range 200 {
		sb.WriteString("# Section\n\nSome prose here.\n\n---\n\n```go\nfunc f() {}\n```\n\n")
	}
	content := []byte(sb.String())

	b.SetBytes(int64(len(content)))
	b.ReportAllocs()

	for range b.N {
		if _, err := classify.Classify(context.Background(), "bench.md", content, classify.Options{}); err != nil {
			b.Fatal(err)
		}
	}
}
