package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdtree/parser"
)

func renderMarkdown(t *testing.T, src string) string {
	t.Helper()
	root, err := parser.Parse(src)
	require.NoError(t, err)
	return NewMarkdown().Render(root)
}

// Canonical documents survive a parse and re-emit unchanged, modulo the final
// newline.
func TestMarkdownStable(t *testing.T) {
	inputs := []string{
		"# Hi\n\n- a\n- b",
		"> quoted\n\ntext",
		"```go\nx := 1\n```",
		"**b** and *i* and `c`",
		"---",
	}
	for _, src := range inputs {
		first := renderMarkdown(t, src)
		second := renderMarkdown(t, first)
		assert.Equal(t, first, second, "%q", src)
	}
}

func TestMarkdownHeading(t *testing.T) {
	got := renderMarkdown(t, "## closed ##")
	assert.Equal(t, "## closed\n", got)
}

func TestMarkdownOrderedRenumbered(t *testing.T) {
	got := renderMarkdown(t, "7. a\n9. b")
	assert.Equal(t, "1. a\n2. b\n", got)
}

func TestMarkdownBlockquote(t *testing.T) {
	got := renderMarkdown(t, "> a\n\n> b")
	assert.Equal(t, "> a\n>\n> b\n", got)
}

func TestMarkdownTable(t *testing.T) {
	got := renderMarkdown(t, "|a|b|\n|:--|--:|\n|1|2|")
	want := "| a | b |\n| :--- | ---: |\n| 1 | 2 |\n"
	assert.Equal(t, want, got)
}

func TestMarkdownInline(t *testing.T) {
	got := renderMarkdown(t, `[x](u "t") and ![a](s)`)
	assert.Equal(t, "[x](u \"t\") and ![a](s)\n", got)
}
