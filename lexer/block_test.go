package lexer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdtree/token"
)

func span(raw string, line int) token.Span {
	return token.Span{RawText: raw, LineNo: line}
}

func TestScanHeadingParagraph(t *testing.T) {
	got := Tokenize("# Title\n\nParagraph text")
	want := []token.Block{
		&token.Heading{Span: span("# Title", 1), Level: 1, Text: "Title"},
		&token.Blank{Span: span("", 2)},
		&token.Paragraph{Span: span("Paragraph text", 3), Text: "Paragraph text"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadings(t *testing.T) {
	for _, tc := range []struct {
		line  string
		level int
		text  string
	}{
		{"# one", 1, "one"},
		{"###### six", 6, "six"},
		{"## closed ##", 2, "closed"},
		{"## glued##", 2, "glued##"},
	} {
		got := Tokenize(tc.line)
		require.Len(t, got, 1, tc.line)
		h, ok := got[0].(*token.Heading)
		require.True(t, ok, tc.line)
		assert.Equal(t, tc.level, h.Level, tc.line)
		assert.Equal(t, tc.text, h.Text, tc.line)
	}
}

// A run of seven or more '#' is never a heading.
func TestHeadingBound(t *testing.T) {
	for _, line := range []string{"####### seven", "#nospace", "#"} {
		got := Tokenize(line)
		require.Len(t, got, 1, line)
		_, ok := got[0].(*token.Paragraph)
		assert.True(t, ok, "%q should fall through to paragraph", line)
	}
}

func TestThematicBreak(t *testing.T) {
	for _, line := range []string{"***", "---", "___", "- - -", " *  *  * "} {
		got := Tokenize(line)
		require.Len(t, got, 1, line)
		_, ok := got[0].(*token.Rule)
		assert.True(t, ok, "%q should be a thematic break", line)
	}
	for _, line := range []string{"**", "--", "*-*", "___x"} {
		got := Tokenize(line)
		_, ok := got[0].(*token.Rule)
		assert.False(t, ok, "%q should not be a thematic break", line)
	}
}

func TestFencedCode(t *testing.T) {
	got := Tokenize("```go\nx := 1\ny := 2\n```\nafter")
	require.Len(t, got, 2)
	code, ok := got[0].(*token.CodeBlock)
	require.True(t, ok)
	assert.Equal(t, "go", code.Language)
	assert.Equal(t, "x := 1\ny := 2", code.Code)
	assert.Equal(t, 1, code.Line())
	_, ok = got[1].(*token.Paragraph)
	assert.True(t, ok)
}

// An unclosed fence eats the rest of the document without duplicating any
// line.
func TestFencedCodeUnclosed(t *testing.T) {
	s := NewScanner(Normalize("```js\nconst x=1;"))
	got := s.Scan()
	require.Len(t, got, 1)
	code := got[0].(*token.CodeBlock)
	assert.Equal(t, "js", code.Language)
	assert.Equal(t, "const x=1;", code.Code)
	assert.Equal(t, "```js\nconst x=1;", code.Raw())
	assert.Len(t, s.Warnings(), 1)
}

func TestFencedCodeTailClose(t *testing.T) {
	got := Tokenize("```\nlast line```\nafter")
	require.Len(t, got, 2)
	code := got[0].(*token.CodeBlock)
	assert.Equal(t, "last line", code.Code)
	assert.Equal(t, "```\nlast line```", code.Raw())
	_, ok := got[1].(*token.Paragraph)
	assert.True(t, ok)
}

func TestFencedCodeCloseVariants(t *testing.T) {
	// longer closing run
	code := Tokenize("```\nx\n`````")[0].(*token.CodeBlock)
	assert.Equal(t, "x", code.Code)
	// indented closing run
	code = Tokenize("```\nx\n   ```")[0].(*token.CodeBlock)
	assert.Equal(t, "x", code.Code)
	// tildes
	code = Tokenize("~~~\nx\n~~~")[0].(*token.CodeBlock)
	assert.Equal(t, "x", code.Code)
	// shorter run does not close
	code = Tokenize("````\n```\n````")[0].(*token.CodeBlock)
	assert.Equal(t, "```", code.Code)
}

func TestBlockquote(t *testing.T) {
	got := Tokenize("> Quote\n> > Nested")
	require.Len(t, got, 1)
	q := got[0].(*token.Blockquote)
	assert.Equal(t, "Quote\n> Nested", q.Content)

	got = Tokenize("> a\n\n> b\nplain")
	require.Len(t, got, 2)
	q = got[0].(*token.Blockquote)
	assert.Equal(t, "a\n\nb", q.Content)
	_, ok := got[1].(*token.Paragraph)
	assert.True(t, ok)
}

func TestList(t *testing.T) {
	got := Tokenize("- a\n- b\n  continued\nplain")
	require.Len(t, got, 2)
	l := got[0].(*token.List)
	assert.False(t, l.Ordered)
	require.Len(t, l.Items, 2)
	assert.Equal(t, "a", l.Items[0].Content)
	assert.Equal(t, "b\ncontinued", l.Items[1].Content)
	assert.Equal(t, "-", l.Items[0].Marker)
}

func TestOrderedList(t *testing.T) {
	got := Tokenize("1. one\n2) two")
	require.Len(t, got, 1)
	l := got[0].(*token.List)
	assert.True(t, l.Ordered)
	require.Len(t, l.Items, 2)
	assert.Equal(t, "1.", l.Items[0].Marker)
	assert.Equal(t, "2)", l.Items[1].Marker)
}

// Blank lines are skipped inside a list rather than ending it.
func TestListBlankLines(t *testing.T) {
	got := Tokenize("- a\n\n- b")
	require.Len(t, got, 1)
	l := got[0].(*token.List)
	require.Len(t, l.Items, 2)
}

func TestTable(t *testing.T) {
	got := Tokenize("| a | b |\n|---|---|\n| 1 | 2 |")
	require.Len(t, got, 1)
	tbl := got[0].(*token.Table)
	want := []token.TableCell{
		{Text: "a", Align: token.AlignNone},
		{Text: "b", Align: token.AlignNone},
	}
	assert.Equal(t, want, tbl.Headers)
	assert.Equal(t, [][]string{{"1", "2"}}, tbl.Rows)
}

func TestTableAlignment(t *testing.T) {
	got := Tokenize("| x | y | z |\n|:--|:-:|--:|\n| 1 | 2 | 3 |")
	tbl := got[0].(*token.Table)
	require.Len(t, tbl.Headers, 3)
	assert.Equal(t, token.AlignLeft, tbl.Headers[0].Align)
	assert.Equal(t, token.AlignCenter, tbl.Headers[1].Align)
	assert.Equal(t, token.AlignRight, tbl.Headers[2].Align)
}

// A pipe line without a separator row underneath is not a table.
func TestTableNeedsSeparator(t *testing.T) {
	got := Tokenize("| a | b |\n| 1 | 2 |")
	_, ok := got[0].(*token.Table)
	assert.False(t, ok)
}

func TestHTMLBlock(t *testing.T) {
	got := Tokenize("<div>\nhello\n</div>\nafter")
	require.Len(t, got, 2)
	h := got[0].(*token.HTMLBlock)
	assert.Equal(t, "<div>\nhello\n</div>", h.HTML)

	// unclosed: only the opening line is taken
	got = Tokenize("<div>\ntext")
	require.Len(t, got, 2)
	h = got[0].(*token.HTMLBlock)
	assert.Equal(t, "<div>", h.HTML)

	// single line
	got = Tokenize("<span>x</span>")
	require.Len(t, got, 1)
}

func TestIndentedCode(t *testing.T) {
	got := Tokenize("    a\n\tb\nplain")
	require.Len(t, got, 2)
	code := got[0].(*token.CodeBlock)
	assert.Equal(t, "", code.Language)
	assert.Equal(t, "a\nb", code.Code)
}

func TestParagraphInterruption(t *testing.T) {
	got := Tokenize("text\n# H")
	require.Len(t, got, 2)
	assert.Equal(t, "text", got[0].(*token.Paragraph).Text)

	got = Tokenize("text\n> q")
	require.Len(t, got, 2)

	got = Tokenize("text\n- item")
	require.Len(t, got, 2)

	// a fence does not interrupt a paragraph
	got = Tokenize("text\n```\nmore")
	require.Len(t, got, 1)
	assert.Equal(t, "text\n```\nmore", got[0].(*token.Paragraph).Text)
}

// Joining every token's raw text with "\n" must reproduce the normalized
// input, whatever the input is.
func TestCoverageInvariant(t *testing.T) {
	inputs := []string{
		"",
		"# Title\n\nParagraph text",
		"```js\nconst x=1;",
		"```\nlast line```\ntrailing",
		"> a\n\n> b\nplain\n",
		"- a\n\n- b\n  cont\nplain",
		"| a | b |\n|---|---|\n| 1 | 2 |\nplain",
		"<div>\nnever closed",
		"    code\n\n    more\nplain",
		"text\r\nwindows\rold mac",
		"   \n\t\n",
		"####### seven\n***\n___",
	}
	for _, src := range inputs {
		lines := Normalize(src)
		var raws []string
		for _, b := range Scan(lines) {
			raws = append(raws, b.Raw())
		}
		assert.Equal(t, strings.Join(lines, "\n"), strings.Join(raws, "\n"),
			"coverage broken for %q", src)
	}
}

func TestLineNumbers(t *testing.T) {
	got := Tokenize("# a\n\npara\n\n> q")
	require.Len(t, got, 5)
	assert.Equal(t, 1, got[0].Line())
	assert.Equal(t, 3, got[2].Line())
	assert.Equal(t, 5, got[4].Line())
}
