package lexer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdtree/token"
)

func TestScanInlineBasics(t *testing.T) {
	got := ScanInline("a *em* and **bold** and `code`")
	want := []token.Inline{
		&token.Text{Text: "a "},
		&token.Em{Text: "em"},
		&token.Text{Text: " and "},
		&token.Strong{Text: "bold"},
		&token.Text{Text: " and "},
		&token.CodeSpan{Code: "code"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestPlainTextOnly(t *testing.T) {
	got := ScanInline("just plain words")
	require.Len(t, got, 1)
	assert.Equal(t, "just plain words", got[0].(*token.Text).Text)
}

func TestEscapes(t *testing.T) {
	got := ScanInline(`\*not emphasis\*`)
	require.Len(t, got, 1)
	assert.Equal(t, "*not emphasis*", got[0].(*token.Text).Text)
}

// The closing backtick run must have exactly the opening run's length.
func TestCodeSpanRunLength(t *testing.T) {
	got := ScanInline("``a`b``")
	require.Len(t, got, 1)
	assert.Equal(t, "a`b", got[0].(*token.CodeSpan).Code)

	// no matching close: falls back to text
	got = ScanInline("``never closed`")
	require.Len(t, got, 1)
	assert.Equal(t, "``never closed`", got[0].(*token.Text).Text)
}

func TestLinks(t *testing.T) {
	got := ScanInline(`see [docs](https://example.com "the title") here`)
	require.Len(t, got, 3)
	l := got[1].(*token.Link)
	assert.Equal(t, "docs", l.Text)
	assert.Equal(t, "https://example.com", l.Href)
	assert.Equal(t, "the title", l.Title)

	got = ScanInline("[no title](x)")
	l = got[0].(*token.Link)
	assert.Equal(t, "x", l.Href)
	assert.Equal(t, "", l.Title)
}

func TestMalformedLinkIsText(t *testing.T) {
	got := ScanInline("[x](")
	require.Len(t, got, 1)
	assert.Equal(t, "[x](", got[0].(*token.Text).Text)
}

func TestImages(t *testing.T) {
	got := ScanInline(`![alt text](img.png "t")`)
	require.Len(t, got, 1)
	img := got[0].(*token.Image)
	assert.Equal(t, "alt text", img.Alt)
	assert.Equal(t, "img.png", img.Src)
	assert.Equal(t, "t", img.Title)
}

func TestStrikethrough(t *testing.T) {
	got := ScanInline("~~gone~~")
	require.Len(t, got, 1)
	assert.Equal(t, "gone", got[0].(*token.Del).Text)

	got = ScanInlineWith("~~gone~~", Options{Strikethrough: false})
	require.Len(t, got, 1)
	assert.Equal(t, "~~gone~~", got[0].(*token.Text).Text)
}

func TestUnderscoreEmphasis(t *testing.T) {
	got := ScanInline("__bold__ and _em_")
	require.Len(t, got, 3)
	assert.Equal(t, "bold", got[0].(*token.Strong).Text)
	assert.Equal(t, "em", got[2].(*token.Em).Text)
}

// Ambiguous marker runs resolve by first match wins, not delimiter-run
// bookkeeping.
func TestOverlappingEmphasis(t *testing.T) {
	got := ScanInline("***bold* rest")
	want := []token.Inline{
		&token.Text{Text: "**"},
		&token.Em{Text: "bold"},
		&token.Text{Text: " rest"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

// Every iteration advances the position, so even marker soup terminates and
// comes back as text.
func TestTermination(t *testing.T) {
	inputs := []string{
		"***", "[[[", "``` `` `", "~~~~", "![", "\\",
		strings.Repeat("*", 999),
		strings.Repeat("[", 500),
	}
	for _, src := range inputs {
		got := ScanInline(src)
		require.NotEmpty(t, got, src)
		var sb strings.Builder
		for _, tok := range got {
			if txt, ok := tok.(*token.Text); ok {
				sb.WriteString(txt.Text)
			}
		}
		assert.Equal(t, src, sb.String(), "unmatched markers should survive as text")
	}
}
