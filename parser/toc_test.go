package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTOC(t *testing.T, src string) []*TOCEntry {
	t.Helper()
	root, err := Parse(src)
	require.NoError(t, err)
	return TableOfContents(root)
}

func TestTOCNesting(t *testing.T) {
	toc := mustTOC(t, "# A\n## B\n### C\n## D\n# E")
	require.Len(t, toc, 2)

	a := toc[0]
	assert.Equal(t, "A", a.Text)
	require.Len(t, a.Children, 2)
	assert.Equal(t, "B", a.Children[0].Text)
	assert.Equal(t, "D", a.Children[1].Text)

	b := a.Children[0]
	require.Len(t, b.Children, 1)
	assert.Equal(t, "C", b.Children[0].Text)
	assert.Equal(t, "c", b.Children[0].ID)

	assert.Equal(t, "E", toc[1].Text)
}

// A jump over a level inserts an empty container entry per skipped level.
func TestTOCSkippedLevel(t *testing.T) {
	toc := mustTOC(t, "# A\n### C")
	require.Len(t, toc, 1)
	require.Len(t, toc[0].Children, 1)

	ph := toc[0].Children[0]
	assert.Equal(t, 2, ph.Level)
	assert.Equal(t, "", ph.Text)
	require.Len(t, ph.Children, 1)
	assert.Equal(t, "C", ph.Children[0].Text)
}

// A document that opens below level 1 keeps the mis-attachment of a later
// shallower heading under the first entry.
func TestTOCShallowAfterDeepOpening(t *testing.T) {
	toc := mustTOC(t, "### X\n## Y")
	require.Len(t, toc, 1)
	assert.Equal(t, "X", toc[0].Text)
	require.Len(t, toc[0].Children, 1)
	assert.Equal(t, "Y", toc[0].Children[0].Text)
}

func TestTOCEmpty(t *testing.T) {
	toc := mustTOC(t, "no headings here")
	assert.Empty(t, toc)
}
