package parser

import "mdtree/ast"

// TOCEntry is one node of the table-of-contents forest. Entries created for
// skipped levels carry no text or id.
type TOCEntry struct {
	Level    int
	Text     string
	ID       string
	Children []*TOCEntry
}

// TableOfContents builds a heading forest with a level-tracking cursor.
// A level increase nests one new container per skipped level under the
// cursor. A drop attaches under the last node one level up anywhere in the
// forest; when there is none the entry lands under the last top-level entry,
// which can mis-attach a heading after several level-1 siblings. That
// behavior is kept for compatibility.
func TableOfContents(root *ast.Root) []*TOCEntry {
	var forest []*TOCEntry
	var cursor *TOCEntry
	for _, h := range ExtractHeadings(root) {
		entry := &TOCEntry{Level: h.Level, Text: h.Text, ID: h.ID}
		switch {
		case len(forest) == 0 || entry.Level == 1:
			forest = append(forest, entry)
		case entry.Level > cursor.Level:
			at := cursor
			for lvl := cursor.Level + 1; lvl < entry.Level; lvl++ {
				ph := &TOCEntry{Level: lvl}
				at.Children = append(at.Children, ph)
				at = ph
			}
			at.Children = append(at.Children, entry)
		default:
			parent := lastAtLevel(forest, entry.Level-1)
			if parent == nil {
				parent = forest[len(forest)-1]
			}
			parent.Children = append(parent.Children, entry)
		}
		cursor = entry
	}
	return forest
}

// lastAtLevel finds the node at the wanted level that comes last in a
// depth-first walk of the forest.
func lastAtLevel(forest []*TOCEntry, level int) *TOCEntry {
	var found *TOCEntry
	var visit func(*TOCEntry)
	visit = func(e *TOCEntry) {
		if e.Level == level {
			found = e
		}
		for _, c := range e.Children {
			visit(c)
		}
	}
	for _, e := range forest {
		visit(e)
	}
	return found
}
