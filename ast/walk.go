package ast

import "fmt"

// ChildrenOf lists a node's direct children in document order. List items and
// table cells count as children of their list and table.
func ChildrenOf(n Node) []Node {
	switch v := n.(type) {
	case *Root:
		return v.Children
	case *Heading:
		return v.Children
	case *Paragraph:
		return v.Children
	case *List:
		return itemNodes(v.Items)
	case *OrderedList:
		return itemNodes(v.Items)
	case *ListItem:
		return v.Children
	case *Blockquote:
		return v.Children
	case *Table:
		return tableNodes(v)
	case *TableCell:
		return v.Children
	case *Link:
		return v.Children
	case *Strong:
		return v.Children
	case *Em:
		return v.Children
	case *Del:
		return v.Children
	}
	return nil
}

func itemNodes(items []*ListItem) []Node {
	nodes := make([]Node, len(items))
	for i, it := range items {
		nodes[i] = it
	}
	return nodes
}

func tableNodes(t *Table) []Node {
	var nodes []Node
	for _, c := range t.Head.Cells {
		nodes = append(nodes, c)
	}
	for _, r := range t.Body.Rows {
		for _, c := range r.Cells {
			nodes = append(nodes, c)
		}
	}
	return nodes
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// prunes the subtree below the current node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range ChildrenOf(n) {
		Walk(c, fn)
	}
}

// FilterByType collects every node of the wanted type, in document order.
func FilterByType(n Node, t NodeType) []Node {
	var out []Node
	Walk(n, func(m Node) bool {
		if m.Type() == t {
			out = append(out, m)
		}
		return true
	})
	return out
}

// Transform applies fn to every node in pre-order. A non-nil return value
// replaces the node; replacements for list items and table cells must keep
// their kind or they are ignored.
func Transform(n Node, fn func(Node) Node) Node {
	if n == nil {
		return nil
	}
	if r := fn(n); r != nil {
		n = r
	}
	switch v := n.(type) {
	case *Root:
		v.Children = transformAll(v.Children, fn)
	case *Heading:
		v.Children = transformAll(v.Children, fn)
	case *Paragraph:
		v.Children = transformAll(v.Children, fn)
	case *List:
		transformItems(v.Items, fn)
	case *OrderedList:
		transformItems(v.Items, fn)
	case *ListItem:
		v.Children = transformAll(v.Children, fn)
	case *Blockquote:
		v.Children = transformAll(v.Children, fn)
	case *Table:
		transformCells(v.Head.Cells, fn)
		for _, r := range v.Body.Rows {
			transformCells(r.Cells, fn)
		}
	case *TableCell:
		v.Children = transformAll(v.Children, fn)
	case *Link:
		v.Children = transformAll(v.Children, fn)
	case *Strong:
		v.Children = transformAll(v.Children, fn)
	case *Em:
		v.Children = transformAll(v.Children, fn)
	case *Del:
		v.Children = transformAll(v.Children, fn)
	}
	return n
}

func transformAll(nodes []Node, fn func(Node) Node) []Node {
	for i, n := range nodes {
		nodes[i] = Transform(n, fn)
	}
	return nodes
}

func transformItems(items []*ListItem, fn func(Node) Node) {
	for i, it := range items {
		if r, ok := Transform(it, fn).(*ListItem); ok {
			items[i] = r
		}
	}
}

func transformCells(cells []*TableCell, fn func(Node) Node) {
	for i, c := range cells {
		if r, ok := Transform(c, fn).(*TableCell); ok {
			cells[i] = r
		}
	}
}

// Validate checks the structural invariants a well-formed tree upholds: no
// nil nodes, a known type tag on every node, and heading levels within 1..6.
func Validate(n Node) error {
	if n == nil {
		return fmt.Errorf("nil node")
	}
	var err error
	Walk(n, func(m Node) bool {
		if err != nil {
			return false
		}
		if m == nil {
			err = fmt.Errorf("nil child node")
			return false
		}
		if m.Type().String() == "invalid" {
			err = fmt.Errorf("node with invalid type tag %d", m.Type())
			return false
		}
		if h, ok := m.(*Heading); ok && (h.Level < 1 || h.Level > 6) {
			err = fmt.Errorf("heading level %d out of range", h.Level)
			return false
		}
		for _, c := range ChildrenOf(m) {
			if c == nil {
				err = fmt.Errorf("%s node has a nil child", m.Type())
				return false
			}
		}
		return true
	})
	return err
}

// Count reports the number of nodes in the tree rooted at n, including n.
func Count(n Node) int {
	count := 0
	Walk(n, func(Node) bool {
		count++
		return true
	})
	return count
}
