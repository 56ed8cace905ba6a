package ast

import "encoding/json"

// Marshal serializes the tree into the plain tagged shape renderers and
// plugins rely on: "type" on every node, "children"/"items" for containers.
func Marshal(n Node) ([]byte, error) {
	return json.Marshal(object(n))
}

func MarshalIndent(n Node) ([]byte, error) {
	return json.MarshalIndent(object(n), "", "  ")
}

func object(n Node) map[string]interface{} {
	if n == nil {
		return nil
	}
	o := map[string]interface{}{"type": n.Type().String()}
	switch v := n.(type) {
	case *Root:
		o["children"] = objects(v.Children)
		o["nodeCount"] = v.NodeCount
	case *Heading:
		o["level"] = v.Level
		o["id"] = v.ID
		o["children"] = objects(v.Children)
		o["line"] = v.Line
	case *Paragraph:
		o["children"] = objects(v.Children)
		o["line"] = v.Line
	case *CodeBlock:
		o["language"] = v.Language
		o["code"] = v.Code
		o["lineCount"] = v.LineCount
		o["line"] = v.Line
	case *List:
		o["items"] = items(v.Items)
		o["line"] = v.Line
	case *OrderedList:
		o["items"] = items(v.Items)
		o["line"] = v.Line
	case *ListItem:
		o["children"] = objects(v.Children)
	case *Blockquote:
		o["children"] = objects(v.Children)
		o["line"] = v.Line
	case *Table:
		o["head"] = map[string]interface{}{"cells": cells(v.Head.Cells)}
		rows := make([]interface{}, len(v.Body.Rows))
		for i, r := range v.Body.Rows {
			rows[i] = map[string]interface{}{"cells": cells(r.Cells)}
		}
		o["body"] = map[string]interface{}{"rows": rows}
		o["line"] = v.Line
	case *TableCell:
		o["children"] = objects(v.Children)
		o["align"] = v.Align.String()
		o["isHeader"] = v.IsHeader
	case *Hr:
		o["line"] = v.Line
	case *HTML:
		o["html"] = v.HTML
		o["line"] = v.Line
	case *Text:
		o["text"] = v.Text
	case *InlineCode:
		o["code"] = v.Code
	case *Link:
		o["href"] = v.Href
		if v.Title != "" {
			o["title"] = v.Title
		}
		o["children"] = objects(v.Children)
	case *Image:
		o["alt"] = v.Alt
		o["src"] = v.Src
		if v.Title != "" {
			o["title"] = v.Title
		}
	}
	return o
}

func objects(nodes []Node) []interface{} {
	out := make([]interface{}, len(nodes))
	for i, n := range nodes {
		out[i] = object(n)
	}
	return out
}

func items(list []*ListItem) []interface{} {
	out := make([]interface{}, len(list))
	for i, it := range list {
		out[i] = object(it)
	}
	return out
}

func cells(list []*TableCell) []interface{} {
	out := make([]interface{}, len(list))
	for i, c := range list {
		out[i] = object(c)
	}
	return out
}
