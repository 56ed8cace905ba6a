package transpiler

import (
	"strings"

	"mdtree/ast"
)

// Stats summarizes a parsed document.
type Stats struct {
	Words      int
	Headings   int
	Paragraphs int
	Links      int
	Images     int
	CodeBlocks int
	Tables     int
}

func Measure(root *ast.Root) Stats {
	var s Stats
	ast.Walk(root, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.Text:
			s.Words += len(strings.Fields(v.Text))
		case *ast.Heading:
			s.Headings++
		case *ast.Paragraph:
			s.Paragraphs++
		case *ast.Link:
			s.Links++
		case *ast.Image:
			s.Images++
		case *ast.CodeBlock:
			s.CodeBlocks++
		case *ast.Table:
			s.Tables++
		}
		return true
	})
	return s
}
