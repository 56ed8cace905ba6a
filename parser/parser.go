package parser

import (
	"fmt"
	"strings"

	"mdtree/ast"
	"mdtree/lexer"
	"mdtree/token"
)

// Builder turns a block token stream into a node tree. A Builder may be
// reused for sequential builds but not concurrently; the reference map is
// reset at the start of every Build.
type Builder struct {
	opts lexer.Options
	refs map[string]string // link reference definitions; reserved, nothing populates it yet
}

func New() *Builder {
	return NewWith(lexer.DefaultOptions())
}

func NewWith(opts lexer.Options) *Builder {
	return &Builder{opts: opts}
}

// Parse scans and builds in one step.
func Parse(src string) (*ast.Root, error) {
	return New().Build(lexer.Tokenize(src))
}

func (b *Builder) Build(blocks []token.Block) (*ast.Root, error) {
	b.refs = make(map[string]string)
	if err := checkBlocks(blocks); err != nil {
		return nil, err
	}
	root := &ast.Root{}
	for _, blk := range blocks {
		if n := b.buildBlock(blk); n != nil {
			root.Children = append(root.Children, n)
		}
	}
	root.NodeCount = ast.Count(root)
	return root, nil
}

// checkBlocks guards against hand-built token arrays missing required
// fields. The scanner's own output always passes.
func checkBlocks(blocks []token.Block) error {
	for i, blk := range blocks {
		switch v := blk.(type) {
		case nil:
			return fmt.Errorf("%w: nil token at index %d", ErrMalformedTokenStream, i)
		case *token.List:
			if v.Items == nil {
				return fmt.Errorf("%w: list token at line %d has no items", ErrMalformedTokenStream, v.Line())
			}
		case *token.Table:
			if v.Headers == nil {
				return fmt.Errorf("%w: table token at line %d has no headers", ErrMalformedTokenStream, v.Line())
			}
		case *token.Heading:
			if v.Level < 1 || v.Level > 6 {
				return fmt.Errorf("%w: heading token at line %d has level %d", ErrMalformedTokenStream, v.Line(), v.Level)
			}
		}
	}
	return nil
}

func (b *Builder) buildBlock(blk token.Block) ast.Node {
	switch v := blk.(type) {
	case *token.Blank:
		return nil
	case *token.Heading:
		children := b.inline(v.Text)
		return &ast.Heading{
			Level:    v.Level,
			ID:       Slug(flatten(children)),
			Children: children,
			Line:     v.Line(),
		}
	case *token.Paragraph:
		return &ast.Paragraph{Children: b.inline(v.Text), Line: v.Line()}
	case *token.CodeBlock:
		return &ast.CodeBlock{
			Language:  v.Language,
			Code:      v.Code,
			LineCount: strings.Count(v.Code, "\n") + 1,
			Line:      v.Line(),
		}
	case *token.List:
		items := make([]*ast.ListItem, len(v.Items))
		for i, it := range v.Items {
			items[i] = &ast.ListItem{Children: b.inline(it.Content)}
		}
		if v.Ordered {
			return &ast.OrderedList{Items: items, Line: v.Line()}
		}
		return &ast.List{Items: items, Line: v.Line()}
	case *token.Blockquote:
		// quoted content goes through a fresh block scan, which is how
		// quoted headings, lists and nested quotes come out typed
		var children []ast.Node
		for _, inner := range lexer.Scan(strings.Split(v.Content, "\n")) {
			if n := b.buildBlock(inner); n != nil {
				children = append(children, n)
			}
		}
		return &ast.Blockquote{Children: children, Line: v.Line()}
	case *token.Table:
		return b.buildTable(v)
	case *token.Rule:
		return &ast.Hr{Line: v.Line()}
	case *token.HTMLBlock:
		return &ast.HTML{HTML: v.HTML, Line: v.Line()}
	}
	return nil
}

func (b *Builder) buildTable(t *token.Table) ast.Node {
	head := ast.TableHead{Cells: make([]*ast.TableCell, len(t.Headers))}
	for i, h := range t.Headers {
		head.Cells[i] = &ast.TableCell{
			Children: b.inline(h.Text),
			Align:    h.Align,
			IsHeader: true,
		}
	}
	body := ast.TableBody{Rows: make([]*ast.TableRow, len(t.Rows))}
	for i, row := range t.Rows {
		r := &ast.TableRow{Cells: make([]*ast.TableCell, len(row))}
		for j, text := range row {
			align := token.AlignNone
			if j < len(t.Headers) {
				align = t.Headers[j].Align
			}
			r.Cells[j] = &ast.TableCell{Children: b.inline(text), Align: align}
		}
		body.Rows[i] = r
	}
	return &ast.Table{Head: head, Body: body, Line: t.Line()}
}

// inline scans a text span and maps the tokens onto nodes. Inner spans of
// emphasis and link labels are scanned again; every inner span is strictly
// shorter than the span that produced it, so the recursion is bounded.
func (b *Builder) inline(text string) []ast.Node {
	var nodes []ast.Node
	for _, t := range lexer.ScanInlineWith(text, b.opts) {
		switch v := t.(type) {
		case *token.Text:
			nodes = append(nodes, &ast.Text{Text: v.Text})
		case *token.CodeSpan:
			nodes = append(nodes, &ast.InlineCode{Code: v.Code})
		case *token.Strong:
			nodes = append(nodes, &ast.Strong{Children: b.inline(v.Text)})
		case *token.Em:
			nodes = append(nodes, &ast.Em{Children: b.inline(v.Text)})
		case *token.Del:
			nodes = append(nodes, &ast.Del{Children: b.inline(v.Text)})
		case *token.Link:
			nodes = append(nodes, &ast.Link{
				Href:     v.Href,
				Title:    v.Title,
				Children: b.inline(v.Text),
			})
		case *token.Image:
			nodes = append(nodes, &ast.Image{Alt: v.Alt, Src: v.Src, Title: v.Title})
		}
	}
	return nodes
}

// flatten concatenates the text and inline code under the given nodes.
func flatten(nodes []ast.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		ast.Walk(n, func(m ast.Node) bool {
			switch v := m.(type) {
			case *ast.Text:
				sb.WriteString(v.Text)
			case *ast.InlineCode:
				sb.WriteString(v.Code)
			}
			return true
		})
	}
	return sb.String()
}
