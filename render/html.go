package render

import (
	"fmt"
	"html"
	"strings"

	"mdtree/ast"
	"mdtree/token"
)

var escape = html.EscapeString

// HTML renders a tree through a table keyed by node type. Nodes without a
// handler fall back to the concatenation of their rendered children.
type HTML struct {
	table map[ast.NodeType]func(ast.Node) string
}

func NewHTML() *HTML {
	r := &HTML{}
	r.table = map[ast.NodeType]func(ast.Node) string{
		ast.HeadingType:     r.heading,
		ast.ParagraphType:   r.paragraph,
		ast.CodeBlockType:   r.codeBlock,
		ast.ListType:        r.list,
		ast.OrderedListType: r.orderedList,
		ast.BlockquoteType:  r.blockquote,
		ast.TableType:       r.htmlTable,
		ast.HrType:          r.hr,
		ast.HTMLType:        r.rawHTML,
		ast.TextType:        r.text,
		ast.InlineCodeType:  r.inlineCode,
		ast.LinkType:        r.link,
		ast.ImageType:       r.image,
		ast.StrongType:      r.strong,
		ast.EmType:          r.em,
		ast.DelType:         r.del,
	}
	return r
}

func (r *HTML) Render(n ast.Node) string {
	if n == nil {
		return ""
	}
	if fn, ok := r.table[n.Type()]; ok {
		return fn(n)
	}
	return r.children(n)
}

func (r *HTML) children(n ast.Node) string {
	var sb strings.Builder
	for _, c := range ast.ChildrenOf(n) {
		sb.WriteString(r.Render(c))
	}
	return sb.String()
}

func (r *HTML) heading(n ast.Node) string {
	h := n.(*ast.Heading)
	return fmt.Sprintf("<h%d id=%q>%s</h%d>\n", h.Level, h.ID, r.children(h), h.Level)
}

func (r *HTML) paragraph(n ast.Node) string {
	return fmt.Sprintf("<p>%s</p>\n", r.children(n))
}

func (r *HTML) codeBlock(n ast.Node) string {
	c := n.(*ast.CodeBlock)
	if c.Language == "" {
		return fmt.Sprintf("<pre><code>%s</code></pre>\n", escape(c.Code))
	}
	return fmt.Sprintf("<pre><code class=%q>%s</code></pre>\n",
		"language-"+c.Language, escape(c.Code))
}

func (r *HTML) list(n ast.Node) string {
	return fmt.Sprintf("<ul>\n%s</ul>\n", r.listItems(n.(*ast.List).Items))
}

func (r *HTML) orderedList(n ast.Node) string {
	return fmt.Sprintf("<ol>\n%s</ol>\n", r.listItems(n.(*ast.OrderedList).Items))
}

func (r *HTML) listItems(items []*ast.ListItem) string {
	var sb strings.Builder
	for _, it := range items {
		fmt.Fprintf(&sb, "<li>%s</li>\n", r.children(it))
	}
	return sb.String()
}

func (r *HTML) blockquote(n ast.Node) string {
	return fmt.Sprintf("<blockquote>\n%s</blockquote>\n", r.children(n))
}

func (r *HTML) htmlTable(n ast.Node) string {
	t := n.(*ast.Table)
	var sb strings.Builder
	sb.WriteString("<table>\n<thead>\n<tr>\n")
	for _, c := range t.Head.Cells {
		fmt.Fprintf(&sb, "<th%s>%s</th>\n", alignAttr(c.Align), r.children(c))
	}
	sb.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, row := range t.Body.Rows {
		sb.WriteString("<tr>\n")
		for _, c := range row.Cells {
			fmt.Fprintf(&sb, "<td%s>%s</td>\n", alignAttr(c.Align), r.children(c))
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</tbody>\n</table>\n")
	return sb.String()
}

func alignAttr(a token.Alignment) string {
	if a == token.AlignNone {
		return ""
	}
	return fmt.Sprintf(" align=%q", a.String())
}

func (r *HTML) hr(ast.Node) string {
	return "<hr>\n"
}

// rawHTML passes the block through untouched; sanitization is left to the
// consumer.
func (r *HTML) rawHTML(n ast.Node) string {
	return n.(*ast.HTML).HTML + "\n"
}

func (r *HTML) text(n ast.Node) string {
	return escape(n.(*ast.Text).Text)
}

func (r *HTML) inlineCode(n ast.Node) string {
	return fmt.Sprintf("<code>%s</code>", escape(n.(*ast.InlineCode).Code))
}

func (r *HTML) link(n ast.Node) string {
	l := n.(*ast.Link)
	if l.Title != "" {
		return fmt.Sprintf("<a href=%q title=%q>%s</a>",
			escape(l.Href), escape(l.Title), r.children(l))
	}
	return fmt.Sprintf("<a href=%q>%s</a>", escape(l.Href), r.children(l))
}

func (r *HTML) image(n ast.Node) string {
	img := n.(*ast.Image)
	if img.Title != "" {
		return fmt.Sprintf("<img src=%q alt=%q title=%q>",
			escape(img.Src), escape(img.Alt), escape(img.Title))
	}
	return fmt.Sprintf("<img src=%q alt=%q>", escape(img.Src), escape(img.Alt))
}

func (r *HTML) strong(n ast.Node) string {
	return fmt.Sprintf("<strong>%s</strong>", r.children(n))
}

func (r *HTML) em(n ast.Node) string {
	return fmt.Sprintf("<em>%s</em>", r.children(n))
}

func (r *HTML) del(n ast.Node) string {
	return fmt.Sprintf("<del>%s</del>", r.children(n))
}
