package render

import (
	"fmt"
	"strings"

	"mdtree/ast"
	"mdtree/token"
)

// Markdown re-emits a tree as normalized markup. Formatting is canonical, not
// a byte-for-byte copy of the source.
type Markdown struct {
	table map[ast.NodeType]func(ast.Node) string
}

func NewMarkdown() *Markdown {
	r := &Markdown{}
	r.table = map[ast.NodeType]func(ast.Node) string{
		ast.RootType:        r.root,
		ast.HeadingType:     r.heading,
		ast.ParagraphType:   r.paragraph,
		ast.CodeBlockType:   r.codeBlock,
		ast.ListType:        r.list,
		ast.OrderedListType: r.orderedList,
		ast.BlockquoteType:  r.blockquote,
		ast.TableType:       r.mdTable,
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

func (r *Markdown) Render(n ast.Node) string {
	if n == nil {
		return ""
	}
	if fn, ok := r.table[n.Type()]; ok {
		return fn(n)
	}
	return r.children(n)
}

func (r *Markdown) children(n ast.Node) string {
	var sb strings.Builder
	for _, c := range ast.ChildrenOf(n) {
		sb.WriteString(r.Render(c))
	}
	return sb.String()
}

func (r *Markdown) root(n ast.Node) string {
	return strings.TrimRight(r.children(n), "\n") + "\n"
}

func (r *Markdown) heading(n ast.Node) string {
	h := n.(*ast.Heading)
	return fmt.Sprintf("%s %s\n\n", strings.Repeat("#", h.Level), r.children(h))
}

func (r *Markdown) paragraph(n ast.Node) string {
	return r.children(n) + "\n\n"
}

func (r *Markdown) codeBlock(n ast.Node) string {
	c := n.(*ast.CodeBlock)
	return fmt.Sprintf("```%s\n%s\n```\n\n", c.Language, c.Code)
}

func (r *Markdown) list(n ast.Node) string {
	var sb strings.Builder
	for _, it := range n.(*ast.List).Items {
		fmt.Fprintf(&sb, "- %s\n", r.children(it))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *Markdown) orderedList(n ast.Node) string {
	var sb strings.Builder
	for i, it := range n.(*ast.OrderedList).Items {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, r.children(it))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *Markdown) blockquote(n ast.Node) string {
	inner := strings.TrimRight(r.children(n), "\n")
	var sb strings.Builder
	for _, ln := range strings.Split(inner, "\n") {
		if ln == "" {
			sb.WriteString(">\n")
		} else {
			sb.WriteString("> " + ln + "\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *Markdown) mdTable(n ast.Node) string {
	t := n.(*ast.Table)
	var sb strings.Builder
	sb.WriteString("|")
	for _, c := range t.Head.Cells {
		sb.WriteString(" " + r.children(c) + " |")
	}
	sb.WriteString("\n|")
	for _, c := range t.Head.Cells {
		sb.WriteString(" " + separator(c.Align) + " |")
	}
	sb.WriteString("\n")
	for _, row := range t.Body.Rows {
		sb.WriteString("|")
		for _, c := range row.Cells {
			sb.WriteString(" " + r.children(c) + " |")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func separator(a token.Alignment) string {
	switch a {
	case token.AlignLeft:
		return ":---"
	case token.AlignCenter:
		return ":---:"
	case token.AlignRight:
		return "---:"
	}
	return "---"
}

func (r *Markdown) hr(ast.Node) string {
	return "---\n\n"
}

func (r *Markdown) rawHTML(n ast.Node) string {
	return n.(*ast.HTML).HTML + "\n\n"
}

func (r *Markdown) text(n ast.Node) string {
	return n.(*ast.Text).Text
}

func (r *Markdown) inlineCode(n ast.Node) string {
	return "`" + n.(*ast.InlineCode).Code + "`"
}

func (r *Markdown) link(n ast.Node) string {
	l := n.(*ast.Link)
	if l.Title != "" {
		return fmt.Sprintf("[%s](%s %q)", r.children(l), l.Href, l.Title)
	}
	return fmt.Sprintf("[%s](%s)", r.children(l), l.Href)
}

func (r *Markdown) image(n ast.Node) string {
	img := n.(*ast.Image)
	if img.Title != "" {
		return fmt.Sprintf("![%s](%s %q)", img.Alt, img.Src, img.Title)
	}
	return fmt.Sprintf("![%s](%s)", img.Alt, img.Src)
}

func (r *Markdown) strong(n ast.Node) string {
	return "**" + r.children(n) + "**"
}

func (r *Markdown) em(n ast.Node) string {
	return "*" + r.children(n) + "*"
}

func (r *Markdown) del(n ast.Node) string {
	return "~~" + r.children(n) + "~~"
}
