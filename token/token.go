package token

import "fmt"

// Block is a block-level token produced by the line scanner. Joining the Raw
// of every token from a scan with "\n" reproduces the scanned input.
type Block interface {
	Raw() string
	Line() int
	block()
}

// Span carries the source text and the 1-based starting line shared by every
// block variant.
type Span struct {
	RawText string
	LineNo  int
}

func (s Span) Raw() string { return s.RawText }
func (s Span) Line() int   { return s.LineNo }
func (s Span) block()      {}

type Blank struct {
	Span
}

type Heading struct {
	Span
	Level int // 1 through 6
	Text  string
}

type Paragraph struct {
	Span
	Text string // source lines joined with "\n"
}

type CodeBlock struct {
	Span
	Language string // empty for indented code
	Code     string
}

type ListItem struct {
	Marker  string
	Content string
	RawText string
	LineNo  int
}

type List struct {
	Span
	Ordered bool
	Items   []ListItem
}

// Blockquote content is kept raw with the quote markers stripped; the builder
// scans it again.
type Blockquote struct {
	Span
	Content string
}

type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return ""
}

type TableCell struct {
	Text  string
	Align Alignment
}

type Table struct {
	Span
	Headers []TableCell
	Rows    [][]string
}

type Rule struct {
	Span
}

type HTMLBlock struct {
	Span
	HTML string
}

func (h *Heading) String() string {
	return fmt.Sprintf("Heading(%d, %q)", h.Level, h.Text)
}

func (p *Paragraph) String() string {
	return fmt.Sprintf("Paragraph(%q)", p.Text)
}

func (c *CodeBlock) String() string {
	return fmt.Sprintf("CodeBlock(%q, %q)", c.Language, c.Code)
}
