package ast

import "mdtree/token"

type NodeType uint8

const (
	_ NodeType = iota
	RootType
	HeadingType
	ParagraphType
	CodeBlockType
	ListType
	OrderedListType
	ListItemType
	BlockquoteType
	TableType
	TableCellType
	HrType
	HTMLType
	TextType
	InlineCodeType
	LinkType
	ImageType
	StrongType
	EmType
	DelType
)

func (t NodeType) String() string {
	switch t {
	case RootType:
		return "root"
	case HeadingType:
		return "heading"
	case ParagraphType:
		return "paragraph"
	case CodeBlockType:
		return "code_block"
	case ListType:
		return "list"
	case OrderedListType:
		return "ordered_list"
	case ListItemType:
		return "list_item"
	case BlockquoteType:
		return "blockquote"
	case TableType:
		return "table"
	case TableCellType:
		return "table_cell"
	case HrType:
		return "hr"
	case HTMLType:
		return "html"
	case TextType:
		return "text"
	case InlineCodeType:
		return "inline_code"
	case LinkType:
		return "link"
	case ImageType:
		return "image"
	case StrongType:
		return "strong"
	case EmType:
		return "em"
	case DelType:
		return "del"
	}
	return "invalid"
}

// Node is a typed tree value. Children are kept in document order;
// concatenating their rendered forms reconstructs the document's reading
// order.
type Node interface {
	Type() NodeType
	node()
}

type Root struct {
	Children  []Node
	NodeCount int
}

type Heading struct {
	Level    int
	ID       string // slug of the flattened text, not deduplicated
	Children []Node
	Line     int
}

type Paragraph struct {
	Children []Node
	Line     int
}

type CodeBlock struct {
	Language  string
	Code      string
	LineCount int
	Line      int
}

type List struct {
	Items []*ListItem
	Line  int
}

type OrderedList struct {
	Items []*ListItem
	Line  int
}

type ListItem struct {
	Children []Node
}

type Blockquote struct {
	Children []Node
	Line     int
}

type TableHead struct {
	Cells []*TableCell
}

type TableRow struct {
	Cells []*TableCell
}

type TableBody struct {
	Rows []*TableRow
}

type Table struct {
	Head TableHead
	Body TableBody
	Line int
}

type TableCell struct {
	Children []Node
	Align    token.Alignment
	IsHeader bool
}

type Hr struct {
	Line int
}

type HTML struct {
	HTML string
	Line int
}

type Text struct {
	Text string
}

type InlineCode struct {
	Code string
}

type Link struct {
	Href     string
	Title    string
	Children []Node
}

type Image struct {
	Alt   string
	Src   string
	Title string
}

type Strong struct {
	Children []Node
}

type Em struct {
	Children []Node
}

type Del struct {
	Children []Node
}

func (*Root) Type() NodeType        { return RootType }
func (*Heading) Type() NodeType     { return HeadingType }
func (*Paragraph) Type() NodeType   { return ParagraphType }
func (*CodeBlock) Type() NodeType   { return CodeBlockType }
func (*List) Type() NodeType        { return ListType }
func (*OrderedList) Type() NodeType { return OrderedListType }
func (*ListItem) Type() NodeType    { return ListItemType }
func (*Blockquote) Type() NodeType  { return BlockquoteType }
func (*Table) Type() NodeType       { return TableType }
func (*TableCell) Type() NodeType   { return TableCellType }
func (*Hr) Type() NodeType          { return HrType }
func (*HTML) Type() NodeType        { return HTMLType }
func (*Text) Type() NodeType        { return TextType }
func (*InlineCode) Type() NodeType  { return InlineCodeType }
func (*Link) Type() NodeType        { return LinkType }
func (*Image) Type() NodeType       { return ImageType }
func (*Strong) Type() NodeType      { return StrongType }
func (*Em) Type() NodeType          { return EmType }
func (*Del) Type() NodeType         { return DelType }

func (*Root) node()        {}
func (*Heading) node()     {}
func (*Paragraph) node()   {}
func (*CodeBlock) node()   {}
func (*List) node()        {}
func (*OrderedList) node() {}
func (*ListItem) node()    {}
func (*Blockquote) node()  {}
func (*Table) node()       {}
func (*TableCell) node()   {}
func (*Hr) node()          {}
func (*HTML) node()        {}
func (*Text) node()        {}
func (*InlineCode) node()  {}
func (*Link) node()        {}
func (*Image) node()       {}
func (*Strong) node()      {}
func (*Em) node()          {}
func (*Del) node()         {}
