package token

// Inline is a token produced by the inline scanner. Text fields on Link,
// Strong, Em and Del hold the unparsed inner span; the builder scans them
// again to produce nested nodes.
type Inline interface {
	inline()
}

type Text struct {
	Text string
}

type CodeSpan struct {
	Code string
}

type Link struct {
	Text  string
	Href  string
	Title string
}

type Image struct {
	Alt   string
	Src   string
	Title string
}

type Strong struct {
	Text string
}

type Em struct {
	Text string
}

type Del struct {
	Text string
}

func (*Text) inline()     {}
func (*CodeSpan) inline() {}
func (*Link) inline()     {}
func (*Image) inline()    {}
func (*Strong) inline()   {}
func (*Em) inline()       {}
func (*Del) inline()      {}
