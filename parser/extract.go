package parser

import "mdtree/ast"

type HeadingInfo struct {
	Level int
	Text  string
	ID    string
	Line  int
}

type LinkInfo struct {
	Href  string
	Title string
	Text  string
}

type ImageInfo struct {
	Src   string
	Alt   string
	Title string
}

// ExtractHeadings lists every heading in document order.
func ExtractHeadings(root *ast.Root) []HeadingInfo {
	var out []HeadingInfo
	for _, n := range ast.FilterByType(root, ast.HeadingType) {
		h := n.(*ast.Heading)
		out = append(out, HeadingInfo{
			Level: h.Level,
			Text:  flatten(h.Children),
			ID:    h.ID,
			Line:  h.Line,
		})
	}
	return out
}

func ExtractLinks(root *ast.Root) []LinkInfo {
	var out []LinkInfo
	for _, n := range ast.FilterByType(root, ast.LinkType) {
		l := n.(*ast.Link)
		out = append(out, LinkInfo{
			Href:  l.Href,
			Title: l.Title,
			Text:  flatten(l.Children),
		})
	}
	return out
}

func ExtractImages(root *ast.Root) []ImageInfo {
	var out []ImageInfo
	for _, n := range ast.FilterByType(root, ast.ImageType) {
		img := n.(*ast.Image)
		out = append(out, ImageInfo{Src: img.Src, Alt: img.Alt, Title: img.Title})
	}
	return out
}
