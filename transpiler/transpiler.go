package transpiler

import (
	"fmt"
	"io"
	"unicode/utf8"

	"mdtree/ast"
	"mdtree/lexer"
	"mdtree/parser"
	"mdtree/render"
)

// Format selects the output Convert produces.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

func Convert(src string, f Format) (string, error) {
	return ConvertWith(src, f, lexer.DefaultOptions())
}

func ConvertWith(src string, f Format, opts lexer.Options) (string, error) {
	root, err := parser.NewWith(opts).Build(lexer.Tokenize(src))
	if err != nil {
		return "", err
	}
	switch f {
	case FormatHTML:
		return render.NewHTML().Render(root), nil
	case FormatMarkdown:
		return render.NewMarkdown().Render(root), nil
	case FormatJSON:
		data, err := ast.MarshalIndent(root)
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	}
	return "", fmt.Errorf("unknown output format %q", f)
}

// ConvertBytes rejects byte sequences that are not text.
func ConvertBytes(b []byte, f Format) (string, error) {
	if !utf8.Valid(b) {
		return "", parser.ErrInvalidInput
	}
	return Convert(string(b), f)
}

// ToHTML converts everything readable from in and writes the result to out.
func ToHTML(in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	s, err := ConvertBytes(data, FormatHTML)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, s)
	return err
}
