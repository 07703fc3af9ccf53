// Package md parses Markdown with inline ($...$) and block ($$...$$) math
// and converts it to and from HTML.
package md

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// mdParser is a pre-configured goldmark instance with GFM tables,
// strikethrough and math.
var mdParser = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		MathExtension,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// ToHTML converts markdown content to HTML.
func ToHTML(markdown []byte, opts ParseOptions) (string, error) {
	if len(markdown) == 0 {
		return "", nil
	}
	return Parse(markdown, opts).HTML()
}

// HTML renders the document.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := mdParser.Renderer().Render(&buf, d.Source, d.Root); err != nil {
		return "", err
	}
	return buf.String(), nil
}
