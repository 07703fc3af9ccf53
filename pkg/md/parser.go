// parser.go parses Markdown documents with the math rewrite applied.
package md

import (
	"fmt"
	"os"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Document is a parsed Markdown document together with its source.
type Document struct {
	Root   *ast.Document
	Source []byte
	Name   string // source identity used in ranges, may be empty
}

// Parse parses markdown. Math is detected only when opts has ParseMath.
func Parse(markdown []byte, opts ParseOptions) *Document {
	return ParseNamed(markdown, "", opts)
}

// ParseNamed is Parse with a source name recorded in every range.
func ParseNamed(markdown []byte, name string, opts ParseOptions) *Document {
	pc := NewContext(opts, name)
	root := mdParser.Parser().Parse(text.NewReader(markdown), parser.WithContext(pc))
	return &Document{
		Root:   root.(*ast.Document),
		Source: markdown,
		Name:   name,
	}
}

// ParseFile reads and parses the file at path.
func ParseFile(path string, opts ParseOptions) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read markdown file: %w", err)
	}
	return ParseNamed(data, path, opts), nil
}

// MathNodes returns the math nodes of the document in document order.
func (d *Document) MathNodes() []Math {
	var nodes []Math
	_ = ast.Walk(d.Root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if m, ok := n.(Math); ok {
			nodes = append(nodes, m)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return nodes
}
