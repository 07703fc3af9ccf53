// transformer.go rewrites a parsed document, replacing math spans with math
// nodes.
package md

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

type mathTransformer struct{}

var _ parser.ASTTransformer = (*mathTransformer)(nil)

// Transform implements parser.ASTTransformer. It does nothing unless the
// parser context enables ParseMath.
func (t *mathTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	opts, name := optionsFrom(pc)
	if !opts.Has(ParseMath) {
		return
	}
	r := &rewriter{
		source:    reader.Source(),
		loc:       newLocator(reader.Source(), name),
		sourcePos: opts.Has(SourcePositions),
	}
	r.rewriteChildren(doc)
}

// rewriter holds the per-document state of one Transform call.
type rewriter struct {
	source    []byte
	loc       *locator
	sourcePos bool
}

// rewriteChildren replaces math spans among the children of parent,
// keeping sibling order.
func (r *rewriter) rewriteChildren(parent ast.Node) {
	for c := parent.FirstChild(); c != nil; {
		switch n := c.(type) {
		case *ast.Text:
			c = r.rewriteTextRun(parent, n)
			continue
		case *ast.CodeSpan, *ast.Image:
			// alt text is rendered from the children as plain text
			c = c.NextSibling()
			continue
		case *ast.Paragraph, *ast.TextBlock:
			if m := blockMathFor(n, r.source, r.loc); m != nil {
				r.annotate(m)
				parent.ReplaceChild(parent, n, m)
				c = m.NextSibling()
				continue
			}
		}
		r.rewriteChildren(c)
		c = c.NextSibling()
	}
}

// rewriteTextRun splits the text run starting at first and returns the
// sibling following the run.
func (r *rewriter) rewriteTextRun(parent ast.Node, first *ast.Text) ast.Node {
	if !splittable(first) {
		return first.NextSibling()
	}
	leaves := []*ast.Text{first}
	for {
		prev := leaves[len(leaves)-1]
		if prev.SoftLineBreak() || prev.HardLineBreak() {
			break
		}
		t, ok := prev.NextSibling().(*ast.Text)
		if !ok || !splittable(t) || t.Segment.Start != prev.Segment.Stop {
			break
		}
		leaves = append(leaves, t)
	}
	next := leaves[len(leaves)-1].NextSibling()

	nodes := splitTextRun(leaves, r.source, r.loc)
	if nodes == nil {
		return next
	}
	for _, n := range nodes {
		if m, ok := n.(Math); ok {
			r.annotate(m)
		}
		parent.InsertBefore(parent, first, n)
	}
	for _, t := range leaves {
		parent.RemoveChild(parent, t)
	}
	return next
}

// splittable reports whether t holds plain text read directly from the
// source.
func splittable(t *ast.Text) bool {
	return !t.IsRaw() && t.Segment.Padding == 0
}

func (r *rewriter) annotate(m Math) {
	if !r.sourcePos {
		return
	}
	if rng := m.Range(); rng != nil {
		m.SetAttributeString("data-sourcepos", []byte(rng.Coordinates()))
	}
}
