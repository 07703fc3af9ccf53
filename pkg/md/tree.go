package md

import (
	"github.com/yuin/goldmark/ast"
)

// TreeNode is a JSON-friendly view of one node of a parsed document.
type TreeNode struct {
	Kind     string       `json:"kind"`
	Range    *SourceRange `json:"range,omitempty"`
	Code     string       `json:"code,omitempty"`
	Text     string       `json:"text,omitempty"`
	Children []*TreeNode  `json:"children,omitempty"`
}

// Tree converts the document into a TreeNode hierarchy.
func (d *Document) Tree() *TreeNode {
	c := &treeConverter{source: d.Source, loc: newLocator(d.Source, d.Name)}
	return c.convertNode(d.Root)
}

// treeConverter holds state during AST conversion.
type treeConverter struct {
	source []byte
	loc    *locator
}

func (c *treeConverter) convertNode(n ast.Node) *TreeNode {
	if m, ok := n.(Math); ok {
		return Accept[*TreeNode](m, treeVisitor{})
	}

	node := &TreeNode{
		Kind:  n.Kind().String(),
		Range: c.rangeOf(n),
	}
	switch typed := n.(type) {
	case *ast.Text:
		node.Text = string(typed.Segment.Value(c.source))
		if typed.SoftLineBreak() || typed.HardLineBreak() {
			node.Text += "\n"
		}
	case *ast.String:
		node.Text = string(typed.Value)
	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
		node.Code = c.linesOf(n)
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		node.Children = append(node.Children, c.convertNode(child))
	}
	return node
}

// rangeOf derives a range from text segments or block lines; nil when the
// node carries neither.
func (c *treeConverter) rangeOf(n ast.Node) *SourceRange {
	if t, ok := n.(*ast.Text); ok {
		return c.loc.span(t.Segment.Start, t.Segment.Stop)
	}
	if n.Type() != ast.TypeBlock {
		return nil
	}
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return nil
	}
	first, last := lines.At(0), lines.At(lines.Len()-1)
	return c.loc.span(first.Start, last.Stop)
}

func (c *treeConverter) linesOf(n ast.Node) string {
	var code []byte
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code = append(code, line.Value(c.source)...)
	}
	return string(code)
}

type treeVisitor struct{}

func (treeVisitor) VisitInlineMath(n *InlineMath) *TreeNode {
	return &TreeNode{Kind: KindInlineMath.String(), Range: n.Range(), Code: n.Code()}
}

func (treeVisitor) VisitBlockMath(n *BlockMath) *TreeNode {
	return &TreeNode{Kind: KindBlockMath.String(), Range: n.Range(), Code: n.Code()}
}
