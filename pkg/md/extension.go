// extension.go registers math support with goldmark.
package md

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

type mathExtension struct{}

// MathExtension is a goldmark extension adding InlineMath and BlockMath.
// Detection only runs for parser contexts created with ParseMath, see
// NewContext.
var MathExtension goldmark.Extender = &mathExtension{}

// Extend implements goldmark.Extender.
func (e *mathExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&mathTransformer{}, 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&mathHTMLRenderer{}, 500),
	))
}

// mathHTMLRenderer renders math as code elements of class language-math.
type mathHTMLRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *mathHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindInlineMath, r.renderMath)
	reg.Register(KindBlockMath, r.renderMath)
}

func (r *mathHTMLRenderer) renderMath(w util.BufWriter, _ []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	m, ok := n.(Math)
	if !ok {
		return ast.WalkContinue, nil
	}
	if err := Accept[error](m, htmlVisitor{w: w}); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}

// htmlVisitor writes a math node to w.
type htmlVisitor struct {
	w util.BufWriter
}

func (v htmlVisitor) code(n ast.Node, code string) {
	_, _ = v.w.WriteString(`<code class="language-math"`)
	html.RenderAttributes(v.w, n, nil)
	_ = v.w.WriteByte('>')
	_, _ = v.w.Write(util.EscapeHTML([]byte(code)))
}

func (v htmlVisitor) VisitInlineMath(n *InlineMath) error {
	v.code(n, n.Code())
	_, err := v.w.WriteString("</code>")
	return err
}

func (v htmlVisitor) VisitBlockMath(n *BlockMath) error {
	_, _ = v.w.WriteString("<pre>")
	v.code(n, n.Code())
	_, err := v.w.WriteString("\n</code></pre>\n")
	return err
}
