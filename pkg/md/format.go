package md

import "strings"

// FormatMath renders n back to Markdown: $code$ for inline math and
// $$, code, $$ on separate lines for block math.
func FormatMath(n Math) string {
	return Accept[string](n, markdownVisitor{})
}

type markdownVisitor struct{}

func (markdownVisitor) VisitInlineMath(n *InlineMath) string {
	return n.PlainText()
}

func (markdownVisitor) VisitBlockMath(n *BlockMath) string {
	var b strings.Builder
	b.WriteString("$$\n")
	if code := n.Code(); code != "" {
		b.WriteString(code)
		b.WriteString("\n")
	}
	b.WriteString("$$")
	return b.String()
}
