package md

import "fmt"

// Visitor has one method per math node variant.
type Visitor[R any] interface {
	VisitInlineMath(n *InlineMath) R
	VisitBlockMath(n *BlockMath) R
}

// Accept dispatches n to the matching Visitor method and returns its result.
func Accept[R any](n Math, v Visitor[R]) R {
	switch node := n.(type) {
	case *InlineMath:
		return v.VisitInlineMath(node)
	case *BlockMath:
		return v.VisitBlockMath(node)
	}
	// Math is sealed by its unexported method.
	panic(fmt.Sprintf("md: unhandled math node %T", n))
}
