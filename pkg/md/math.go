// math.go defines the inline and block math nodes.
package md

import (
	"fmt"

	"github.com/yuin/goldmark/ast"
)

// KindInlineMath is the node kind of InlineMath.
var KindInlineMath = ast.NewNodeKind("InlineMath")

// KindBlockMath is the node kind of BlockMath.
var KindBlockMath = ast.NewNodeKind("BlockMath")

// RawMath is the payload a math node wraps. Range is nil for nodes that were
// not produced from parsed text.
type RawMath struct {
	Kind  ast.NodeKind
	Code  string
	Range *SourceRange
}

// TypeMismatchError is returned when a math node is built from a payload
// tagged for a different node kind.
type TypeMismatchError struct {
	Expected ast.NodeKind
	Actual   ast.NodeKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("md: expected %s payload, got %s", e.Expected, e.Actual)
}

// Math is implemented by InlineMath and BlockMath only.
type Math interface {
	ast.Node
	Code() string
	SetCode(code string)
	Range() *SourceRange
	raw() RawMath
}

// InlineMath is a $...$ span inside a paragraph. It has no children.
type InlineMath struct {
	ast.BaseInline
	payload RawMath
}

var _ Math = (*InlineMath)(nil)

// NewInlineMath returns an InlineMath with no source range.
func NewInlineMath(code string) *InlineMath {
	return &InlineMath{payload: RawMath{Kind: KindInlineMath, Code: code}}
}

// NewInlineMathFromRaw wraps a parsed payload.
func NewInlineMathFromRaw(raw RawMath) (*InlineMath, error) {
	if raw.Kind != KindInlineMath {
		return nil, &TypeMismatchError{Expected: KindInlineMath, Actual: raw.Kind}
	}
	return &InlineMath{payload: raw}, nil
}

// Code returns the text between the delimiters.
func (n *InlineMath) Code() string { return n.payload.Code }

// SetCode replaces the payload; the node loses its source range.
func (n *InlineMath) SetCode(code string) {
	n.payload = RawMath{Kind: KindInlineMath, Code: code}
}

// Range returns the span from the opening to the closing dollar, or nil.
func (n *InlineMath) Range() *SourceRange { return n.payload.Range }

// PlainText reconstructs the literal $code$ form.
func (n *InlineMath) PlainText() string {
	return "$" + n.payload.Code + "$"
}

// Kind implements ast.Node.Kind.
func (n *InlineMath) Kind() ast.NodeKind { return KindInlineMath }

// Dump implements ast.Node.Dump.
func (n *InlineMath) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, dumpFields(n), nil)
}

func (n *InlineMath) raw() RawMath { return n.payload }

// BlockMath is a display math block that replaced a whole paragraph.
// It has no children.
type BlockMath struct {
	ast.BaseBlock
	payload RawMath
}

var _ Math = (*BlockMath)(nil)

// NewBlockMath returns a BlockMath with no source range.
func NewBlockMath(code string) *BlockMath {
	return &BlockMath{payload: RawMath{Kind: KindBlockMath, Code: code}}
}

// NewBlockMathFromRaw wraps a parsed payload.
func NewBlockMathFromRaw(raw RawMath) (*BlockMath, error) {
	if raw.Kind != KindBlockMath {
		return nil, &TypeMismatchError{Expected: KindBlockMath, Actual: raw.Kind}
	}
	return &BlockMath{payload: raw}, nil
}

// Code returns the text between the $$ delimiters.
func (n *BlockMath) Code() string { return n.payload.Code }

// SetCode replaces the payload; the node loses its source range.
func (n *BlockMath) SetCode(code string) {
	n.payload = RawMath{Kind: KindBlockMath, Code: code}
}

// Range returns the range of the paragraph the block replaced, or nil.
func (n *BlockMath) Range() *SourceRange { return n.payload.Range }

// Kind implements ast.Node.Kind.
func (n *BlockMath) Kind() ast.NodeKind { return KindBlockMath }

// IsRaw reports true: the content is never parsed as Markdown.
func (n *BlockMath) IsRaw() bool { return true }

// Dump implements ast.Node.Dump.
func (n *BlockMath) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, dumpFields(n), nil)
}

func (n *BlockMath) raw() RawMath { return n.payload }

func dumpFields(n Math) map[string]string {
	m := map[string]string{"Code": fmt.Sprintf("%q", n.Code())}
	if r := n.Range(); r != nil {
		m["Range"] = r.String()
	}
	return m
}

// mustInlineMath and mustBlockMath are used by the transformer, where a
// mismatched payload can only be a programming error.
func mustInlineMath(raw RawMath) *InlineMath {
	n, err := NewInlineMathFromRaw(raw)
	if err != nil {
		panic(err)
	}
	return n
}

func mustBlockMath(raw RawMath) *BlockMath {
	n, err := NewBlockMathFromRaw(raw)
	if err != nil {
		panic(err)
	}
	return n
}
