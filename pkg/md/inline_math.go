// inline_math.go splits text runs into text and inline math nodes.
package md

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// inlineSpan is one piece of a split text run, in byte offsets relative to
// the run. Math spans include both delimiters.
type inlineSpan struct {
	start, stop int
	math        bool
}

// code returns the text between the delimiters of a math span.
func (s inlineSpan) code(run string) string {
	return run[s.start+1 : s.stop-1]
}

// splitInlineMath scans run left to right and returns alternating text and
// math spans, or nil when run holds no matched $...$ pair.
func splitInlineMath(run *textRun) []inlineSpan {
	var spans []inlineSpan
	pending := 0
	for i := 0; i < run.Len(); {
		if !run.canOpen(i) {
			i++
			continue
		}
		closer := -1
		for j := i + 1; j < run.Len(); j++ {
			if run.canClose(j) {
				closer = j
				break
			}
		}
		if closer < 0 {
			// No closer after i means none after any later opener either.
			break
		}
		if pending < i {
			spans = append(spans, inlineSpan{start: run.Offset(pending), stop: run.Offset(i)})
		}
		spans = append(spans, inlineSpan{start: run.Offset(i), stop: run.Offset(closer + 1), math: true})
		i = closer + 1
		pending = i
	}
	if len(spans) == 0 {
		return nil
	}
	if pending < run.Len() {
		spans = append(spans, inlineSpan{start: run.Offset(pending), stop: run.Offset(run.Len())})
	}
	return spans
}

// splitTextRun rewrites leaves, adjacent text nodes with contiguous
// segments, into text and InlineMath nodes. It returns nil when nothing
// matched so the caller can keep the original nodes.
func splitTextRun(leaves []*ast.Text, source []byte, loc *locator) []ast.Node {
	first, last := leaves[0], leaves[len(leaves)-1]
	base := first.Segment.Start
	content := string(source[base:last.Segment.Stop])

	spans := splitInlineMath(newTextRun(content))
	if spans == nil {
		return nil
	}

	// Sub-ranges are only sliced from single-line text.
	withRange := loc.span(base, last.Segment.Stop).SingleLine()

	nodes := make([]ast.Node, 0, len(spans)+1)
	for _, s := range spans {
		start, stop := base+s.start, base+s.stop
		if !s.math {
			nodes = append(nodes, ast.NewTextSegment(text.NewSegment(start, stop)))
			continue
		}
		raw := RawMath{Kind: KindInlineMath, Code: s.code(content)}
		if withRange {
			raw.Range = loc.span(start, stop)
		}
		nodes = append(nodes, mustInlineMath(raw))
	}

	// goldmark keeps line breaks as flags on the text that ends the line.
	soft, hard := last.SoftLineBreak(), last.HardLineBreak()
	tail, ok := nodes[len(nodes)-1].(*ast.Text)
	if !ok && (soft || hard) {
		tail = ast.NewTextSegment(text.NewSegment(last.Segment.Stop, last.Segment.Stop))
		nodes = append(nodes, tail)
		ok = true
	}
	if ok {
		tail.SetSoftLineBreak(soft)
		tail.SetHardLineBreak(hard)
	}
	return nodes
}
