// block_math.go collapses paragraphs consisting of one $$...$$ span.
package md

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark/ast"
)

// detectBlockMath reports whether content, the flattened text of a
// paragraph, is a single block math span, and returns its code.
//
// Two shapes are accepted: $$ alone on the first and last line, with the
// lines in between as code, or $$code$$ as the only line.
func detectBlockMath(content string) (string, bool) {
	lines := splitLines(content)
	switch {
	case len(lines) == 0:
		return "", false
	case len(lines) >= 2:
		if trimASCIISpace(lines[0]) != "$$" || trimASCIISpace(lines[len(lines)-1]) != "$$" {
			return "", false
		}
		return strings.Join(lines[1:len(lines)-1], "\n"), true
	}

	line := trimASCIISpace(lines[0])
	run := newTextRun(line)
	n := run.Len()
	if n < 4 || !run.is(0, "$") || !run.is(1, "$") || !run.is(n-2, "$") || !run.is(n-1, "$") {
		return "", false
	}
	return line[run.Offset(2):run.Offset(n-2)], true
}

// paragraphText flattens the children of a paragraph, writing one newline
// per line break. ok is false unless every child is a text leaf.
func paragraphText(n ast.Node, source []byte) (content string, leaves []*ast.Text, ok bool) {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, isText := c.(*ast.Text)
		if !isText {
			return "", nil, false
		}
		b.Write(t.Segment.Value(source))
		if t.SoftLineBreak() || t.HardLineBreak() {
			b.WriteByte('\n')
		}
		leaves = append(leaves, t)
	}
	return b.String(), leaves, len(leaves) > 0
}

// blockMathFor returns the BlockMath replacing paragraph n, or nil when n is
// not block math.
func blockMathFor(n ast.Node, source []byte, loc *locator) *BlockMath {
	content, leaves, ok := paragraphText(n, source)
	if !ok {
		return nil
	}
	code, ok := detectBlockMath(content)
	if !ok {
		return nil
	}
	first, last := leaves[0], leaves[len(leaves)-1]
	return mustBlockMath(RawMath{
		Kind:  KindBlockMath,
		Code:  code,
		Range: loc.span(first.Segment.Start, last.Segment.Stop),
	})
}

// splitLines splits s at Unicode line boundaries, keeping empty lines.
// "\r\n" counts as one boundary.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isNewline(r) {
			i += size
			continue
		}
		lines = append(lines, s[start:i])
		i += size
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		start = i
	}
	return append(lines, s[start:])
}

func isNewline(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

func trimASCIISpace(s string) string {
	return strings.Trim(s, " \t\n\r\v\f")
}
