// delimiter.go decides which dollar signs may open or close inline math.
package md

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// textRun is a string indexed by extended grapheme cluster.
type textRun struct {
	text    string
	offsets []int // byte offset of each cluster, followed by len(text)
}

func newTextRun(s string) *textRun {
	r := &textRun{text: s, offsets: make([]int, 0, len(s)+1)}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		start, _ := g.Positions()
		r.offsets = append(r.offsets, start)
	}
	r.offsets = append(r.offsets, len(s))
	return r
}

// Len returns the number of clusters.
func (r *textRun) Len() int { return len(r.offsets) - 1 }

// At returns cluster i.
func (r *textRun) At(i int) string { return r.text[r.offsets[i]:r.offsets[i+1]] }

// Offset returns the byte offset of cluster i; Offset(Len()) is len(text).
func (r *textRun) Offset(i int) int { return r.offsets[i] }

// is reports whether cluster i exists and equals s.
func (r *textRun) is(i int, s string) bool {
	return i >= 0 && i < r.Len() && r.At(i) == s
}

func (r *textRun) isSpace(i int) bool {
	c, _ := utf8.DecodeRuneInString(r.At(i))
	return unicode.IsSpace(c)
}

// isEscaped reports whether cluster pos is preceded by an odd number of
// backslashes.
func (r *textRun) isEscaped(pos int) bool {
	n := 0
	for i := pos - 1; r.is(i, `\`); i-- {
		n++
	}
	return n%2 == 1
}

// isSingleDollarDelimiter reports whether the dollar at pos has no dollar
// neighbour. Runs of two or more dollars never delimit inline math.
func (r *textRun) isSingleDollarDelimiter(pos int) bool {
	return !r.is(pos-1, "$") && !r.is(pos+1, "$")
}

func (r *textRun) canOpen(pos int) bool {
	return r.is(pos, "$") &&
		!r.isEscaped(pos) &&
		r.isSingleDollarDelimiter(pos) &&
		pos+1 < r.Len() &&
		!r.isSpace(pos+1)
}

func (r *textRun) canClose(pos int) bool {
	return r.is(pos, "$") &&
		!r.isEscaped(pos) &&
		r.isSingleDollarDelimiter(pos) &&
		pos > 0 &&
		!r.isSpace(pos-1)
}
