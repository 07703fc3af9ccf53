// position.go maps goldmark byte offsets to line/column source locations.
package md

import (
	"fmt"
	"sort"
)

// SourceLocation is a 1-based line and column in a source document.
// Column counts UTF-8 bytes from the start of the line.
type SourceLocation struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Source string `json:"source,omitempty"` // file path, empty for anonymous input
}

// SourceRange spans Lower up to (not including) Upper.
type SourceRange struct {
	Lower SourceLocation `json:"lower"`
	Upper SourceLocation `json:"upper"`
}

// SingleLine reports whether both bounds lie on the same line.
func (r SourceRange) SingleLine() bool {
	return r.Lower.Line == r.Upper.Line
}

// String formats the range as "line:col-line:col", prefixed with the source
// name when one is known.
func (r SourceRange) String() string {
	s := r.Coordinates()
	if r.Lower.Source != "" {
		return r.Lower.Source + ":" + s
	}
	return s
}

// Coordinates formats the range as "line:col-line:col".
func (r SourceRange) Coordinates() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.Lower.Line, r.Lower.Column, r.Upper.Line, r.Upper.Column)
}

// locator converts byte offsets in a source buffer to SourceLocations.
type locator struct {
	name       string
	lineStarts []int
}

func newLocator(source []byte, name string) *locator {
	l := &locator{name: name, lineStarts: []int{0}}
	for i, c := range source {
		if c == '\n' {
			l.lineStarts = append(l.lineStarts, i+1)
		}
	}
	return l
}

// location returns the location of the byte at offset.
func (l *locator) location(offset int) SourceLocation {
	// index of the last line starting at or before offset
	line := sort.Search(len(l.lineStarts), func(i int) bool {
		return l.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	return SourceLocation{
		Line:   line + 1,
		Column: offset - l.lineStarts[line] + 1,
		Source: l.name,
	}
}

// span returns the range covering source bytes [start, stop).
func (l *locator) span(start, stop int) *SourceRange {
	return &SourceRange{
		Lower: l.location(start),
		Upper: l.location(stop),
	}
}
