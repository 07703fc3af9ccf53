package md

import "github.com/yuin/goldmark/parser"

// ParseOptions is a set of flags controlling how a document is parsed.
type ParseOptions uint8

const (
	// ParseMath enables detection of $...$ and $$...$$ math.
	ParseMath ParseOptions = 1 << iota
	// SourcePositions adds data-sourcepos attributes to rendered math.
	SourcePositions
)

// Has reports whether every flag in flag is set.
func (o ParseOptions) Has(flag ParseOptions) bool {
	return o&flag == flag
}

var (
	optionsKey    = parser.NewContextKey()
	sourceNameKey = parser.NewContextKey()
)

// NewContext returns a goldmark parser context carrying opts and the source
// name, for callers that drive goldmark directly:
//
//	gm.Convert(src, w, parser.WithContext(md.NewContext(md.ParseMath, "doc.md")))
func NewContext(opts ParseOptions, name string) parser.Context {
	pc := parser.NewContext()
	pc.Set(optionsKey, opts)
	pc.Set(sourceNameKey, name)
	return pc
}

// optionsFrom returns the options stored in pc. A context without options
// enables nothing.
func optionsFrom(pc parser.Context) (ParseOptions, string) {
	if pc == nil {
		return 0, ""
	}
	opts, _ := pc.Get(optionsKey).(ParseOptions)
	name, _ := pc.Get(sourceNameKey).(string)
	return opts, name
}
