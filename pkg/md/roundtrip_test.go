package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundtrip converts markdown to HTML and back again.
func roundtrip(t *testing.T, markdown string) string {
	t.Helper()
	html, err := ToHTML([]byte(markdown), ParseMath)
	require.NoError(t, err)
	back, err := FromHTML(html)
	require.NoError(t, err)
	return back
}

func TestRoundtrip_MathNodes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"inline", "Let $x^2$ be positive."},
		{"several inline", "A $x$ and $y$."},
		{"block", "$$\nx + y\n$$"},
		{"single-line block", "$$E = mc^2$$"},
		{"mixed", "Before $a$.\n\n$$\n\\frac{1}{2}\n$$\n\nAfter $b$."},
		{"list item", "- item $a_1$\n- plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := mathCodes(Parse([]byte(tt.input), ParseMath))
			got := mathCodes(Parse([]byte(roundtrip(t, tt.input)), ParseMath))
			assert.Equal(t, want, got)
		})
	}
}

func TestRoundtrip_LiteralDollarStaysText(t *testing.T) {
	back := roundtrip(t, `costs \$5 and $x$`)

	doc := Parse([]byte(back), ParseMath)
	assert.Equal(t, []string{"InlineMath:x"}, mathCodes(doc))
	assert.Contains(t, back, `\$5`)
}

func TestRoundtrip_CurrencyNotPromoted(t *testing.T) {
	back := roundtrip(t, "It costs $5 and $10.")
	assert.Empty(t, Parse([]byte(back), ParseMath).MathNodes())
}

func TestRoundtrip_Stable(t *testing.T) {
	input := "# Title\n\nLet $x$ be.\n\n$$\na\nb\n$$"

	once := roundtrip(t, input)
	twice := roundtrip(t, once)
	assert.Equal(t, once, twice)
}
