package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "basic paragraph",
			input:    "Hello world",
			expected: "<p>Hello world</p>\n",
		},
		{
			name:     "multiple paragraphs",
			input:    "First paragraph.\n\nSecond paragraph.",
			expected: "<p>First paragraph.</p>\n<p>Second paragraph.</p>\n",
		},
		{
			name:     "h1 header",
			input:    "# Title",
			expected: "<h1 id=\"title\">Title</h1>\n",
		},
		{
			name:     "bold and italic",
			input:    "**bold** and *italic*",
			expected: "<p><strong>bold</strong> and <em>italic</em></p>\n",
		},
		{
			name:     "strikethrough",
			input:    "~~gone~~",
			expected: "<p><del>gone</del></p>\n",
		},
		{
			name:     "unordered list",
			input:    "- Item 1\n- Item 2",
			expected: "<ul>\n<li>Item 1</li>\n<li>Item 2</li>\n</ul>\n",
		},
		{
			name:     "inline code",
			input:    "Use `code` here",
			expected: "<p>Use <code>code</code> here</p>\n",
		},
		{
			name:     "code block with language",
			input:    "```go\nfunc main() {}\n```",
			expected: "<pre><code class=\"language-go\">func main() {}\n</code></pre>\n",
		},
		{
			name:     "simple table",
			input:    "| A | B |\n|---|---|\n| 1 | 2 |",
			expected: "<table>\n<thead>\n<tr>\n<th>A</th>\n<th>B</th>\n</tr>\n</thead>\n<tbody>\n<tr>\n<td>1</td>\n<td>2</td>\n</tr>\n</tbody>\n</table>\n",
		},
		{
			name:     "inline math",
			input:    "Let $x^2$ be",
			expected: "<p>Let <code class=\"language-math\">x^2</code> be</p>\n",
		},
		{
			name:     "inline math is escaped",
			input:    "$a<b$",
			expected: "<p><code class=\"language-math\">a&lt;b</code></p>\n",
		},
		{
			name:     "block math",
			input:    "$$\nx + y\n$$",
			expected: "<pre><code class=\"language-math\">x + y\n</code></pre>\n",
		},
		{
			name:     "single-line block math",
			input:    "$$E = mc^2$$",
			expected: "<pre><code class=\"language-math\">E = mc^2\n</code></pre>\n",
		},
		{
			name:     "escaped dollar",
			input:    `costs \$5`,
			expected: "<p>costs $5</p>\n",
		},
		{
			name:     "math in table cell",
			input:    "| A |\n|---|\n| $x$ |",
			expected: "<table>\n<thead>\n<tr>\n<th>A</th>\n</tr>\n</thead>\n<tbody>\n<tr>\n<td><code class=\"language-math\">x</code></td>\n</tr>\n</tbody>\n</table>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ToHTML([]byte(tt.input), ParseMath)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToHTML_WithoutMath(t *testing.T) {
	result, err := ToHTML([]byte("A $x$ and\n\n$$\ny\n$$"), 0)
	require.NoError(t, err)
	assert.Equal(t, "<p>A $x$ and</p>\n<p>$$\ny\n$$</p>\n", result)
}

func TestToHTML_SourcePositions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "inline",
			input:    "$x$",
			expected: "<p><code class=\"language-math\" data-sourcepos=\"1:1-1:4\">x</code></p>\n",
		},
		{
			name:     "block",
			input:    "$$\nx\n$$",
			expected: "<pre><code class=\"language-math\" data-sourcepos=\"1:1-3:3\">x\n</code></pre>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ToHTML([]byte(tt.input), ParseMath|SourcePositions)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToHTML_ImageAltKeepsDollars(t *testing.T) {
	for _, opts := range []ParseOptions{0, ParseMath} {
		result, err := ToHTML([]byte("see ![alt $x$](img.png)"), opts)
		require.NoError(t, err)
		assert.Equal(t, "<p>see <img src=\"img.png\" alt=\"alt $x$\"></p>\n", result)
	}
}

func TestToHTML_ComplexDocument(t *testing.T) {
	input := `# Notes

The area of a circle is $\pi r^2$, see **below**.

$$
\int_0^1 x \, dx = \frac{1}{2}
$$

- Item with $a_1$
- Plain item

` + "```go" + `
price := "$5"
` + "```" + `
`

	result, err := ToHTML([]byte(input), ParseMath)
	require.NoError(t, err)

	assert.Contains(t, result, `<h1 id="notes">Notes</h1>`)
	assert.Contains(t, result, `<code class="language-math">\pi r^2</code>`)
	assert.Contains(t, result, "<strong>below</strong>")
	assert.Contains(t, result, "<pre><code class=\"language-math\">\\int_0^1 x \\, dx = \\frac{1}{2}\n</code></pre>")
	assert.Contains(t, result, `Item with <code class="language-math">a_1</code>`)
	assert.Contains(t, result, `price := &quot;$5&quot;`)
}
