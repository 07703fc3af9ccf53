package md

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== Parse Tests ====================

func TestParse_EmptyInput(t *testing.T) {
	doc := Parse(nil, ParseMath)
	require.NotNil(t, doc.Root)
	assert.Nil(t, doc.Root.FirstChild())
	assert.Empty(t, doc.MathNodes())
}

func TestParse_PlainText(t *testing.T) {
	doc := Parse([]byte("Hello world"), ParseMath)
	assert.Empty(t, doc.MathNodes())
	assert.Equal(t, "Hello world", string(doc.Source))
	assert.Empty(t, doc.Name)
}

func TestParseNamed_RecordsName(t *testing.T) {
	doc := ParseNamed([]byte("$x$"), "notes.md", ParseMath)
	assert.Equal(t, "notes.md", doc.Name)

	nodes := doc.MathNodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, "notes.md", nodes[0].Range().Lower.Source)
	assert.Equal(t, "notes.md", nodes[0].Range().Upper.Source)
}

func TestMathNodes_DocumentOrder(t *testing.T) {
	input := "# $a$\n\n$$\nb\n$$\n\n- $c$\n- text $d$ and $e$\n\n> $$f$$\n"
	doc := Parse([]byte(input), ParseMath)

	assert.Equal(t, []string{
		"InlineMath:a",
		"BlockMath:b",
		"InlineMath:c",
		"InlineMath:d",
		"InlineMath:e",
		"BlockMath:f",
	}, mathCodes(doc))
}

// ==================== ParseFile Tests ====================

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("Let $x$ be.\n"), 0600))

	doc, err := ParseFile(path, ParseMath)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Name)

	nodes := doc.MathNodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, path+":1:5-1:8", nodes[0].Range().String())
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.md"), ParseMath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read markdown file")
	assert.True(t, os.IsNotExist(errors.Unwrap(err)))
}

// ==================== Options Tests ====================

func TestParseOptions_Has(t *testing.T) {
	opts := ParseMath | SourcePositions
	assert.True(t, opts.Has(ParseMath))
	assert.True(t, opts.Has(SourcePositions))
	assert.True(t, opts.Has(ParseMath|SourcePositions))
	assert.False(t, ParseMath.Has(SourcePositions))
	assert.False(t, ParseOptions(0).Has(ParseMath))
}

func TestOptionsFrom(t *testing.T) {
	opts, name := optionsFrom(NewContext(ParseMath, "a.md"))
	assert.Equal(t, ParseMath, opts)
	assert.Equal(t, "a.md", name)

	opts, name = optionsFrom(nil)
	assert.Equal(t, ParseOptions(0), opts)
	assert.Empty(t, name)
}
