package md

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML converts HTML to markdown. Code elements of class language-math
// become $...$ (inline) or $$...$$ (inside pre) math, and literal dollars in
// ordinary text are escaped so they are not read back as math.
func FromHTML(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	ph := newPlaceholders(buf.String())
	maths := ph.extractMath(doc)

	buf.Reset()
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(buf.String())
	if err != nil {
		return "", err
	}

	// Clean up the output - trim whitespace
	return strings.TrimSpace(ph.restore(markdown, maths)), nil
}

// placeholders stand in for math and literal dollars while html-to-markdown
// runs. They are private-use runes absent from the document, so they never
// collide with its text and are not markdown syntax.
type placeholders struct {
	dollar string
	open   string // precedes the math index
	close  string // follows the math index
}

// privateUse lists the private-use ranges placeholder runes are taken from.
var privateUse = [][2]rune{{0xF0000, 0xFFFFD}, {0x100000, 0x10FFFD}, {0xE000, 0xF8FF}}

func newPlaceholders(doc string) placeholders {
	var picked []string
	for _, rng := range privateUse {
		for r := rng[0]; r <= rng[1] && len(picked) < 3; r++ {
			if !strings.ContainsRune(doc, r) {
				picked = append(picked, string(r))
			}
		}
	}
	return placeholders{dollar: picked[0], open: picked[1], close: picked[2]}
}

func (p placeholders) math(id int) string {
	return p.open + strconv.Itoa(id) + p.close
}

// extractMath replaces math elements below n with placeholders and returns
// the math nodes in placeholder order.
func (p placeholders) extractMath(n *html.Node) []Math {
	var maths []Math
	inline := map[*html.Node]bool{}
	var walk func(parent *html.Node, inCode bool)
	walk = func(parent *html.Node, inCode bool) {
		for c := parent.FirstChild; c != nil; {
			next := c.NextSibling
			switch {
			case c.DataAtom == atom.Pre && isMathCode(firstElementChild(c)):
				para := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
				para.AppendChild(&html.Node{Type: html.TextNode, Data: p.math(len(maths))})
				maths = append(maths, NewBlockMath(strings.TrimSuffix(textContent(c), "\n")))
				parent.InsertBefore(para, c)
				parent.RemoveChild(c)
			case isMathCode(c):
				text := &html.Node{Type: html.TextNode, Data: p.math(len(maths))}
				// $x$$y$ would read back as one span
				if inline[c.PrevSibling] {
					text.Data = " " + text.Data
				}
				parent.InsertBefore(text, c)
				inline[text] = true
				maths = append(maths, NewInlineMath(textContent(c)))
				parent.RemoveChild(c)
			case c.Type == html.TextNode && !inCode:
				c.Data = strings.ReplaceAll(c.Data, "$", p.dollar)
			case c.Type == html.ElementNode:
				walk(c, inCode || c.DataAtom == atom.Code || c.DataAtom == atom.Pre)
			}
			c = next
		}
	}
	walk(n, false)
	return maths
}

// restore escapes dollars and replaces math placeholders with math markup.
func (p placeholders) restore(markdown string, maths []Math) string {
	markdown = strings.ReplaceAll(markdown, p.dollar, `\$`)
	for id, m := range maths {
		markdown = replaceIndented(markdown, p.math(id), FormatMath(m))
	}
	return markdown
}

// replaceIndented replaces the first placeholder in markdown with
// replacement. When the placeholder is only preceded by indentation on its
// line, as inside list items, every further line of replacement gets the
// same indentation.
func replaceIndented(markdown, placeholder, replacement string) string {
	i := strings.Index(markdown, placeholder)
	if i < 0 {
		return markdown
	}
	indent := markdown[strings.LastIndexByte(markdown[:i], '\n')+1 : i]
	if indent != "" && strings.TrimLeft(indent, " \t") == "" {
		replacement = strings.ReplaceAll(replacement, "\n", "\n"+indent)
	}
	return markdown[:i] + replacement + markdown[i+len(placeholder):]
}

func isMathCode(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode || n.DataAtom != atom.Code {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(attr.Val) {
			if class == "language-math" {
				return true
			}
		}
	}
	return false
}

func firstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}
