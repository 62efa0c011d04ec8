package input

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExampleBlocks extracts the example texts from a puzzle description. Examples
// are the contents of <pre><code> elements, in document order. Markup within
// a code block (e.g. <em> for highlighting) is dropped, its text is kept.
func ExampleBlocks(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	var blocks []string
	var find func(n *html.Node)
	find = func(n *html.Node) {
		if isCodeBlock(n) {
			var b strings.Builder
			collectText(n, &b)
			blocks = append(blocks, b.String())
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	tracer().Debugf("found %d example blocks", len(blocks))
	return blocks, nil
}

// isCodeBlock is true for a <code> element which is a child of a <pre>.
func isCodeBlock(n *html.Node) bool {
	return n.Type == html.ElementNode && n.DataAtom == atom.Code &&
		n.Parent != nil && n.Parent.Type == html.ElementNode && n.Parent.DataAtom == atom.Pre
}

// collectText appends the textual content of an element and all its
// descendents, resembling what 'innerText' produces in JavaScript.
func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
