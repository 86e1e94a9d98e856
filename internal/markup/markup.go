// Package markup inspects rendered logo markup.
//
// Inspect parses a fragment with golang.org/x/net/html and reports every
// outermost <svg> element it contains, which is how export verification and
// the tests count rendered variants without string matching.
package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is one rendered <svg> root. Attribute keys are lower-cased.
type Element struct {
	Attrs   map[string]string
	Classes []string
	Paths   int
	// Wrapped is true when the element sits inside a <div> container.
	Wrapped bool
}

// Has reports whether the attribute is present.
func (e Element) Has(key string) bool {
	_, ok := e.Attrs[strings.ToLower(key)]
	return ok
}

// HasClass reports whether class is one of the element's class tokens.
func (e Element) HasClass(class string) bool {
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Inspect returns the outermost <svg> elements of fragment in document order.
func Inspect(fragment string) ([]Element, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}

	var elements []Element
	var traverse func(n *html.Node, wrapped bool)
	traverse = func(n *html.Node, wrapped bool) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Svg {
			elements = append(elements, newElement(n, wrapped))
			return
		}
		inDiv := wrapped || (n.Type == html.ElementNode && n.DataAtom == atom.Div)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c, inDiv)
		}
	}
	traverse(doc, false)

	return elements, nil
}

func newElement(n *html.Node, wrapped bool) Element {
	e := Element{
		Attrs:   make(map[string]string, len(n.Attr)),
		Wrapped: wrapped,
	}
	for _, a := range n.Attr {
		e.Attrs[strings.ToLower(a.Key)] = a.Val
	}
	e.Classes = strings.Fields(e.Attrs["class"])

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "path" {
			e.Paths++
		}
	}
	return e
}

// Attr returns the value of key, matched case-insensitively.
func (e Element) Attr(key string) string {
	return e.Attrs[strings.ToLower(key)]
}
