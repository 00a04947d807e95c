package dom

import (
	"io"

	"golang.org/x/net/html"
)

type htmlNode struct {
	n        *html.Node
	children []Node
}

// Wrap adapts a parsed x/net/html tree. Comments and doctypes are dropped.
func Wrap(n *html.Node) Node {
	w := &htmlNode{n: n}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode, html.TextNode, html.DocumentNode:
			w.children = append(w.children, Wrap(c))
		}
	}
	return w
}

// Parse reads an HTML document.
func Parse(r io.Reader) (Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return Wrap(root), nil
}

func (h *htmlNode) Kind() Kind {
	switch h.n.Type {
	case html.ElementNode:
		return ElementNode
	case html.TextNode:
		return TextNode
	default:
		return DocumentNode
	}
}

func (h *htmlNode) Tag() string {
	if h.n.Type != html.ElementNode {
		return ""
	}
	return h.n.Data
}

func (h *htmlNode) Attr(name string) (string, bool) {
	for _, a := range h.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (h *htmlNode) Children() []Node { return h.children }

func (h *htmlNode) Text() string {
	if h.n.Type != html.TextNode {
		return ""
	}
	return h.n.Data
}
