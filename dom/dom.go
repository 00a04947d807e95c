// Package dom models a fetched page as an immutable, read-only tree.
//
// Extraction code only sees the Node interface, so it runs equally against
// parsed HTML (see Parse and Wrap) and hand-built trees (see El, Txt and Doc).
package dom

// Kind is the structural kind of a node.
type Kind uint8

const (
	DocumentNode Kind = iota
	ElementNode
	TextNode
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case DocumentNode:
		return "document"
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	default:
		return "unknown"
	}
}

// Node is a read-only view of one node of a document tree.
type Node interface {
	// Kind reports whether the node is the document, an element or a text run.
	Kind() Kind

	// Tag is the lowercase tag name of an element, empty for other kinds.
	Tag() string

	// Attr returns the attribute value and whether it is present.
	Attr(name string) (string, bool)

	// Children returns the direct children in document order.
	Children() []Node

	// Text returns the raw text of a text node, empty for other kinds.
	Text() string
}

// AttrOr returns the attribute value, or the fallback if it is absent or empty.
func AttrOr(n Node, name, fallback string) string {
	if v, ok := n.Attr(name); ok && v != "" {
		return v
	}
	return fallback
}
