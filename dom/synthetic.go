package dom

import "strings"

// Attrs is a set of element attributes.
type Attrs map[string]string

type synthetic struct {
	kind     Kind
	tag      string
	attrs    Attrs
	text     string
	children []Node
}

func (s *synthetic) Kind() Kind { return s.kind }
func (s *synthetic) Tag() string { return s.tag }
func (s *synthetic) Text() string { return s.text }
func (s *synthetic) Children() []Node { return s.children }

func (s *synthetic) Attr(name string) (string, bool) {
	v, ok := s.attrs[strings.ToLower(name)]
	return v, ok
}

// El builds an element node.
func El(tag string, attrs Attrs, children ...Node) Node {
	normalized := make(Attrs, len(attrs))
	for k, v := range attrs {
		normalized[strings.ToLower(k)] = v
	}

	return &synthetic{
		kind:     ElementNode,
		tag:      strings.ToLower(tag),
		attrs:    normalized,
		children: children,
	}
}

// Txt builds a text node.
func Txt(text string) Node {
	return &synthetic{kind: TextNode, text: text}
}

// Doc builds a document node.
func Doc(children ...Node) Node {
	return &synthetic{kind: DocumentNode, children: children}
}
