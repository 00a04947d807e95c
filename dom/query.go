package dom

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Matcher selects nodes.
type Matcher func(Node) bool

// Tag matches elements with the given tag name.
func Tag(name string) Matcher {
	name = strings.ToLower(name)
	return func(n Node) bool {
		return n.Kind() == ElementNode && n.Tag() == name
	}
}

// Class matches elements whose class list contains the given class.
func Class(class string) Matcher {
	return func(n Node) bool {
		if n.Kind() != ElementNode {
			return false
		}
		v, ok := n.Attr("class")
		return ok && lo.Contains(strings.Fields(v), class)
	}
}

// IDMatches matches elements whose id matches the expression.
func IDMatches(re *regexp.Regexp) Matcher {
	return func(n Node) bool {
		if n.Kind() != ElementNode {
			return false
		}
		v, ok := n.Attr("id")
		return ok && re.MatchString(v)
	}
}

// HasAttr matches elements carrying the attribute with a non-empty value.
func HasAttr(name string) Matcher {
	return func(n Node) bool {
		if n.Kind() != ElementNode {
			return false
		}
		v, ok := n.Attr(name)
		return ok && v != ""
	}
}

// And matches when every matcher does.
func And(ms ...Matcher) Matcher {
	return func(n Node) bool {
		for _, m := range ms {
			if !m(n) {
				return false
			}
		}
		return true
	}
}

// Or matches when any matcher does.
func Or(ms ...Matcher) Matcher {
	return func(n Node) bool {
		for _, m := range ms {
			if m(n) {
				return true
			}
		}
		return false
	}
}

// FindAll returns the descendants of root selected by m, in document order.
// The root itself is never part of the result.
func FindAll(root Node, m Matcher) []Node {
	var found []Node
	var walk func(Node)
	walk = func(n Node) {
		for _, c := range n.Children() {
			if m(c) {
				found = append(found, c)
			}
			walk(c)
		}
	}
	walk(root)
	return found
}

// FindFirst returns the first descendant of root selected by m.
func FindFirst(root Node, m Matcher) (Node, bool) {
	var walk func(Node) Node
	walk = func(n Node) Node {
		for _, c := range n.Children() {
			if m(c) {
				return c
			}
			if hit := walk(c); hit != nil {
				return hit
			}
		}
		return nil
	}

	if hit := walk(root); hit != nil {
		return hit, true
	}
	return nil, false
}

// TextOf returns the text content of n with whitespace runs collapsed and trimmed.
func TextOf(n Node) string {
	var b strings.Builder
	var walk func(Node)
	walk = func(n Node) {
		if n.Kind() == TextNode {
			b.WriteString(n.Text())
			b.WriteByte(' ')
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
