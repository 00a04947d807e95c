// Package extract turns loosely structured catalog pages into catalog data.
//
// Every component is an ordered chain of named strategies. Strategies are tried
// in priority order and the first one producing a non-empty result wins.
package extract

import (
	"github.com/pencuri-cli/pencuri/dom"
	"github.com/pencuri-cli/pencuri/log"
)

// Strategy is one way of extracting values from a document.
type Strategy[T any] interface {
	Name() string
	Extract(root dom.Node) []T
}

type strategyFunc[T any] struct {
	name string
	fn   func(dom.Node) []T
}

func (s strategyFunc[T]) Name() string { return s.name }
func (s strategyFunc[T]) Extract(root dom.Node) []T { return s.fn(root) }

// NewStrategy names an extraction function.
func NewStrategy[T any](name string, fn func(dom.Node) []T) Strategy[T] {
	return strategyFunc[T]{name: name, fn: fn}
}

// Chain is a priority-ordered list of strategies.
type Chain[T any] []Strategy[T]

// Run returns the result of the first strategy that yields anything,
// along with its name. Both are empty when every strategy fails.
func (c Chain[T]) Run(root dom.Node) ([]T, string) {
	for _, s := range c {
		if found := s.Extract(root); len(found) > 0 {
			log.Debugf("extract: strategy %q yielded %d results", s.Name(), len(found))
			return found, s.Name()
		}
		log.Tracef("extract: strategy %q yielded nothing", s.Name())
	}
	return nil, ""
}

// Names lists the strategies in priority order.
func (c Chain[T]) Names() []string {
	names := make([]string, len(c))
	for i, s := range c {
		names[i] = s.Name()
	}
	return names
}
