package util

// Stack is a LIFO of navigation states.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes the top element. ok is false when the stack is empty.
func (s *Stack[T]) Pop() (item T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return item, false
	}

	item = s.items[n-1]
	s.items = s.items[:n-1]
	return item, true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Clear drops every element.
func (s *Stack[T]) Clear() {
	s.items = s.items[:0]
}
