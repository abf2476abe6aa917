package list

// Stack is the array-backed LIFO. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack. Equivalent to new(Stack[T]).
func NewStack[T any]() *Stack[T] { return new(Stack[T]) }

// Len reports the number of stacked items.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Push places v on top.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top item.
// Returns ErrEmptyStack if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	n := len(s.items)
	if n == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	v := s.items[n-1]
	var zero T
	s.items[n-1] = zero // release the reference
	s.items = s.items[:n-1]

	return v, nil
}

// Peek returns the top item without removing it.
// Returns ErrEmptyStack if the stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.items[len(s.items)-1], nil
}
