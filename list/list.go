// Package list implements the circular doubly linked list with a sentinel root.
package list

import (
	"errors"
	"fmt"
)

// Sentinel errors for the sequence structures.
var (
	// ErrEmptyList is returned on access or removal from an empty list.
	ErrEmptyList = errors.New("list: empty list")

	// ErrEmptyStack is returned by Stack.Pop and Stack.Peek when empty.
	ErrEmptyStack = errors.New("list: empty stack")

	// ErrEmptyQueue is returned by Queue.Dequeue and Queue.Peek when empty.
	ErrEmptyQueue = errors.New("list: empty queue")
)

// Element is a node handle within a List. Holding one allows O(1) Remove.
type Element[T any] struct {
	Value T

	next, prev *Element[T]
	list       *List[T]
}

// Next returns the following element, or nil at the back.
func (e *Element[T]) Next() *Element[T] {
	if n := e.next; e.list != nil && n != &e.list.root {
		return n
	}

	return nil
}

// Prev returns the preceding element, or nil at the front.
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}

	return nil
}

// List is a circular doubly linked list. The zero value is ready to use.
type List[T any] struct {
	root Element[T] // sentinel: root.next is front, root.prev is back
	size int
}

// New returns an empty list. Equivalent to new(List[T]).
func New[T any]() *List[T] { return new(List[T]) }

// lazyInit wires the sentinel ring on first use of a zero-value List.
func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
		l.root.list = l
	}
}

// Len reports the number of elements. O(1).
func (l *List[T]) Len() int { return l.size }

// PushFront inserts v at the front and returns its handle.
func (l *List[T]) PushFront(v T) *Element[T] {
	l.lazyInit()
	return l.insertAfter(v, &l.root)
}

// PushBack inserts v at the back and returns its handle.
func (l *List[T]) PushBack(v T) *Element[T] {
	l.lazyInit()
	return l.insertAfter(v, l.root.prev)
}

// insertAfter links a new element carrying v directly after at.
func (l *List[T]) insertAfter(v T, at *Element[T]) *Element[T] {
	e := &Element[T]{Value: v, list: l}
	e.prev = at
	e.next = at.next
	at.next.prev = e
	at.next = e
	l.size++

	return e
}

// Front returns the first element's value.
// Returns ErrEmptyList if the list is empty.
func (l *List[T]) Front() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyList
	}

	return l.root.next.Value, nil
}

// Back returns the last element's value.
// Returns ErrEmptyList if the list is empty.
func (l *List[T]) Back() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyList
	}

	return l.root.prev.Value, nil
}

// PopFront removes and returns the first element's value.
// Returns ErrEmptyList if the list is empty.
func (l *List[T]) PopFront() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	e := l.root.next
	l.unlink(e)

	return e.Value, nil
}

// PopBack removes and returns the last element's value.
// Returns ErrEmptyList if the list is empty.
func (l *List[T]) PopBack() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	e := l.root.prev
	l.unlink(e)

	return e.Value, nil
}

// Remove unlinks e from the list in O(1) and returns its value.
// Returns ErrEmptyList if e does not belong to this list.
func (l *List[T]) Remove(e *Element[T]) (T, error) {
	if e == nil || e.list != l {
		var zero T
		return zero, ErrEmptyList
	}
	l.unlink(e)

	return e.Value, nil
}

// unlink detaches e and clears its pointers so stale handles cannot walk.
func (l *List[T]) unlink(e *Element[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next, e.prev, e.list = nil, nil, nil
	l.size--
}

// Each visits values front to back. If visit returns an error, the walk
// stops and the error is returned wrapped.
func (l *List[T]) Each(visit func(v T) error) error {
	l.lazyInit()
	for e := l.root.next; e != &l.root; e = e.next {
		if err := visit(e.Value); err != nil {
			return fmt.Errorf("list: visit error: %w", err)
		}
	}

	return nil
}

// Values returns the list contents front to back as a fresh slice.
func (l *List[T]) Values() []T {
	l.lazyInit()
	out := make([]T, 0, l.size)
	for e := l.root.next; e != &l.root; e = e.next {
		out = append(out, e.Value)
	}

	return out
}

// Reverse flips the list in place by swapping every element's links. O(n).
func (l *List[T]) Reverse() {
	l.lazyInit()
	e := &l.root
	for first := true; first || e != &l.root; first = false {
		e.next, e.prev = e.prev, e.next
		e = e.prev // pre-swap next
	}
}
