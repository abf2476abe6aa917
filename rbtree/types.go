// Package rbtree declares the Tree type, its colored node with parent links,
// the shared sentinel leaf, and sentinel errors.
package rbtree

import "errors"

// Sentinel errors for red-black tree operations.
var (
	// ErrNilCompare is returned by New when the comparison function is nil.
	ErrNilCompare = errors.New("rbtree: compare function is nil")

	// ErrEmptyTree is returned by Min and Max on an empty tree.
	ErrEmptyTree = errors.New("rbtree: empty tree")

	// ErrKeyNotFound is returned when the requested key is absent.
	ErrKeyNotFound = errors.New("rbtree: key not found")

	// ErrInvariantViolation is returned by Validate when a red-black
	// property does not hold.
	ErrInvariantViolation = errors.New("rbtree: red-black invariant violation")
)

type color uint8

const (
	red color = iota
	black
)

// node carries parent links so fixups can climb without a stack.
// The tree's shared sentinel plays the role of every nil leaf.
type node[K, V any] struct {
	key    K
	val    V
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
	color  color
}

// Tree is a red-black tree ordered by cmp.
// The zero value is not usable: construct with New.
type Tree[K, V any] struct {
	root     *node[K, V]
	sentinel *node[K, V] // the single black leaf shared by all paths
	cmp      func(a, b K) int
	size     int
}

// New creates an empty tree ordered by cmp, where cmp returns a negative
// value if a<b, zero if a==b, and a positive value if a>b.
// Returns ErrNilCompare if cmp is nil.
func New[K, V any](cmp func(a, b K) int) (*Tree[K, V], error) {
	if cmp == nil {
		return nil, ErrNilCompare
	}
	s := &node[K, V]{color: black}
	s.left, s.right, s.parent = s, s, s

	return &Tree[K, V]{root: s, sentinel: s, cmp: cmp}, nil
}

// Len reports the number of keys currently stored.
func (t *Tree[K, V]) Len() int { return t.size }
