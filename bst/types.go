// Package bst declares the Tree type, its node representation,
// and sentinel errors shared by all operations.
package bst

import "errors"

// Sentinel errors for BST operations.
var (
	// ErrNilCompare is returned by New when the comparison function is nil.
	ErrNilCompare = errors.New("bst: compare function is nil")

	// ErrEmptyTree is returned by Min and Max on an empty tree.
	ErrEmptyTree = errors.New("bst: empty tree")

	// ErrKeyNotFound is returned when the requested key is absent.
	ErrKeyNotFound = errors.New("bst: key not found")

	// ErrNoSuccessor is returned by Successor on the maximum key.
	ErrNoSuccessor = errors.New("bst: no successor")

	// ErrNoPredecessor is returned by Predecessor on the minimum key.
	ErrNoPredecessor = errors.New("bst: no predecessor")
)

// node is a single tree node. left holds keys comparing less than key,
// right holds keys comparing greater.
type node[K, V any] struct {
	key   K
	val   V
	left  *node[K, V]
	right *node[K, V]
}

// Tree is a binary search tree ordered by cmp.
// The zero value is not usable: construct with New.
type Tree[K, V any] struct {
	root *node[K, V]
	cmp  func(a, b K) int
	size int
}

// New creates an empty tree ordered by cmp, where cmp returns a negative
// value if a<b, zero if a==b, and a positive value if a>b.
// Returns ErrNilCompare if cmp is nil.
func New[K, V any](cmp func(a, b K) int) (*Tree[K, V], error) {
	if cmp == nil {
		return nil, ErrNilCompare
	}

	return &Tree[K, V]{cmp: cmp}, nil
}

// Len reports the number of keys currently stored.
func (t *Tree[K, V]) Len() int { return t.size }
