// Package avl declares the Tree type, its height-carrying node,
// and sentinel errors shared by all operations.
package avl

import "errors"

// Sentinel errors for AVL tree operations.
var (
	// ErrNilCompare is returned by New when the comparison function is nil.
	ErrNilCompare = errors.New("avl: compare function is nil")

	// ErrEmptyTree is returned by Min and Max on an empty tree.
	ErrEmptyTree = errors.New("avl: empty tree")

	// ErrKeyNotFound is returned when the requested key is absent.
	ErrKeyNotFound = errors.New("avl: key not found")
)

// node carries a cached subtree height: 0 for a leaf.
type node[K, V any] struct {
	key    K
	val    V
	left   *node[K, V]
	right  *node[K, V]
	height int
}

// Tree is an AVL tree ordered by cmp.
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

// Height reports the height of the tree: -1 for an empty tree,
// 0 for a single node. O(1) thanks to cached node heights.
func (t *Tree[K, V]) Height() int { return heightOf(t.root) }

// heightOf treats nil as height -1 so leaf nodes compute to 0.
func heightOf[K, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}

	return n.height
}
