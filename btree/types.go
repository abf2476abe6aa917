// Package btree declares the Tree type, its wide node, and sentinel errors.
package btree

import "errors"

// Sentinel errors for B-tree operations.
var (
	// ErrBadDegree is returned by New when the minimum degree is below 2.
	ErrBadDegree = errors.New("btree: minimum degree must be at least 2")

	// ErrNilCompare is returned by New when the comparison function is nil.
	ErrNilCompare = errors.New("btree: compare function is nil")

	// ErrEmptyTree is returned by Min and Max on an empty tree.
	ErrEmptyTree = errors.New("btree: empty tree")

	// ErrKeyNotFound is returned when the requested key is absent.
	ErrKeyNotFound = errors.New("btree: key not found")
)

// node holds up to 2t-1 sorted keys with parallel values; an internal node
// holds len(keys)+1 children.
type node[K, V any] struct {
	keys     []K
	vals     []V
	children []*node[K, V]
	leaf     bool
}

// Tree is a B-tree of minimum degree t ordered by cmp.
// The zero value is not usable: construct with New.
type Tree[K, V any] struct {
	t    int
	root *node[K, V]
	cmp  func(a, b K) int
	size int
}

// New creates an empty B-tree with minimum degree t, ordered by cmp.
// Returns ErrBadDegree if t < 2, ErrNilCompare if cmp is nil.
func New[K, V any](t int, cmp func(a, b K) int) (*Tree[K, V], error) {
	if t < 2 {
		return nil, ErrBadDegree
	}
	if cmp == nil {
		return nil, ErrNilCompare
	}

	return &Tree[K, V]{
		t:    t,
		root: &node[K, V]{leaf: true},
		cmp:  cmp,
	}, nil
}

// Len reports the number of keys currently stored.
func (t *Tree[K, V]) Len() int { return t.size }

// Height reports the height of the tree: 0 for an empty or single-node tree.
// All leaves sit at the same depth, so the leftmost spine suffices.
func (t *Tree[K, V]) Height() int {
	h := 0
	for n := t.root; !n.leaf; n = n.children[0] {
		h++
	}

	return h
}

// full reports whether n holds the maximum 2t-1 keys.
func (t *Tree[K, V]) full(n *node[K, V]) bool {
	return len(n.keys) == 2*t.t-1
}

// findKey returns the first index i with keys[i] >= key,
// and whether keys[i] == key.
func (t *Tree[K, V]) findKey(n *node[K, V], key K) (int, bool) {
	i := 0
	for i < len(n.keys) && t.cmp(key, n.keys[i]) > 0 {
		i++
	}

	return i, i < len(n.keys) && t.cmp(key, n.keys[i]) == 0
}
