// Package bst implements the core search-tree operations:
// insert, search, delete, ordered navigation, and in-order traversal.
package bst

import "fmt"

// Insert stores val under key, overwriting the value if key already exists.
func (t *Tree[K, V]) Insert(key K, val V) {
	var inserted bool
	t.root, inserted = t.insert(t.root, key, val)
	if inserted {
		t.size++
	}
}

// insert descends to the leaf position for key and links a new node there.
// Returns the (possibly new) subtree root and whether a node was created.
func (t *Tree[K, V]) insert(n *node[K, V], key K, val V) (*node[K, V], bool) {
	if n == nil {
		return &node[K, V]{key: key, val: val}, true
	}
	var inserted bool
	switch c := t.cmp(key, n.key); {
	case c < 0:
		n.left, inserted = t.insert(n.left, key, val)
	case c > 0:
		n.right, inserted = t.insert(n.right, key, val)
	default:
		n.val = val
	}

	return n, inserted
}

// Search returns the value stored under key.
// Returns ErrKeyNotFound if key is absent.
func (t *Tree[K, V]) Search(key K) (V, error) {
	n := t.root
	for n != nil {
		switch c := t.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.val, nil
		}
	}
	var zero V

	return zero, ErrKeyNotFound
}

// Delete removes key from the tree.
// A node with two children is replaced by its in-order successor.
// Returns ErrKeyNotFound if key is absent.
func (t *Tree[K, V]) Delete(key K) error {
	var deleted bool
	t.root, deleted = t.delete(t.root, key)
	if !deleted {
		return ErrKeyNotFound
	}
	t.size--

	return nil
}

// delete removes key from the subtree rooted at n.
// Returns the new subtree root and whether a node was removed.
func (t *Tree[K, V]) delete(n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}
	var deleted bool
	switch c := t.cmp(key, n.key); {
	case c < 0:
		n.left, deleted = t.delete(n.left, key)
	case c > 0:
		n.right, deleted = t.delete(n.right, key)
	default:
		// zero or one child: splice the node out
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		// two children: substitute the in-order successor, then delete it
		succ := minNode(n.right)
		n.key, n.val = succ.key, succ.val
		n.right, _ = t.delete(n.right, succ.key)

		return n, true
	}

	return n, deleted
}

// Min returns the smallest key and its value.
// Returns ErrEmptyTree if the tree is empty.
func (t *Tree[K, V]) Min() (K, V, error) {
	if t.root == nil {
		var zk K
		var zv V
		return zk, zv, ErrEmptyTree
	}
	n := minNode(t.root)

	return n.key, n.val, nil
}

// Max returns the largest key and its value.
// Returns ErrEmptyTree if the tree is empty.
func (t *Tree[K, V]) Max() (K, V, error) {
	if t.root == nil {
		var zk K
		var zv V
		return zk, zv, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, n.val, nil
}

// Successor returns the smallest key strictly greater than key.
// Returns ErrKeyNotFound if key is absent, ErrNoSuccessor if key is the maximum.
func (t *Tree[K, V]) Successor(key K) (K, V, error) {
	var zk K
	var zv V
	// track the deepest ancestor from which we turned left
	var candidate *node[K, V]
	n := t.root
	found := false
	for n != nil {
		switch c := t.cmp(key, n.key); {
		case c < 0:
			candidate = n
			n = n.left
		case c > 0:
			n = n.right
		default:
			found = true
			if n.right != nil {
				s := minNode(n.right)
				return s.key, s.val, nil
			}
			n = nil
		}
	}
	if !found {
		return zk, zv, ErrKeyNotFound
	}
	if candidate == nil {
		return zk, zv, ErrNoSuccessor
	}

	return candidate.key, candidate.val, nil
}

// Predecessor returns the largest key strictly smaller than key.
// Returns ErrKeyNotFound if key is absent, ErrNoPredecessor if key is the minimum.
func (t *Tree[K, V]) Predecessor(key K) (K, V, error) {
	var zk K
	var zv V
	var candidate *node[K, V]
	n := t.root
	found := false
	for n != nil {
		switch c := t.cmp(key, n.key); {
		case c > 0:
			candidate = n
			n = n.right
		case c < 0:
			n = n.left
		default:
			found = true
			if n.left != nil {
				p := n.left
				for p.right != nil {
					p = p.right
				}
				return p.key, p.val, nil
			}
			n = nil
		}
	}
	if !found {
		return zk, zv, ErrKeyNotFound
	}
	if candidate == nil {
		return zk, zv, ErrNoPredecessor
	}

	return candidate.key, candidate.val, nil
}

// InOrder visits every key in ascending order. If visit returns an error,
// the walk stops and the error is returned wrapped.
func (t *Tree[K, V]) InOrder(visit func(key K, val V) error) error {
	return inOrder(t.root, visit)
}

func inOrder[K, V any](n *node[K, V], visit func(key K, val V) error) error {
	if n == nil {
		return nil
	}
	if err := inOrder(n.left, visit); err != nil {
		return err
	}
	if err := visit(n.key, n.val); err != nil {
		return fmt.Errorf("bst: visit error at %v: %w", n.key, err)
	}

	return inOrder(n.right, visit)
}

// Height reports the height of the tree: -1 for an empty tree,
// 0 for a single node.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	hl, hr := height(n.left), height(n.right)
	if hl > hr {
		return hl + 1
	}

	return hr + 1
}

// minNode returns the leftmost node of a non-nil subtree.
func minNode[K, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}
