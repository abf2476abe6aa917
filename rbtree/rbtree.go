// Package rbtree implements insertion, lookup, traversal, and rotations;
// deletion lives in delete.go.
package rbtree

import "fmt"

// Insert stores val under key, overwriting the value if key already exists.
// A new node enters red and the fixup restores the red-black properties.
func (t *Tree[K, V]) Insert(key K, val V) {
	parent := t.sentinel
	cur := t.root
	for cur != t.sentinel {
		parent = cur
		switch c := t.cmp(key, cur.key); {
		case c < 0:
			cur = cur.left
		case c > 0:
			cur = cur.right
		default:
			cur.val = val
			return
		}
	}

	n := &node[K, V]{
		key:    key,
		val:    val,
		left:   t.sentinel,
		right:  t.sentinel,
		parent: parent,
		color:  red,
	}
	switch {
	case parent == t.sentinel:
		t.root = n
	case t.cmp(key, parent.key) < 0:
		parent.left = n
	default:
		parent.right = n
	}
	t.size++
	t.insertFixup(n)
}

// insertFixup restores properties 2 and 4 after inserting the red node n.
// Each loop iteration resolves an uncle-red recoloring or a rotation case.
func (t *Tree[K, V]) insertFixup(n *node[K, V]) {
	for n.parent.color == red {
		grand := n.parent.parent
		if n.parent == grand.left {
			uncle := grand.right
			if uncle.color == red {
				// case 1: recolor and climb
				n.parent.color = black
				uncle.color = black
				grand.color = red
				n = grand
				continue
			}
			if n == n.parent.right {
				// case 2: reduce to case 3
				n = n.parent
				t.rotateLeft(n)
			}
			// case 3
			n.parent.color = black
			grand.color = red
			t.rotateRight(grand)
		} else {
			uncle := grand.left
			if uncle.color == red {
				n.parent.color = black
				uncle.color = black
				grand.color = red
				n = grand
				continue
			}
			if n == n.parent.left {
				n = n.parent
				t.rotateRight(n)
			}
			n.parent.color = black
			grand.color = red
			t.rotateLeft(grand)
		}
	}
	t.root.color = black
}

// Search returns the value stored under key.
// Returns ErrKeyNotFound if key is absent.
func (t *Tree[K, V]) Search(key K) (V, error) {
	if n := t.lookup(key); n != t.sentinel {
		return n.val, nil
	}
	var zero V

	return zero, ErrKeyNotFound
}

// lookup returns the node holding key, or the sentinel.
func (t *Tree[K, V]) lookup(key K) *node[K, V] {
	n := t.root
	for n != t.sentinel {
		switch c := t.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}

	return t.sentinel
}

// Min returns the smallest key and its value.
// Returns ErrEmptyTree if the tree is empty.
func (t *Tree[K, V]) Min() (K, V, error) {
	if t.root == t.sentinel {
		var zk K
		var zv V
		return zk, zv, ErrEmptyTree
	}
	n := t.minNode(t.root)

	return n.key, n.val, nil
}

// Max returns the largest key and its value.
// Returns ErrEmptyTree if the tree is empty.
func (t *Tree[K, V]) Max() (K, V, error) {
	if t.root == t.sentinel {
		var zk K
		var zv V
		return zk, zv, ErrEmptyTree
	}
	n := t.root
	for n.right != t.sentinel {
		n = n.right
	}

	return n.key, n.val, nil
}

// InOrder visits every key in ascending order. If visit returns an error,
// the walk stops and the error is returned wrapped.
func (t *Tree[K, V]) InOrder(visit func(key K, val V) error) error {
	return t.inOrder(t.root, visit)
}

func (t *Tree[K, V]) inOrder(n *node[K, V], visit func(key K, val V) error) error {
	if n == t.sentinel {
		return nil
	}
	if err := t.inOrder(n.left, visit); err != nil {
		return err
	}
	if err := visit(n.key, n.val); err != nil {
		return fmt.Errorf("rbtree: visit error at %v: %w", n.key, err)
	}

	return t.inOrder(n.right, visit)
}

// Height reports the height of the tree: -1 for an empty tree.
func (t *Tree[K, V]) Height() int {
	return t.height(t.root)
}

func (t *Tree[K, V]) height(n *node[K, V]) int {
	if n == t.sentinel {
		return -1
	}
	hl, hr := t.height(n.left), t.height(n.right)
	if hl > hr {
		return hl + 1
	}

	return hr + 1
}

// rotateLeft lifts n.right into n's place, preserving in-order sequence.
func (t *Tree[K, V]) rotateLeft(n *node[K, V]) {
	r := n.right
	n.right = r.left
	if r.left != t.sentinel {
		r.left.parent = n
	}
	r.parent = n.parent
	switch {
	case n.parent == t.sentinel:
		t.root = r
	case n == n.parent.left:
		n.parent.left = r
	default:
		n.parent.right = r
	}
	r.left = n
	n.parent = r
}

// rotateRight is the mirror of rotateLeft.
func (t *Tree[K, V]) rotateRight(n *node[K, V]) {
	l := n.left
	n.left = l.right
	if l.right != t.sentinel {
		l.right.parent = n
	}
	l.parent = n.parent
	switch {
	case n.parent == t.sentinel:
		t.root = l
	case n == n.parent.right:
		n.parent.right = l
	default:
		n.parent.left = l
	}
	l.right = n
	n.parent = l
}

// minNode returns the leftmost node of a subtree, assuming n != sentinel.
func (t *Tree[K, V]) minNode(n *node[K, V]) *node[K, V] {
	for n.left != t.sentinel {
		n = n.left
	}

	return n
}
