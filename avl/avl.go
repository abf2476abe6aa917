// Package avl implements insert, delete, and lookup with
// rotation-based rebalancing after every structural change.
package avl

import "fmt"

// Insert stores val under key, overwriting the value if key already exists,
// then rebalances along the insertion path.
func (t *Tree[K, V]) Insert(key K, val V) {
	var inserted bool
	t.root, inserted = t.insert(t.root, key, val)
	if inserted {
		t.size++
	}
}

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
		return n, false
	}

	return rebalance(n), inserted
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

// Delete removes key from the tree and rebalances along the path.
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
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		succ := minNode(n.right)
		n.key, n.val = succ.key, succ.val
		n.right, _ = t.delete(n.right, succ.key)
		deleted = true
	}

	return rebalance(n), deleted
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
		return fmt.Errorf("avl: visit error at %v: %w", n.key, err)
	}

	return inOrder(n.right, visit)
}

// balance is left height minus right height; AVL requires it in [-1, 1].
func balance[K, V any](n *node[K, V]) int {
	return heightOf(n.left) - heightOf(n.right)
}

// update recomputes n's cached height from its children.
func update[K, V any](n *node[K, V]) {
	hl, hr := heightOf(n.left), heightOf(n.right)
	if hl > hr {
		n.height = hl + 1
	} else {
		n.height = hr + 1
	}
}

// rebalance restores the AVL invariant at n, resolving the four
// classic shapes: LL, LR, RR, RL.
func rebalance[K, V any](n *node[K, V]) *node[K, V] {
	update(n)
	switch b := balance(n); {
	case b > 1:
		if balance(n.left) < 0 {
			n.left = rotateLeft(n.left) // LR → LL
		}
		return rotateRight(n)
	case b < -1:
		if balance(n.right) > 0 {
			n.right = rotateRight(n.right) // RL → RR
		}
		return rotateLeft(n)
	}

	return n
}

// rotateRight lifts n.left into n's place.
func rotateRight[K, V any](n *node[K, V]) *node[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	update(n)
	update(l)

	return l
}

// rotateLeft lifts n.right into n's place.
func rotateLeft[K, V any](n *node[K, V]) *node[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	update(n)
	update(r)

	return r
}

// minNode returns the leftmost node of a non-nil subtree.
func minNode[K, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}
