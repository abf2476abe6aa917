// Package btree implements search, insertion with proactive splitting,
// and traversal; deletion lives in delete.go.
package btree

import "fmt"

// Search returns the value stored under key.
// Returns ErrKeyNotFound if key is absent.
func (t *Tree[K, V]) Search(key K) (V, error) {
	n := t.root
	for {
		i, found := t.findKey(n, key)
		if found {
			return n.vals[i], nil
		}
		if n.leaf {
			var zero V
			return zero, ErrKeyNotFound
		}
		n = n.children[i]
	}
}

// Insert stores val under key, overwriting the value if key already exists.
// A full root is split first so the descent below always has room.
func (t *Tree[K, V]) Insert(key K, val V) {
	if t.full(t.root) {
		old := t.root
		t.root = &node[K, V]{children: []*node[K, V]{old}}
		t.splitChild(t.root, 0)
	}
	if t.insertNonFull(t.root, key, val) {
		t.size++
	}
}

// insertNonFull descends from a non-full node to the leaf position for key,
// splitting any full child it is about to enter.
// Returns false when the key already existed and was overwritten.
func (t *Tree[K, V]) insertNonFull(n *node[K, V], key K, val V) bool {
	for {
		i, found := t.findKey(n, key)
		if found {
			n.vals[i] = val
			return false
		}
		if n.leaf {
			n.keys = append(n.keys, key)
			n.vals = append(n.vals, val)
			copy(n.keys[i+1:], n.keys[i:])
			copy(n.vals[i+1:], n.vals[i:])
			n.keys[i] = key
			n.vals[i] = val

			return true
		}
		if t.full(n.children[i]) {
			t.splitChild(n, i)
			// the median moved up into n at index i; re-aim
			switch c := t.cmp(key, n.keys[i]); {
			case c == 0:
				n.vals[i] = val
				return false
			case c > 0:
				i++
			}
		}
		n = n.children[i]
	}
}

// splitChild splits the full child n.children[i] around its median key,
// which moves up into n. Both halves end with t-1 keys.
func (t *Tree[K, V]) splitChild(n *node[K, V], i int) {
	child := n.children[i]
	mid := t.t - 1

	right := &node[K, V]{leaf: child.leaf}
	right.keys = append(right.keys, child.keys[mid+1:]...)
	right.vals = append(right.vals, child.vals[mid+1:]...)
	if !child.leaf {
		right.children = append(right.children, child.children[mid+1:]...)
		child.children = child.children[:mid+1]
	}

	midKey, midVal := child.keys[mid], child.vals[mid]
	child.keys = child.keys[:mid]
	child.vals = child.vals[:mid]

	n.keys = append(n.keys, midKey)
	n.vals = append(n.vals, midVal)
	copy(n.keys[i+1:], n.keys[i:])
	copy(n.vals[i+1:], n.vals[i:])
	n.keys[i] = midKey
	n.vals[i] = midVal

	n.children = append(n.children, nil)
	copy(n.children[i+2:], n.children[i+1:])
	n.children[i+1] = right
}

// Min returns the smallest key and its value.
// Returns ErrEmptyTree if the tree is empty.
func (t *Tree[K, V]) Min() (K, V, error) {
	if len(t.root.keys) == 0 {
		var zk K
		var zv V
		return zk, zv, ErrEmptyTree
	}
	n := t.root
	for !n.leaf {
		n = n.children[0]
	}

	return n.keys[0], n.vals[0], nil
}

// Max returns the largest key and its value.
// Returns ErrEmptyTree if the tree is empty.
func (t *Tree[K, V]) Max() (K, V, error) {
	if len(t.root.keys) == 0 {
		var zk K
		var zv V
		return zk, zv, ErrEmptyTree
	}
	n := t.root
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	last := len(n.keys) - 1

	return n.keys[last], n.vals[last], nil
}

// InOrder visits every key in ascending order. If visit returns an error,
// the walk stops and the error is returned wrapped.
func (t *Tree[K, V]) InOrder(visit func(key K, val V) error) error {
	return t.inOrder(t.root, visit)
}

func (t *Tree[K, V]) inOrder(n *node[K, V], visit func(key K, val V) error) error {
	for i, k := range n.keys {
		if !n.leaf {
			if err := t.inOrder(n.children[i], visit); err != nil {
				return err
			}
		}
		if err := visit(k, n.vals[i]); err != nil {
			return fmt.Errorf("btree: visit error at %v: %w", k, err)
		}
	}
	if !n.leaf {
		return t.inOrder(n.children[len(n.keys)], visit)
	}

	return nil
}
