package btree

// Delete removes key from the tree.
// Returns ErrKeyNotFound if key is absent.
func (t *Tree[K, V]) Delete(key K) error {
	if !t.delete(t.root, key) {
		return ErrKeyNotFound
	}
	// an emptied internal root collapses into its only child
	if len(t.root.keys) == 0 && !t.root.leaf {
		t.root = t.root.children[0]
	}
	t.size--

	return nil
}

// delete removes key from the subtree rooted at n, preserving the invariant
// that every node it descends into already holds at least t keys.
func (t *Tree[K, V]) delete(n *node[K, V], key K) bool {
	i, found := t.findKey(n, key)

	if found && n.leaf {
		// case 1: remove directly from the leaf
		n.keys = append(n.keys[:i], n.keys[i+1:]...)
		n.vals = append(n.vals[:i], n.vals[i+1:]...)

		return true
	}

	if found {
		// case 2: key sits in an internal node
		left, right := n.children[i], n.children[i+1]
		switch {
		case len(left.keys) >= t.t:
			// 2a: swap in the predecessor, then delete it below
			pk, pv := maxOf(left)
			t.delete(left, pk)
			n.keys[i], n.vals[i] = pk, pv
		case len(right.keys) >= t.t:
			// 2b: mirror with the successor
			sk, sv := minOf(right)
			t.delete(right, sk)
			n.keys[i], n.vals[i] = sk, sv
		default:
			// 2c: both minimal — merge around the key, then delete from the merge
			t.merge(n, i)
			t.delete(left, key)
		}

		return true
	}

	if n.leaf {
		return false
	}

	// case 3: key (if present) lives under children[i];
	// top up the child before descending
	child := n.children[i]
	if len(child.keys) < t.t {
		child = t.fill(n, i)
	}

	return t.delete(child, key)
}

// fill brings n.children[i] up to at least t keys by borrowing from a
// sibling with spare keys, or merging with one, and returns the node that
// now covers the key range of child i.
func (t *Tree[K, V]) fill(n *node[K, V], i int) *node[K, V] {
	if i > 0 && len(n.children[i-1].keys) >= t.t {
		t.borrowFromLeft(n, i)
		return n.children[i]
	}
	if i < len(n.children)-1 && len(n.children[i+1].keys) >= t.t {
		t.borrowFromRight(n, i)
		return n.children[i]
	}
	if i < len(n.children)-1 {
		t.merge(n, i)
		return n.children[i]
	}
	t.merge(n, i-1)

	return n.children[i-1]
}

// borrowFromLeft rotates the separator key down into child i and the left
// sibling's last key up into the separator slot.
func (t *Tree[K, V]) borrowFromLeft(n *node[K, V], i int) {
	child, left := n.children[i], n.children[i-1]
	last := len(left.keys) - 1

	child.keys = append([]K{n.keys[i-1]}, child.keys...)
	child.vals = append([]V{n.vals[i-1]}, child.vals...)
	n.keys[i-1], n.vals[i-1] = left.keys[last], left.vals[last]
	left.keys = left.keys[:last]
	left.vals = left.vals[:last]

	if !child.leaf {
		lc := len(left.children) - 1
		child.children = append([]*node[K, V]{left.children[lc]}, child.children...)
		left.children = left.children[:lc]
	}
}

// borrowFromRight is the mirror: separator down into child i's tail,
// right sibling's first key up.
func (t *Tree[K, V]) borrowFromRight(n *node[K, V], i int) {
	child, right := n.children[i], n.children[i+1]

	child.keys = append(child.keys, n.keys[i])
	child.vals = append(child.vals, n.vals[i])
	n.keys[i], n.vals[i] = right.keys[0], right.vals[0]
	right.keys = append(right.keys[:0], right.keys[1:]...)
	right.vals = append(right.vals[:0], right.vals[1:]...)

	if !child.leaf {
		child.children = append(child.children, right.children[0])
		right.children = append(right.children[:0], right.children[1:]...)
	}
}

// merge folds the separator key and children[i+1] into children[i],
// leaving a single 2t-1 key node, and removes both from n.
func (t *Tree[K, V]) merge(n *node[K, V], i int) {
	child, sib := n.children[i], n.children[i+1]

	child.keys = append(child.keys, n.keys[i])
	child.vals = append(child.vals, n.vals[i])
	child.keys = append(child.keys, sib.keys...)
	child.vals = append(child.vals, sib.vals...)
	if !child.leaf {
		child.children = append(child.children, sib.children...)
	}

	n.keys = append(n.keys[:i], n.keys[i+1:]...)
	n.vals = append(n.vals[:i], n.vals[i+1:]...)
	n.children = append(n.children[:i+1], n.children[i+2:]...)
}

// maxOf returns the rightmost key/value of a subtree.
func maxOf[K, V any](n *node[K, V]) (K, V) {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	last := len(n.keys) - 1

	return n.keys[last], n.vals[last]
}

// minOf returns the leftmost key/value of a subtree.
func minOf[K, V any](n *node[K, V]) (K, V) {
	for !n.leaf {
		n = n.children[0]
	}

	return n.keys[0], n.vals[0]
}
