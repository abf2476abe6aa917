package rbtree

import "fmt"

// Delete removes key from the tree.
// Returns ErrKeyNotFound if key is absent.
func (t *Tree[K, V]) Delete(key K) error {
	n := t.lookup(key)
	if n == t.sentinel {
		return ErrKeyNotFound
	}

	// removed is the node physically unlinked; fixupAt takes its place on
	// the path and inherits the missing blackness if removed was black.
	removed := n
	removedColor := removed.color
	var fixupAt *node[K, V]

	switch {
	case n.left == t.sentinel:
		fixupAt = n.right
		t.transplant(n, n.right)
	case n.right == t.sentinel:
		fixupAt = n.left
		t.transplant(n, n.left)
	default:
		// two children: splice out the in-order successor instead
		succ := t.minNode(n.right)
		removedColor = succ.color
		fixupAt = succ.right
		if succ.parent == n {
			fixupAt.parent = succ
		} else {
			t.transplant(succ, succ.right)
			succ.right = n.right
			succ.right.parent = succ
		}
		t.transplant(n, succ)
		succ.left = n.left
		succ.left.parent = succ
		succ.color = n.color
	}

	t.size--
	if removedColor == black {
		t.deleteFixup(fixupAt)
	}

	return nil
}

// transplant replaces the subtree rooted at u with the one rooted at v.
// v.parent is set unconditionally, which is what makes the sentinel trick work.
func (t *Tree[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == t.sentinel:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

// deleteFixup pushes the extra blackness carried by n up the tree until it
// lands on a red node or the root. The four cases (and mirrors) follow CLRS.
func (t *Tree[K, V]) deleteFixup(n *node[K, V]) {
	for n != t.root && n.color == black {
		if n == n.parent.left {
			sib := n.parent.right
			if sib.color == red {
				// case 1: rotate to get a black sibling
				sib.color = black
				n.parent.color = red
				t.rotateLeft(n.parent)
				sib = n.parent.right
			}
			if sib.left.color == black && sib.right.color == black {
				// case 2: recolor sibling, climb
				sib.color = red
				n = n.parent
				continue
			}
			if sib.right.color == black {
				// case 3: reduce to case 4
				sib.left.color = black
				sib.color = red
				t.rotateRight(sib)
				sib = n.parent.right
			}
			// case 4: terminal rotation
			sib.color = n.parent.color
			n.parent.color = black
			sib.right.color = black
			t.rotateLeft(n.parent)
			n = t.root
		} else {
			sib := n.parent.left
			if sib.color == red {
				sib.color = black
				n.parent.color = red
				t.rotateRight(n.parent)
				sib = n.parent.left
			}
			if sib.left.color == black && sib.right.color == black {
				sib.color = red
				n = n.parent
				continue
			}
			if sib.left.color == black {
				sib.right.color = black
				sib.color = red
				t.rotateLeft(sib)
				sib = n.parent.left
			}
			sib.color = n.parent.color
			n.parent.color = black
			sib.left.color = black
			t.rotateRight(n.parent)
			n = t.root
		}
	}
	n.color = black
}

// Validate re-checks the five red-black properties and returns
// ErrInvariantViolation wrapped with the first breach found.
func (t *Tree[K, V]) Validate() error {
	if t.root.color != black {
		return fmt.Errorf("%w: root is red", ErrInvariantViolation)
	}
	if t.sentinel.color != black {
		return fmt.Errorf("%w: sentinel leaf is red", ErrInvariantViolation)
	}
	_, err := t.check(t.root)

	return err
}

// check returns the black-height of the subtree and the first violation.
func (t *Tree[K, V]) check(n *node[K, V]) (int, error) {
	if n == t.sentinel {
		return 1, nil
	}
	if n.color == red && (n.left.color == red || n.right.color == red) {
		return 0, fmt.Errorf("%w: red node %v has a red child", ErrInvariantViolation, n.key)
	}
	if n.left != t.sentinel && t.cmp(n.left.key, n.key) >= 0 {
		return 0, fmt.Errorf("%w: order breach at %v", ErrInvariantViolation, n.key)
	}
	if n.right != t.sentinel && t.cmp(n.right.key, n.key) <= 0 {
		return 0, fmt.Errorf("%w: order breach at %v", ErrInvariantViolation, n.key)
	}

	hl, err := t.check(n.left)
	if err != nil {
		return 0, err
	}
	hr, err := t.check(n.right)
	if err != nil {
		return 0, err
	}
	if hl != hr {
		return 0, fmt.Errorf("%w: black-height mismatch at %v (%d vs %d)", ErrInvariantViolation, n.key, hl, hr)
	}
	if n.color == black {
		hl++
	}

	return hl, nil
}
