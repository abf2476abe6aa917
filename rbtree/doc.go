// Package rbtree provides a red-black search tree with the same ordered-map
// surface as packages bst and avl.
//
// What
//
//   - Tree[K, V] maintains the five red-black properties:
//     1. every node is red or black;
//     2. the root is black;
//     3. every leaf (the shared sentinel) is black;
//     4. a red node has two black children;
//     5. all root-to-leaf paths carry the same number of black nodes.
//   - Insert recolors and rotates upward from the new red node; Delete runs
//     the transplant/fixup sequence with the sentinel standing in for nil.
//   - Validate re-checks all five properties and reports the first breach,
//     which keeps the invariant testable rather than assumed.
//
// Why
//
//   - Compared to AVL, the red-black tree trades a slightly taller worst
//     case (≤ 2·log2(n+1)) for cheaper rebalancing: at most two rotations
//     per insert and three per delete.
//
// Complexity (n = Len)
//
//   - Insert, Search, Delete, Min, Max: O(log n) guaranteed
//   - InOrder, Validate: O(n)
//
// Errors
//
//   - ErrNilCompare         if the comparison function is nil.
//   - ErrEmptyTree          on Min/Max of an empty tree.
//   - ErrKeyNotFound        when a key is absent.
//   - ErrInvariantViolation from Validate, wrapped with the breached property.
//   - Wrapped visitor errors from InOrder.
//
// Tree[K, V] is not safe for concurrent use.
package rbtree
