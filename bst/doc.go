// Package bst provides an unbalanced binary search tree acting as a generic
// ordered map from K to V under a user-supplied three-way comparison.
//
// What
//
//   - Tree[K, V] stores key/value pairs; Insert on an existing key updates
//     the value in place (map semantics).
//   - Search, Min, Max, Successor, Predecessor navigate the ordering.
//   - Delete removes a key using the classic two-children substitution by
//     in-order successor.
//   - InOrder walks keys in ascending order and may be aborted by returning
//     an error from the visitor.
//
// Why
//
//   - The BST is the baseline against which the balanced variants
//     (avl, rbtree, btree in sibling packages) are measured: identical
//     surface, different height guarantees.
//
// Complexity (h = height, n = Len)
//
//   - Insert, Search, Delete, Min, Max, Successor, Predecessor: O(h)
//     h is O(log n) on random input but degrades to O(n) on sorted input;
//     that degradation is observable via Height and exercised in the tests.
//   - InOrder: O(n)
//
// Errors
//
//   - ErrNilCompare      if the comparison function is nil.
//   - ErrEmptyTree       on Min/Max of an empty tree.
//   - ErrKeyNotFound     when a key is absent.
//   - ErrNoSuccessor     when the key is the maximum.
//   - ErrNoPredecessor   when the key is the minimum.
//   - Wrapped visitor errors from InOrder.
//
// Tree[K, V] is not safe for concurrent use.
package bst
