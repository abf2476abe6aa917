// Package avl provides a height-balanced AVL search tree with the same
// ordered-map surface as package bst.
//
// What
//
//   - Tree[K, V] keeps every node's balance factor (left height minus right
//     height) within [-1, 1] by rebalancing on the way back up from each
//     Insert and Delete.
//   - The four rebalancing shapes are the classic ones: LL and RR resolved
//     by a single rotation, LR and RL by a double rotation.
//   - Node heights are cached, so a rotation recomputes only two of them.
//
// Why
//
//   - Where the plain bst degrades to a linked list on sorted input, the AVL
//     tree guarantees height ≤ 1.44·log2(n), so every operation stays
//     O(log n) regardless of insertion order.
//
// Complexity (n = Len)
//
//   - Insert, Search, Delete, Min, Max: O(log n) guaranteed
//   - InOrder: O(n)
//
// Errors
//
//   - ErrNilCompare   if the comparison function is nil.
//   - ErrEmptyTree    on Min/Max of an empty tree.
//   - ErrKeyNotFound  when a key is absent.
//   - Wrapped visitor errors from InOrder.
//
// Tree[K, V] is not safe for concurrent use.
package avl
