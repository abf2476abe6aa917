// Package btree provides a B-tree of configurable minimum degree, the
// wide-node counterpart to the binary trees in packages bst, avl and rbtree.
//
// What
//
//   - Tree[K, V] with minimum degree t ≥ 2: every node except the root holds
//     between t-1 and 2t-1 keys; internal nodes hold one more child than keys.
//   - Insert splits full nodes proactively on the way down, so the descent
//     never backtracks.
//   - Delete maintains the ≥ t-keys guarantee on the way down by borrowing
//     from a sibling or merging with a sibling before descending, then
//     handles the leaf and internal-node cases in place.
//   - Search, Min, Max, InOrder, Len, Height complete the ordered-map surface.
//
// Why
//
//   - The B-tree keeps the tree shallow (height ≤ log_t((n+1)/2)) by making
//     nodes wide, which is why it backs databases and filesystems where a
//     node visit means a disk read. Here it is its in-memory study form.
//
// Complexity (n = Len, t = minimum degree)
//
//   - Insert, Search, Delete, Min, Max: O(t·log_t n)
//   - InOrder: O(n)
//
// Errors
//
//   - ErrBadDegree    if t < 2.
//   - ErrNilCompare   if the comparison function is nil.
//   - ErrEmptyTree    on Min/Max of an empty tree.
//   - ErrKeyNotFound  when a key is absent.
//   - Wrapped visitor errors from InOrder.
//
// Tree[K, V] is not safe for concurrent use.
package btree
