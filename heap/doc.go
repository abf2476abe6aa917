// Package heap provides a generic binary heap and priority-queue primitive,
// ordered by a user-supplied less function, with optional instrumentation hooks.
//
// What
//
//   - Heap[T] keeps its items in an implicit binary tree stored in a slice,
//     with the extremal item (per less) always at index 0.
//   - New builds an empty heap; NewFromSlice heapifies an existing slice
//     bottom-up in O(n).
//   - Push, Pop, Peek, Len, IsEmpty cover the classic priority-queue surface.
//   - Items returns a snapshot of the backing slice without disturbing order.
//   - Hooks observe the algorithm as it runs:
//   - OnCompare(i, j) fires before items at indices i and j are compared.
//   - OnSwap(i, j) fires after items at indices i and j are exchanged.
//
// Why
//
//   - A min-heap (less = a < b) yields ascending Pop order; flip the
//     comparison for a max-heap. The same structure backs heapsort,
//     Dijkstra frontiers, schedulers, and k-way merges.
//   - The hooks make sift-up and sift-down visible, which is the whole point
//     of studying the structure rather than importing one.
//
// Complexity (n = Len)
//
//   - Push, Pop:     O(log n)
//   - Peek, Len:     O(1)
//   - NewFromSlice:  O(n)
//   - Memory:        O(n) in a single slice, no per-item allocation
//
// Usage
//
//	h, err := heap.New[int](func(a, b int) bool { return a < b })
//	if err != nil { ... }
//	h.Push(5)
//	h.Push(2)
//	top, _ := h.Peek() // 2
//	v, _ := h.Pop()    // 2
//
// Errors
//
//   - ErrNilLess         if the less function is nil.
//   - ErrEmptyHeap       on Pop/Peek of an empty heap.
//   - ErrOptionViolation if an invalid Option is supplied (e.g. negative capacity).
//
// Heap[T] is not safe for concurrent use; guard it externally if shared.
package heap
