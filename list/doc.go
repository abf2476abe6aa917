// Package list provides the linked sequence structures: a generic doubly
// linked list plus the Stack and Queue built on top of it.
//
// What
//
//   - List[T] is a circular doubly linked list around a sentinel root, so
//     insertion and removal never special-case the ends.
//   - PushFront/PushBack return an *Element[T] handle; Remove unlinks a
//     handle in O(1).
//   - Each walks front to back and may be aborted by the visitor;
//     Reverse flips the list in place in O(n).
//   - Stack[T] is the array-backed LIFO (push/pop at the tail of a slice).
//   - Queue[T] is the list-backed FIFO, O(1) at both ends with no
//     slice-shifting.
//
// Errors
//
//   - ErrEmptyList   on Front/Back/PopFront/PopBack of an empty list.
//   - ErrEmptyStack  on Pop/Peek of an empty stack.
//   - ErrEmptyQueue  on Dequeue/Peek of an empty queue.
//   - Wrapped visitor errors from Each.
//
// None of these types are safe for concurrent use.
package list
