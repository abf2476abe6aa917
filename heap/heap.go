// Package heap implements the binary heap over a slice with
// sift-up / sift-down maintenance of the heap invariant.
package heap

// Heap is a binary heap ordered by less; the extremal item sits at index 0.
// The zero value is not usable: construct with New or NewFromSlice.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
	opts  Options
}

// New creates an empty heap ordered by less,
// applying any number of functional Options.
// Returns ErrNilLess if less is nil, or ErrOptionViolation for bad options.
func New[T any](less func(a, b T) bool, opts ...Option) (*Heap[T], error) {
	if less == nil {
		return nil, ErrNilLess
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Heap[T]{
		items: make([]T, 0, o.Capacity),
		less:  less,
		opts:  o,
	}, nil
}

// NewFromSlice heapifies items in place in O(n) and returns the heap.
// The caller must not reuse the slice afterwards.
func NewFromSlice[T any](items []T, less func(a, b T) bool, opts ...Option) (*Heap[T], error) {
	h, err := New(less, opts...)
	if err != nil {
		return nil, err
	}
	h.items = items
	// bottom-up heapify: sift down every internal node, last parent first
	for i := len(items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h, nil
}

// Len reports the number of items currently held.
func (h *Heap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no items.
func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Peek returns the extremal item without removing it.
// Returns ErrEmptyHeap if the heap is empty.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.items[0], nil
}

// Push inserts v and restores the heap invariant by sifting up.
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the extremal item, restoring the invariant
// by moving the last leaf to the root and sifting down.
// Returns ErrEmptyHeap if the heap is empty.
func (h *Heap[T]) Pop() (T, error) {
	n := len(h.items)
	if n == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	top := h.items[0]
	h.swap(0, n-1)
	h.items = h.items[:n-1]
	h.siftDown(0)

	return top, nil
}

// Items returns a copy of the backing slice in heap order (not sorted order).
func (h *Heap[T]) Items() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)

	return out
}

// siftUp moves the item at index i toward the root while it is
// smaller (per less) than its parent.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.cmp(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves the item at index i toward the leaves while either
// child is smaller (per less) than it.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.cmp(left, smallest) {
			smallest = left
		}
		if right < n && h.cmp(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// cmp reports whether items[i] < items[j] per less, firing OnCompare first.
func (h *Heap[T]) cmp(i, j int) bool {
	h.opts.OnCompare(i, j)
	return h.less(h.items[i], h.items[j])
}

// swap exchanges items i and j and fires OnSwap.
func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.opts.OnSwap(i, j)
}
