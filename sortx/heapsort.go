package sortx

// Heap sorts s in place: build a max-heap bottom-up in O(n), then
// repeatedly swap the root behind the shrinking heap boundary.
// Not stable, but O(n log n) worst case with O(1) extra memory.
func Heap[T any](s []T, less func(a, b T) bool, opts ...Option) (*Stats, error) {
	x, err := newSorter(s, less, opts)
	if err != nil {
		return nil, err
	}

	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		x.siftDown(i, n)
	}
	for end := n - 1; end > 0; end-- {
		x.swap(0, end)
		x.siftDown(0, end)
	}

	return &x.stats, nil
}

// siftDown restores the max-heap property for the root at i within the
// heap bounded by n.
func (x *sorter[T]) siftDown(i, n int) {
	for {
		left, right := 2*i+1, 2*i+2
		largest := i
		if left < n && x.cmpIdx(largest, left) {
			largest = left
		}
		if right < n && x.cmpIdx(largest, right) {
			largest = right
		}
		if largest == i {
			return
		}
		x.swap(i, largest)
		i = largest
	}
}
