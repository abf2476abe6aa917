// Package sortx: the quadratic sorts — bubble, selection, insertion —
// and the gap-sequence shell sort built on insertion.
package sortx

// Bubble sorts s in place by repeatedly swapping adjacent out-of-order
// pairs. A pass without swaps terminates early, which makes the algorithm
// O(n) on already-sorted input.
func Bubble[T any](s []T, less func(a, b T) bool, opts ...Option) (*Stats, error) {
	x, err := newSorter(s, less, opts)
	if err != nil {
		return nil, err
	}

	for end := len(s); end > 1; end-- {
		swapped := false
		for i := 1; i < end; i++ {
			if x.cmpIdx(i, i-1) {
				x.swap(i, i-1)
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return &x.stats, nil
}

// Selection sorts s in place by selecting the minimum of the unsorted
// suffix and swapping it into position. Exactly n-1 swaps at most, which
// is why it is the algorithm of choice when writes are expensive.
func Selection[T any](s []T, less func(a, b T) bool, opts ...Option) (*Stats, error) {
	x, err := newSorter(s, less, opts)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(s)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(s); j++ {
			if x.cmpIdx(j, minIdx) {
				minIdx = j
			}
		}
		if minIdx != i {
			x.swap(i, minIdx)
		}
	}

	return &x.stats, nil
}

// Insertion sorts s in place by growing a sorted prefix: each element is
// shifted left until it meets a smaller one. Stable, and O(n) on
// nearly-sorted input.
func Insertion[T any](s []T, less func(a, b T) bool, opts ...Option) (*Stats, error) {
	x, err := newSorter(s, less, opts)
	if err != nil {
		return nil, err
	}
	x.insertion(0, len(s))

	return &x.stats, nil
}

// insertion sorts the half-open run [lo, hi); shared with Merge and Quick
// as their small-run cutoff.
func (x *sorter[T]) insertion(lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		v := x.s[i]
		j := i
		for j > lo && x.cmpVal(i, j-1, v, x.s[j-1]) {
			x.write(j, x.s[j-1])
			j--
		}
		if j != i {
			x.write(j, v)
		}
	}
}

// Shell sorts s in place with the n/2 gap sequence: gapped insertion
// passes leave the slice h-sorted for shrinking h until a final h=1 pass.
func Shell[T any](s []T, less func(a, b T) bool, opts ...Option) (*Stats, error) {
	x, err := newSorter(s, less, opts)
	if err != nil {
		return nil, err
	}

	n := len(s)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			v := s[i]
			j := i
			for j >= gap && x.cmpVal(i, j-gap, v, s[j-gap]) {
				x.write(j, s[j-gap])
				j -= gap
			}
			if j != i {
				x.write(j, v)
			}
		}
	}

	return &x.stats, nil
}
