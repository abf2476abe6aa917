package sortx

// Merge sorts s in place via top-down merge sort with a single auxiliary
// buffer. Stable: equal elements keep their relative order because the
// left run wins ties.
func Merge[T any](s []T, less func(a, b T) bool, opts ...Option) (*Stats, error) {
	x, err := newSorter(s, less, opts)
	if err != nil {
		return nil, err
	}
	aux := make([]T, len(s))
	x.mergeSort(aux, 0, len(s))

	return &x.stats, nil
}

// mergeSort sorts the half-open run [lo, hi).
func (x *sorter[T]) mergeSort(aux []T, lo, hi int) {
	if hi-lo < 2 {
		return
	}
	if c := x.opts.Cutoff; c > 0 && hi-lo < c {
		x.insertion(lo, hi)
		return
	}
	mid := lo + (hi-lo)/2
	x.mergeSort(aux, lo, mid)
	x.mergeSort(aux, mid, hi)
	// already ordered across the seam: nothing to merge
	if !x.cmpIdx(mid, mid-1) {
		return
	}
	x.merge(aux, lo, mid, hi)
}

// merge combines the sorted runs [lo, mid) and [mid, hi) through aux.
func (x *sorter[T]) merge(aux []T, lo, mid, hi int) {
	copy(aux[lo:hi], x.s[lo:hi])
	i, j := lo, mid
	for k := lo; k < hi; k++ {
		switch {
		case i >= mid:
			x.write(k, aux[j])
			j++
		case j >= hi:
			x.write(k, aux[i])
			i++
		case x.cmpVal(j, i, aux[j], aux[i]): // right strictly smaller
			x.write(k, aux[j])
			j++
		default: // ties go left, preserving stability
			x.write(k, aux[i])
			i++
		}
	}
}
