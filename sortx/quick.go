package sortx

import "math/rand"

// Quick sorts s in place with Lomuto partitioning. The pivot is chosen by
// median-of-three by default; WithSeed switches to seeded random selection,
// the classic defense against adversarial input.
func Quick[T any](s []T, less func(a, b T) bool, opts ...Option) (*Stats, error) {
	x, err := newSorter(s, less, opts)
	if err != nil {
		return nil, err
	}
	var rng *rand.Rand
	if x.opts.Seeded {
		rng = rand.New(rand.NewSource(x.opts.Seed))
	}
	x.quickSort(rng, 0, len(s))

	return &x.stats, nil
}

// quickSort sorts the half-open run [lo, hi), recursing into the smaller
// side first to bound stack depth at O(log n).
func (x *sorter[T]) quickSort(rng *rand.Rand, lo, hi int) {
	for hi-lo > 1 {
		if c := x.opts.Cutoff; c > 0 && hi-lo < c {
			x.insertion(lo, hi)
			return
		}
		p := x.partition(rng, lo, hi)
		if p-lo < hi-p-1 {
			x.quickSort(rng, lo, p)
			lo = p + 1
		} else {
			x.quickSort(rng, p+1, hi)
			hi = p
		}
	}
}

// partition moves a pivot to s[hi-1], runs the Lomuto sweep, and returns
// the pivot's final index.
func (x *sorter[T]) partition(rng *rand.Rand, lo, hi int) int {
	last := hi - 1
	if rng != nil {
		x.swap(lo+rng.Intn(hi-lo), last)
	} else {
		x.medianOfThree(lo, last)
	}

	p := lo
	for i := lo; i < last; i++ {
		if x.cmpIdx(i, last) {
			if i != p {
				x.swap(i, p)
			}
			p++
		}
	}
	if p != last {
		x.swap(p, last)
	}

	return p
}

// medianOfThree places the median of s[lo], s[mid], s[last] at s[last]
// to serve as the Lomuto pivot.
func (x *sorter[T]) medianOfThree(lo, last int) {
	mid := lo + (last-lo)/2
	if x.cmpIdx(mid, lo) {
		x.swap(mid, lo)
	}
	if x.cmpIdx(last, lo) {
		x.swap(last, lo)
	}
	if x.cmpIdx(mid, last) {
		x.swap(mid, last)
	}
}
