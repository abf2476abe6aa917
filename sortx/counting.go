package sortx

// Counting sorts s in place in O(n+k) where k is the value range.
// Stable in effect for plain ints; negatives are handled by offsetting
// against the minimum. The count array costs O(k) memory, so a wide range
// on few elements is the classic misuse.
func Counting(s []int, opts ...Option) (*Stats, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	stats := &Stats{}
	if len(s) < 2 {
		return stats, nil
	}

	lo, hi := s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	counts := make([]int, hi-lo+1)
	for _, v := range s {
		counts[v-lo]++
	}
	i := 0
	for v, c := range counts {
		for ; c > 0; c-- {
			s[i] = v + lo
			stats.Writes++
			i++
		}
	}

	return stats, nil
}

// Radix sorts non-negative ints in place, least significant digit first,
// with a stable per-digit counting pass in base 10.
// Returns ErrNegativeValue if any element is negative.
func Radix(s []int, opts ...Option) (*Stats, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	stats := &Stats{}
	if len(s) < 2 {
		for _, v := range s {
			if v < 0 {
				return nil, ErrNegativeValue
			}
		}
		return stats, nil
	}

	maxV := s[0]
	for _, v := range s {
		if v < 0 {
			return nil, ErrNegativeValue
		}
		if v > maxV {
			maxV = v
		}
	}

	buf := make([]int, len(s))
	for exp := 1; maxV/exp > 0; exp *= 10 {
		var digits [10]int
		for _, v := range s {
			digits[(v/exp)%10]++
		}
		// prefix sums turn counts into end positions
		for d := 1; d < 10; d++ {
			digits[d] += digits[d-1]
		}
		// stable scatter: walk right-to-left
		for i := len(s) - 1; i >= 0; i-- {
			d := (s[i] / exp) % 10
			digits[d]--
			buf[digits[d]] = s[i]
			stats.Writes++
		}
		copy(s, buf)
	}

	return stats, nil
}
