// Package sortx provides tunable options, counters, and error definitions
// shared by all sorting algorithms.
package sortx

import (
	"errors"
	"fmt"
)

// Sentinel errors for sorting execution.
var (
	// ErrNilLess is returned when the less function is nil.
	ErrNilLess = errors.New("sortx: less function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sortx: invalid option supplied")

	// ErrNegativeValue is returned by Radix when the input holds a negative.
	ErrNegativeValue = errors.New("sortx: negative value not supported")
)

// Stats counts the elementary operations performed by a sort.
//
// Comparisons counts less-function invocations; Swaps counts pairwise
// exchanges; Writes counts single-slot element writes (shifts, merges,
// scatter phases). Swapping two elements counts as one Swap, not two Writes.
type Stats struct {
	Comparisons uint64
	Swaps       uint64
	Writes      uint64
}

// Option configures sorting behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the sort is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a sort run.
type Options struct {
	// OnCompare is called before elements at indices i and j are compared.
	// For Merge, indices refer to positions within the run being merged.
	OnCompare func(i, j int)

	// OnSwap is called after elements at indices i and j are exchanged.
	OnSwap func(i, j int)

	// Seed drives random pivot selection in Quick when Seeded is true.
	Seed   int64
	Seeded bool

	// Cutoff switches Merge and Quick to insertion sort below this run
	// length. Zero disables the cutoff.
	Cutoff int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
// no-op hooks, deterministic pivots, no cutoff.
func DefaultOptions() Options {
	return Options{
		OnCompare: func(int, int) {},
		OnSwap:    func(int, int) {},
		Seed:      0,
		Seeded:    false,
		Cutoff:    0,
		err:       nil,
	}
}

// WithOnCompare registers a callback observing comparisons.
func WithOnCompare(fn func(i, j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCompare = fn
		}
	}
}

// WithOnSwap registers a callback observing swaps.
func WithOnSwap(fn func(i, j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}

// WithSeed enables randomized pivot selection in Quick with the given seed.
// Identical seeds reproduce identical pivot sequences.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Seeded = true
	}
}

// WithCutoff switches divide-and-conquer sorts to insertion sort for runs
// shorter than n.
//
//	n > 0:  cutoff at n
//	n == 0: explicit "no cutoff"
//	n < 0:  invalid option → ErrOptionViolation
func WithCutoff(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Cutoff cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.Cutoff = n
		}
	}
}

// IsSorted reports whether s is in non-decreasing order per less.
func IsSorted[T any](s []T, less func(a, b T) bool) bool {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}

	return true
}

// sorter bundles the slice, ordering, options, and counters shared by
// every algorithm in the package.
type sorter[T any] struct {
	s     []T
	less  func(a, b T) bool
	opts  Options
	stats Stats
}

// newSorter validates inputs and options common to all comparison sorts.
func newSorter[T any](s []T, less func(a, b T) bool, opts []Option) (*sorter[T], error) {
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

	return &sorter[T]{s: s, less: less, opts: o}, nil
}

// cmpIdx compares s[i] against s[j], counting and firing the hook.
func (x *sorter[T]) cmpIdx(i, j int) bool {
	x.stats.Comparisons++
	x.opts.OnCompare(i, j)

	return x.less(x.s[i], x.s[j])
}

// cmpVal compares two values not currently addressable by index.
func (x *sorter[T]) cmpVal(i, j int, a, b T) bool {
	x.stats.Comparisons++
	x.opts.OnCompare(i, j)

	return x.less(a, b)
}

// swap exchanges s[i] and s[j], counting and firing the hook.
func (x *sorter[T]) swap(i, j int) {
	x.s[i], x.s[j] = x.s[j], x.s[i]
	x.stats.Swaps++
	x.opts.OnSwap(i, j)
}

// write stores v at s[i], counting a single-slot write.
func (x *sorter[T]) write(i int, v T) {
	x.s[i] = v
	x.stats.Writes++
}
