// Package search implements the lookup algorithms and their probe counting.
package search

import "errors"

// Sentinel errors for searching.
var (
	// ErrNilPredicate is returned when the equality or comparison function is nil.
	ErrNilPredicate = errors.New("search: predicate function is nil")

	// ErrNotFound is returned when the target is absent.
	ErrNotFound = errors.New("search: target not found")
)

// Result reports where a search ended and how much it cost.
type Result struct {
	// Index is the position of the match, or -1 when not found.
	Index int

	// Probes counts how many elements were examined.
	Probes int
}

// Linear scans s left to right and returns the first index where eq holds.
// Returns ErrNilPredicate if eq is nil, ErrNotFound if no element matches.
func Linear[T any](s []T, target T, eq func(a, b T) bool) (Result, error) {
	if eq == nil {
		return Result{Index: -1}, ErrNilPredicate
	}
	r := Result{Index: -1}
	for i, v := range s {
		r.Probes++
		if eq(v, target) {
			r.Index = i
			return r, nil
		}
	}

	return r, ErrNotFound
}

// Binary searches a slice sorted consistently with cmp and returns the index
// of an element equal to target. Which equal element is unspecified when
// duplicates exist; use LowerBound for the leftmost.
// Returns ErrNilPredicate if cmp is nil, ErrNotFound if target is absent.
func Binary[T any](s []T, target T, cmp func(a, b T) int) (Result, error) {
	if cmp == nil {
		return Result{Index: -1}, ErrNilPredicate
	}
	r := Result{Index: -1}
	lo, hi := 0, len(s)
	for lo < hi {
		mid := lo + (hi-lo)/2
		r.Probes++
		switch c := cmp(target, s[mid]); {
		case c < 0:
			hi = mid
		case c > 0:
			lo = mid + 1
		default:
			r.Index = mid
			return r, nil
		}
	}

	return r, ErrNotFound
}

// LowerBound returns the first index i in a sorted slice with
// cmp(s[i], target) >= 0; that is len(s) when every element is smaller.
// The index is the insertion point that keeps s sorted.
// Returns ErrNilPredicate if cmp is nil.
func LowerBound[T any](s []T, target T, cmp func(a, b T) int) (Result, error) {
	if cmp == nil {
		return Result{Index: -1}, ErrNilPredicate
	}
	r := Result{}
	lo, hi := 0, len(s)
	for lo < hi {
		mid := lo + (hi-lo)/2
		r.Probes++
		if cmp(s[mid], target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	r.Index = lo

	return r, nil
}
