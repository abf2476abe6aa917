// Package heap provides tunable options and error definitions
// for the generic binary heap.
package heap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heap construction and access.
var (
	// ErrNilLess is returned when the less function is nil.
	ErrNilLess = errors.New("heap: less function is nil")

	// ErrEmptyHeap is returned by Pop and Peek on an empty heap.
	ErrEmptyHeap = errors.New("heap: empty heap")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("heap: invalid option supplied")
)

// Option configures heap behavior via functional arguments.
// An invalid Option (e.g. negative capacity) is recorded internally
// and surfaced as ErrOptionViolation by New or NewFromSlice.
type Option func(*Options)

// Options holds parameters and callbacks to customize heap execution.
type Options struct {
	// Capacity pre-allocates the backing slice. Zero means no preallocation.
	Capacity int

	// OnCompare is called before the items at indices i and j are compared.
	OnCompare func(i, j int)

	// OnSwap is called after the items at indices i and j are exchanged.
	OnSwap func(i, j int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
// no preallocation and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Capacity:  0,
		OnCompare: func(int, int) {},
		OnSwap:    func(int, int) {},
		err:       nil,
	}
}

// WithCapacity pre-sizes the backing slice.
//
//	c > 0:  reserve room for c items
//	c == 0: explicit "no preallocation"
//	c < 0:  invalid option → ErrOptionViolation
func WithCapacity(c int) Option {
	return func(o *Options) {
		switch {
		case c < 0:
			o.err = fmt.Errorf("%w: Capacity cannot be negative (%d)", ErrOptionViolation, c)
		default:
			o.Capacity = c
		}
	}
}

// WithOnCompare registers a callback observing index comparisons.
func WithOnCompare(fn func(i, j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCompare = fn
		}
	}
}

// WithOnSwap registers a callback observing index swaps.
func WithOnSwap(fn func(i, j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}
