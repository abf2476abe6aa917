// Package sortx implements the classic sorting algorithms in place over
// generic slices, instrumented with comparison/swap/write counters and hooks.
//
// What
//
//   - Comparison sorts: Bubble, Selection, Insertion, Shell, Merge, Quick,
//     Heap — all over []T with a user-supplied less function.
//   - Non-comparison sorts: Counting and Radix over []int.
//   - Every sort returns a Stats record (Comparisons, Swaps, Writes), and
//     the OnCompare/OnSwap hooks expose each step as it happens.
//   - IsSorted verifies order without mutating.
//
// Why
//
//   - The point of these algorithms as study material is their cost profile,
//     not their output; Stats turns the textbook complexity table into
//     something a test can assert (e.g. Bubble on sorted input does n-1
//     comparisons and zero swaps).
//
// Stability and complexity (n = len(s))
//
//   - Bubble     O(n²)        stable      early exit on a clean pass
//   - Selection  O(n²)        not stable  minimal swaps (≤ n-1)
//   - Insertion  O(n²)        stable      O(n) on nearly-sorted input
//   - Shell      subquadratic not stable  gap sequence n/2, n/4, … 1
//   - Merge      O(n log n)   stable      O(n) extra memory
//   - Quick      O(n log n)   not stable  median-of-three pivot by default,
//     expected; O(n²) worst           seeded random pivot via WithSeed
//   - Heap       O(n log n)   not stable  in-place max-heap
//   - Counting   O(n+k)       stable      k = value range
//   - Radix      O(d·(n+10))  stable      d = digits; non-negative ints only
//
// Usage
//
//	data := []int{5, 2, 8, 1}
//	stats, err := sortx.Quick(data, func(a, b int) bool { return a < b })
//	if err != nil { ... }
//	fmt.Println(data, stats.Comparisons)
//
// Options
//
//   - WithOnCompare(fn)  hook observing each comparison by index.
//   - WithOnSwap(fn)     hook observing each exchange by index.
//   - WithSeed(s)        randomized pivot selection for Quick.
//   - WithCutoff(n)      Merge and Quick fall back to insertion sort for
//     runs shorter than n; 0 disables, negative → ErrOptionViolation.
//
// Errors
//
//   - ErrNilLess         if the less function is nil.
//   - ErrOptionViolation if an invalid Option is supplied.
//   - ErrNegativeValue   from Radix on negative input.
//
// All sorts mutate s in place and are not safe for concurrent use on a
// shared slice.
package sortx
