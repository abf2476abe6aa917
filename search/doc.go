// Package search provides linear and binary search over slices,
// with probe counts for cost comparison.
//
// What
//
//   - Linear scans left to right under an equality function: O(n), no
//     ordering requirement.
//   - Binary halves a sorted slice under a three-way comparison: O(log n).
//     The slice must already be sorted consistently with cmp; that
//     precondition is the caller's, exactly as with sort.Search.
//   - LowerBound returns the first index whose element is not less than the
//     target, which is the insertion point even when the target is absent.
//   - Every function reports how many elements it probed, making the
//     O(n) vs O(log n) gap measurable in tests.
//
// Errors
//
//   - ErrNilPredicate  if the equality or comparison function is nil.
//   - ErrNotFound      if the target is absent (Linear, Binary).
package search
