// Package twosum provides pair-sum lookups over measurement slices:
// the classic index pair for an exact target, all unique value pairs,
// and the closest achievable pair sum.
//
// What
//
//   - Indices  — first index pair (i, j), i < j, with nums[i]+nums[j] == target.
//     One pass with a complement map: O(n) time, O(n) space. Duplicates are
//     handled naturally, since earlier occurrences are already in the map.
//   - AllPairs — every distinct value pair summing to target, each ascending,
//     in discovery order.
//   - Closest  — the value pair whose sum is nearest the target, by the
//     two-pointer sweep over a sorted copy. O(n log n), input untouched.
//
// Why
//
//	Pair searches recur in validation work: two supply rails summing to a
//	budget, two delay taps matching a window, two DMA channels filling a
//	burst. The complement-map pattern is the O(n) answer to all of them.
//
// Errors
//
//   - ErrNoPair     — no pair reaches the target (Indices, Closest on short input).
//   - ErrShortInput — fewer than two values.
package twosum
