// Package search implements the binary-search variants that show up in
// silicon characterization: classic lookup, boundary occurrences, peak
// finding, rotated arrays, and predicate bisection over measurement ranges.
//
// What
//
//   - Binary          — index of target in a sorted slice, or ErrNotFound.
//   - FirstOccurrence — leftmost index of target (first failing sample in a
//     sorted pass/fail sweep).
//   - LastOccurrence  — rightmost index of target.
//   - Peak            — an index whose value exceeds both neighbors (maximum
//     of a rise-then-fall performance curve).
//   - Rotated         — lookup in a rotated sorted slice (circular capture
//     buffers).
//   - MinPassing      — smallest float64 in [lo,hi] where a pass predicate
//     holds, bisected down to a precision (minimum operating voltage).
//   - MaxStable       — largest int in [lo,hi] where a stability predicate
//     holds (maximum stable frequency).
//   - IsolateFault    — first address of the faulty region in [0,size),
//     given a range tester (memory error localization).
//
// Why
//
//	Every shmoo, margin sweep and fault localization is a log-time search
//	over a monotone boundary; the slice variants are the same move over
//	captured data.
//
// Determinism
//
//	Probes always split at lo+(hi-lo)/2; the WithOnProbe hook observes every
//	probe in order, which pins the sequence in tests.
//
// Errors
//
//   - ErrNotFound        — target absent from the slice.
//   - ErrEmptyInput      — empty slice.
//   - ErrBadRange        — lo > hi (or size == 0 for IsolateFault).
//   - ErrBadPrecision    — non-positive precision for MinPassing.
//   - ErrNeverPasses     — predicate fails across the whole range.
//   - ErrOptionViolation — invalid Option value.
package search
