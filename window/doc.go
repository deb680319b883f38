// Package window computes min/avg/max statistics over every sliding window
// of a latency series in O(n) time using twin monotonic deques.
//
// What
//
//   - Stats(series, k) returns one Stat{Min, Avg, Max} per window of size k,
//     len(series)-k+1 results in order.
//   - The minimum deque keeps indices of non-decreasing values, the maximum
//     deque non-increasing; each index is pushed and popped at most once, so
//     the whole pass is O(n) with O(k) extra space. The average rides on a
//     running sum.
//
// Why
//
//	Latency telemetry from a link or a test rig arrives as a flat series;
//	per-window extremes and means are the first screen for glitches and
//	drift. The naive per-window rescan is O(n·k) and falls over at trace
//	sizes; the deque formulation is the standard fix.
//
// Determinism
//
//	Output depends only on the input series and k; the OnWindow hook fires
//	once per emitted window, in order.
//
// Errors
//
//   - ErrEmptySeries    — empty input.
//   - ErrBadWindow      — k ≤ 0 or k > len(series).
//   - ErrOptionViolation — invalid Option value.
//
// Usage
//
//	stats, err := window.Stats(latencies, 3)
//	if err != nil { ... }
//	for i, s := range stats {
//	    fmt.Printf("window %d: min=%g avg=%g max=%g\n", i, s.Min, s.Avg, s.Max)
//	}
package window
