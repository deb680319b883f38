// Package popcount implements the Hamming weight (set-bit count) of a word
// four ways, from the naive position scan to the SWAR parallel reduction.
//
// What
//
//   - Naive     — probe all 64 positions. O(w) always.
//   - Shift     — add the LSB, shift right, stop at zero. O(w) worst case.
//   - Kernighan — v &= v-1 clears the lowest set bit, so the loop runs once
//     per set bit. O(popcount) — the interview favorite.
//   - Parallel  — SWAR masked adds: pairs, nibbles, bytes, then a multiply
//     to sum the byte counts. O(log w), branch-free, the software shape of
//     the hardware popcount tree.
//   - Table     — an 8-bit lookup table; one memory read per byte.
//
// Why
//
//	Set-bit counts show up all over validation: enabled-lane masks, error
//	syndrome weights, toggle coverage. Having the naive form next to the
//	optimized ones makes each a cross-check for the others; the tests pin
//	all of them to math/bits.OnesCount64.
package popcount
