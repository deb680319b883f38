// Package xorsum collects the XOR-accumulation tricks used in data-integrity
// checks and duplicate-cancellation puzzles.
//
// What
//
//   - Single          — the value appearing once when every other appears twice;
//     one XOR pass, O(1) space, since x^x cancels.
//   - SingleOfTriples — the value appearing once when every other appears
//     three times; two accumulators track bits seen once and twice.
//   - SinglePair      — the two values appearing once among pairs; the total
//     XOR's lowest set bit splits the input into two cancelling groups.
//   - Parity / DetectSingleBitError — even-parity generation and the matching
//     single-flip check over 0/1 symbol slices.
//   - HammingSyndrome — Hamming(7,4) syndrome; zero means clean, otherwise
//     the 1-based position of the flipped symbol.
//
// Why
//
//	XOR is the cheapest gate for equality and difference: link CRCs, parity
//	lanes, scrambler feedback and memory miscompares all reduce to it. The
//	puzzle forms here are the same accumulation patterns with the hardware
//	stripped away.
//
// Errors
//
//   - ErrEmptyInput — accumulation over an empty slice.
//   - ErrBadSymbol  — parity input symbol outside {0,1}.
package xorsum
