// Package bitfield provides bit-level primitives over raw register values:
// single-bit operations, field extraction/insertion, rotation, bit reversal,
// and the alignment/size validators used throughout silicon bring-up.
//
// What
//
//   - Power-of-two test, the workhorse predicate behind alignment, cache-line
//     and register-width checks.
//   - Set / Clear / Toggle / Test on individual bit positions.
//   - Extract, insert and replace contiguous bit fields.
//   - Width-confined left/right rotation and 32-bit reversal.
//   - Debug helpers: stuck-bit diagnosis between a good and a faulty word,
//     interrupt priority-conflict scan, shift-and-add multiplication.
//
// Why
//
//	Control and status registers pack many independent fields into one word.
//	Validation code constantly sets enable bits, reads back status fields and
//	compares captured values against expectations; every helper here is one
//	of those recurring moves, kept branch-light so it maps directly onto the
//	hardware instructions it mirrors.
//
// Conventions
//
//   - Values are uint64; callers working with narrower registers mask or use
//     package register, which enforces a width.
//   - Bare bit operations (SetBit, TestBit, …) do not range-check: a position
//     ≥ 64 shifts out, exactly as in hardware. Field operations return
//     sentinel errors instead, since a mis-sized field is a spec bug, not a
//     shift artifact.
//
// Errors
//
//   - ErrFieldRange    — field exceeds the 64-bit word.
//   - ErrFieldValue    — value does not fit the field width.
//   - ErrBadRotation   — rotation width is zero or exceeds 64.
//   - ErrBadAlignment  — alignment is not a positive power of two.
//   - ErrNoDifference  — stuck-bit diagnosis on identical words.
//   - ErrMultiBit      — words differ in more than one bit.
package bitfield
