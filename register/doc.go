// Package register simulates hardware registers with an enforced width:
// bit mutation, field access, rotation, change history and bit watchpoints,
// plus banked register files and shadow registers with atomic commit.
//
// What
//
//   - Register: a named value of 1–64 bits. Every mutation is range-checked
//     against the width and appended to an in-memory history.
//   - Watchpoints: mark bit positions and receive a callback whenever a
//     mutation flips a watched bit, the software analogue of a probe on a
//     status line.
//   - Bank: N banks of M registers with an active-bank pointer, modelling
//     register banking for fast context switches.
//   - Shadow: a staged value committed to the live register in one step, as
//     timer and PWM peripherals do to avoid torn updates.
//
// Why
//
//	Package bitfield operates on bare uint64 words and deliberately lets
//	out-of-range positions shift out. Bring-up scripts want the opposite:
//	a model that rejects a write outside the documented width and records
//	what happened, so a miscompare hours into a soak run can be traced back
//	to the exact operation that flipped the bit.
//
// Errors
//
//   - ErrBadWidth    — register width outside [1,64].
//   - ErrBitRange    — bit position beyond the register width.
//   - ErrFieldRange  — field extends beyond the register width.
//   - ErrFieldValue  — value does not fit the field width.
//   - ErrValueRange  — loaded value does not fit the register width.
//   - ErrBadBank     — bank id outside the bank file.
//   - ErrBadIndex    — register index outside a bank.
//   - ErrNotPending  — shadow commit with nothing staged.
//
// Usage
//
//	ctrl, _ := register.New("CTRL", 32)
//	_ = ctrl.InsertField(4, 12, 9600) // baud
//	_ = ctrl.SetBit(0)                // enable
//	fmt.Println(ctrl.BinaryString(4))
package register
