// Package ltssm analyzes PCIe Link Training and Status State Machine
// traces captured as CSV.
//
// What
//
//   - Parse / ParseFile read a trace with header
//     `timestamp,ltssm_state,additional_data` and return an Analysis:
//     time of first L0 entry, retrain count, longest Recovery dwell,
//     per-state dwell totals and link speed changes.
//   - Format renders the analysis as the human-readable report the CLI
//     prints.
//   - WriteSample emits a small canonical trace covering training, two
//     retrains with speed bumps to Gen2 and Gen3, and an L0s excursion.
//
// Why
//
//	Link bring-up debugging starts with the LTSSM trace: how long until
//	the link trained, how often it fell back into Recovery, and whether
//	it reached the negotiated speed. The analyzer condenses a raw state
//	dump into those three answers.
//
// Conventions
//
//   - Timestamps are milliseconds, monotonically non-decreasing.
//   - A retrain is a Recovery sample followed by Config or Polling.
//   - A Recovery dwell spans consecutive Recovery samples and is closed
//     by the next non-Recovery sample, or by the trace end.
//   - Speed changes are detected on `Gen*` markers in the data column;
//     the link starts at Gen1.
//
// Errors
//
//   - ErrBadRecord  — malformed row; wrapped with the line number.
//   - ErrEmptyTrace — header only, no events.
package ltssm
