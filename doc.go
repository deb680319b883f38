// Package sival is a toolkit for silicon bring-up and validation work —
// from bit-level register primitives to toy reference models of the
// machinery under test.
//
// 🚀 What is sival?
//
//	A small, focused library that brings together:
//		• Bit primitives: fields, rotation, reversal, alignment checks
//		• Hamming weight: naive, shift, Kernighan, SWAR, lookup table
//		• XOR techniques: single-number recovery, parity, Hamming(7,4)
//		• Search: binary variants + predicate bisection (shmoo, fmax, fault isolation)
//		• Sliding-window min/avg/max over measurement series
//		• Register simulator: history, watchpoints, banks, shadow registers
//		• Reference models: MESI coherency, TLB, out-of-order pipeline
//		• Trace tooling: PCIe LTSSM analysis, log grep with context
//
// ✨ Why choose sival?
//
//   - Validation-first – every helper maps to a recurring bring-up move
//   - Explicit errors – sentinel errors throughout, never a silent -1
//   - Auditable models – each simulator can check its own invariants
//   - Extensible – functional options and hooks (OnProbe, OnWindow…)
//
// The packages are organized by concern:
//
//	bitfield/  — bit-level primitives over raw register words
//	popcount/  — Hamming-weight implementations
//	xorsum/    — XOR accumulation and error-detection techniques
//	search/    — binary search variants and measurement bisection
//	window/    — sliding min/avg/max statistics
//	twosum/    — pair-sum lookups over measurement lists
//	register/  — width-checked register simulator, banks, shadows
//	mesi/      — bus-snooping cache-coherency model with audit
//	tlb/       — TLB + page-table model with LRU and hit statistics
//	pipeline/  — out-of-order execution model with commit-order audit
//	ltssm/     — PCIe LTSSM CSV trace analysis
//	loggrep/   — pattern match with one line of context
//	cmd/sival  — the CLI over the trace and series tooling
//
//	go get github.com/sivalab/sival
package sival
