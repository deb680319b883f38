// Package mesi models a bus-snooping MESI cache-coherency protocol over N
// cores, each with a private cache, plus a shared memory backing store.
//
// What
//
//   - Read and Write requests per core, with the full MESI state machine:
//     snoop on miss, writeback of a dirty peer line, Exclusive/Shared load
//     states and invalidation on write.
//   - A typed transaction log of every bus event, in order.
//   - Audit, which sweeps all caches and reports violations of the four
//     coherency invariants (single Modified, Modified/Exclusive exclusivity,
//     multiple holders all Shared).
//
// Why
//
//	Coherency bugs do not crash; they corrupt. A reference model that
//	executes the same access stream as the silicon and then audits its own
//	state is the standard way to catch a snoop filter dropping an
//	invalidation. The model is deliberately small: line granularity is one
//	address, there is no capacity eviction, and timing is abstract.
//
// States
//
//	Modified  (M) — this cache holds dirty data; memory is stale.
//	Exclusive (E) — this cache holds clean data; no other cache has it.
//	Shared    (S) — clean data, possibly in several caches.
//	Invalid   (I) — the line is not present.
//
// Errors
//
//   - ErrBadCores — system built with fewer than one core.
//   - ErrBadCore  — request names a core outside the system.
//
// Usage
//
//	sys, _ := mesi.New(4)
//	_, st, _ := sys.Read(0, 0x1000)  // st == mesi.Exclusive
//	_, _ = sys.Write(1, 0x1000, 42)  // invalidates core 0
//	if v := sys.Audit(); len(v) != 0 {
//		log.Fatalf("coherency broken: %v", v)
//	}
package mesi
