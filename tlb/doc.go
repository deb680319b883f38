// Package tlb models a translation lookaside buffer in front of a page
// table: virtual-to-physical translation with LRU replacement and
// hit/miss/page-fault accounting.
//
// What
//
//   - Translate splits a virtual address into page and offset, probes the
//     TLB, falls back to the page table on a miss, and allocates a fresh
//     physical page on a fault. Every access is classified Hit, Miss or
//     PageFault.
//   - A full TLB evicts the least recently used entry.
//   - Stats reports hit, miss and fault rates as percentages.
//
// Why
//
//	TLB behavior dominates memory latency under pressure, and a reference
//	model makes access patterns auditable: replay the trace through the
//	model and the expected hit rate falls out. Walking a real page-table
//	radix tree is out of scope; the table here is a flat map and faults
//	allocate sequentially.
//
// Errors
//
//   - ErrBadSize      — TLB built with fewer than one entry.
//   - ErrBadPageSize  — page size not a power of two.
//
// Usage
//
//	t, _ := tlb.New(64)
//	paddr, res := t.Translate(0x1234)
//	fmt.Println(paddr, res) // first touch page-faults
//	fmt.Printf("%.1f%% hits\n", t.Stats().HitRate)
package tlb
