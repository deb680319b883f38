package tlb

import "fmt"

// entry is one cached translation with its last-access tick for LRU.
type entry struct {
	ppage uint64
	tick  uint64
}

// firstPhysicalPage is where the allocator starts handing out frames.
const firstPhysicalPage = 1000

// TLB caches virtual-page to physical-page translations in front of a
// flat page table. Not safe for concurrent use.
type TLB struct {
	size     int
	pageSize uint64

	entries   map[uint64]entry
	pageTable map[uint64]uint64

	tick   uint64
	hits   uint64
	misses uint64
	faults uint64
}

// New returns an empty TLB holding up to size translations.
// Returns ErrBadSize when size < 1 and ErrBadPageSize for a bad
// WithPageSize value.
func New(size int, opts ...Option) (*TLB, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &TLB{
		size:      size,
		pageSize:  o.PageSize,
		entries:   make(map[uint64]entry, size),
		pageTable: make(map[uint64]uint64),
	}, nil
}

// PageSize returns the translation granularity in bytes.
func (t *TLB) PageSize() uint64 { return t.pageSize }

// Translate maps a virtual address to its physical address.
//
// The fast path is a TLB probe. On a miss the page table provides the
// frame; a page never touched before faults and gets the next free
// physical page. Either slow path installs the translation, evicting the
// least recently used entry when the TLB is full.
func (t *TLB) Translate(vaddr uint64) (uint64, Result) {
	t.tick++
	vpage := vaddr / t.pageSize
	offset := vaddr % t.pageSize

	if e, ok := t.entries[vpage]; ok {
		t.hits++
		e.tick = t.tick
		t.entries[vpage] = e
		return e.ppage*t.pageSize + offset, Hit
	}

	t.misses++
	res := Miss
	ppage, ok := t.pageTable[vpage]
	if !ok {
		t.faults++
		res = PageFault
		ppage = firstPhysicalPage + uint64(len(t.pageTable))
		t.pageTable[vpage] = ppage
	}

	t.install(vpage, ppage)
	return ppage*t.pageSize + offset, res
}

// install caches a translation, evicting the LRU entry when full.
func (t *TLB) install(vpage, ppage uint64) {
	if len(t.entries) >= t.size {
		var lruPage, lruTick uint64
		first := true
		for vp, e := range t.entries {
			if first || e.tick < lruTick {
				lruPage, lruTick = vp, e.tick
				first = false
			}
		}
		delete(t.entries, lruPage)
	}
	t.entries[vpage] = entry{ppage: ppage, tick: t.tick}
}

// Flush empties the TLB, as a context switch without ASIDs would. The
// page table and counters survive.
func (t *TLB) Flush() {
	t.entries = make(map[uint64]entry, t.size)
}

// Stats returns the outcome counters and their percentage rates.
func (t *TLB) Stats() Stats {
	s := Stats{
		Hits:          t.hits,
		Misses:        t.misses,
		PageFaults:    t.faults,
		TotalAccesses: t.hits + t.misses,
	}
	if s.TotalAccesses == 0 {
		return s
	}
	total := float64(s.TotalAccesses)
	s.HitRate = float64(s.Hits) / total * 100
	s.MissRate = float64(s.Misses) / total * 100
	s.FaultRate = float64(s.PageFaults) / total * 100
	return s
}
