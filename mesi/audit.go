package mesi

import (
	"fmt"
	"sort"
)

// Inject forces a line directly into a core's cache, bypassing the
// protocol. Fault injection for negative testing: a snoop filter that
// dropped an invalidation looks exactly like an injected stale line, and
// Audit must catch it. Injections are not logged as bus transactions.
//
// Returns ErrBadCore for a core outside the system.
func (s *System) Inject(core int, addr uint64, data uint64, st State) error {
	if err := s.checkCore(core); err != nil {
		return err
	}
	if st == Invalid {
		delete(s.caches[core], addr)
		return nil
	}
	s.caches[core][addr] = line{data: data, state: st}
	return nil
}

// Audit sweeps every cache and checks the four coherency invariants for
// each address:
//
//  1. at most one Modified copy;
//  2. a Modified copy excludes any other holder;
//  3. an Exclusive copy excludes any other holder;
//  4. multiple holders must all be Shared.
//
// Violations are returned sorted by address. An empty slice means the
// system is coherent.
func (s *System) Audit() []Violation {
	type holder struct {
		core  int
		state State
	}
	holders := make(map[uint64][]holder)
	for core, cache := range s.caches {
		for addr, ln := range cache {
			holders[addr] = append(holders[addr], holder{core: core, state: ln.state})
		}
	}

	addrs := make([]uint64, 0, len(holders))
	for addr := range holders {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	var out []Violation
	for _, addr := range addrs {
		var modified, exclusive, shared int
		for _, h := range holders[addr] {
			switch h.state {
			case Modified:
				modified++
			case Exclusive:
				exclusive++
			case Shared:
				shared++
			}
		}
		total := len(holders[addr])

		if modified > 1 {
			out = append(out, Violation{Addr: addr,
				Detail: fmt.Sprintf("%d Modified copies", modified)})
		}
		if modified > 0 && total > modified {
			out = append(out, Violation{Addr: addr,
				Detail: "Modified copy coexists with other holders"})
		}
		if exclusive > 0 && total > exclusive {
			out = append(out, Violation{Addr: addr,
				Detail: "Exclusive copy coexists with other holders"})
		}
		if total > 1 && shared != total {
			out = append(out, Violation{Addr: addr,
				Detail: "multiple holders not all Shared"})
		}
	}
	return out
}
