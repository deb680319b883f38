package mesi

// Read services a load from core at addr.
//
// A hit returns the local line untouched. A miss snoops the bus: a peer
// holding the line Modified writes it back and demotes to Shared, a peer
// holding it Exclusive demotes to Shared. The loaded line enters Exclusive
// when no peer held it, Shared otherwise. Memory that was never written
// reads as zero.
//
// Returns ErrBadCore for a core outside the system.
func (s *System) Read(core int, addr uint64) (uint64, State, error) {
	if err := s.checkCore(core); err != nil {
		return 0, Invalid, err
	}

	if ln, ok := s.caches[core][addr]; ok {
		s.emit(core, ReadHit, addr, ln.state, ln.data)
		return ln.data, ln.state, nil
	}
	s.emit(core, ReadMiss, addr, Invalid, 0)

	// Bus snoop: demote any peer holding the line.
	peerHeld := false
	for peer, cache := range s.caches {
		if peer == core {
			continue
		}
		ln, ok := cache[addr]
		if !ok {
			continue
		}
		peerHeld = true
		switch ln.state {
		case Modified:
			s.memory[addr] = ln.data
			cache[addr] = line{data: ln.data, state: Shared}
			s.emit(peer, Writeback, addr, Shared, ln.data)
		case Exclusive:
			cache[addr] = line{data: ln.data, state: Shared}
		}
	}

	data := s.memory[addr]
	st := Exclusive
	if peerHeld {
		st = Shared
	}
	s.caches[core][addr] = line{data: data, state: st}
	s.emit(core, Load, addr, st, data)
	return data, st, nil
}

// Write services a store from core at addr.
//
// Write-back with write-allocate: a miss first reads the line for
// ownership, then every peer copy is invalidated (a Modified peer writes
// back first) and the local line becomes Modified. Memory stays stale
// until a later snoop forces the writeback.
//
// Returns ErrBadCore for a core outside the system.
func (s *System) Write(core int, addr uint64, data uint64) (State, error) {
	if err := s.checkCore(core); err != nil {
		return Invalid, err
	}

	if _, ok := s.caches[core][addr]; !ok {
		if _, _, err := s.Read(core, addr); err != nil {
			return Invalid, err
		}
	}

	for peer, cache := range s.caches {
		if peer == core {
			continue
		}
		ln, ok := cache[addr]
		if !ok {
			continue
		}
		if ln.state == Modified {
			s.memory[addr] = ln.data
			s.emit(peer, ForcedWriteback, addr, ln.state, ln.data)
		}
		delete(cache, addr)
		s.emit(peer, Invalidate, addr, Invalid, 0)
	}

	s.caches[core][addr] = line{data: data, state: Modified}
	s.emit(core, Write, addr, Modified, data)
	return Modified, nil
}
