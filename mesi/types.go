package mesi

import "errors"

var (
	// ErrBadCores indicates a system built with fewer than one core.
	ErrBadCores = errors.New("mesi: need at least one core")
	// ErrBadCore indicates a request naming a core outside the system.
	ErrBadCore = errors.New("mesi: core id out of range")
)

// State is a MESI cache-line state.
type State uint8

// The four MESI states. Invalid is the zero value: an absent line.
const (
	Invalid State = iota
	Shared
	Exclusive
	Modified
)

// String returns the single-letter form used in coherency traces.
func (s State) String() string {
	switch s {
	case Modified:
		return "M"
	case Exclusive:
		return "E"
	case Shared:
		return "S"
	default:
		return "I"
	}
}

// Kind labels a bus transaction in the log.
type Kind string

// Bus transaction kinds, in the order a request can emit them.
const (
	ReadHit         Kind = "read_hit"
	ReadMiss        Kind = "read_miss"
	Writeback       Kind = "writeback"
	Load            Kind = "load"
	ForcedWriteback Kind = "forced_writeback"
	Invalidate      Kind = "invalidate"
	Write           Kind = "write"
)

// Transaction is one bus event: which core, what happened, at which
// address, and the line state and data after the event.
type Transaction struct {
	Core  int
	Kind  Kind
	Addr  uint64
	State State
	Data  uint64
}

// Violation reports one broken coherency invariant found by Audit.
type Violation struct {
	Addr   uint64
	Detail string
}

// line is one cached address: its data and MESI state.
type line struct {
	data  uint64
	state State
}

// System is the coherency model: one private cache per core, shared
// memory, and the bus transaction log. Not safe for concurrent use; the
// bus serializes requests in hardware and callers serialize them here.
type System struct {
	caches []map[uint64]line
	memory map[uint64]uint64
	log    []Transaction
}

// New returns a system of cores private caches, all empty.
// Returns ErrBadCores when cores < 1.
func New(cores int) (*System, error) {
	if cores < 1 {
		return nil, ErrBadCores
	}
	caches := make([]map[uint64]line, cores)
	for i := range caches {
		caches[i] = make(map[uint64]line)
	}
	return &System{
		caches: caches,
		memory: make(map[uint64]uint64),
	}, nil
}

// Cores returns the number of cores in the system.
func (s *System) Cores() int { return len(s.caches) }

// Log returns a copy of all bus transactions recorded so far.
func (s *System) Log() []Transaction {
	out := make([]Transaction, len(s.log))
	copy(out, s.log)
	return out
}

func (s *System) checkCore(core int) error {
	if core < 0 || core >= len(s.caches) {
		return ErrBadCore
	}
	return nil
}

func (s *System) emit(core int, kind Kind, addr uint64, st State, data uint64) {
	s.log = append(s.log, Transaction{Core: core, Kind: kind, Addr: addr, State: st, Data: data})
}
