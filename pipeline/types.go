package pipeline

import "errors"

var (
	// ErrBadConfig indicates a non-positive unit count or ROB size.
	ErrBadConfig = errors.New("pipeline: units and ROB size must be positive")
	// ErrROBFull indicates a structural hazard: the reorder buffer is full.
	ErrROBFull = errors.New("pipeline: reorder buffer full")
	// ErrWAWHazard indicates the destination register already has a write
	// in flight.
	ErrWAWHazard = errors.New("pipeline: write-after-write hazard")
	// ErrBadRegister indicates a register outside [0,32).
	ErrBadRegister = errors.New("pipeline: register out of range")
	// ErrNotDrained indicates Run exhausted its cycle budget with
	// instructions still in flight.
	ErrNotDrained = errors.New("pipeline: machine not drained within cycle budget")
)

// NumRegisters is the architectural register file size.
const NumRegisters = 32

// Class is an instruction class, which determines execution latency and
// writeback behavior.
type Class uint8

// Instruction classes.
const (
	Nop Class = iota
	ALU
	Load
	Store
	Branch
)

// String returns the mnemonic class name.
func (c Class) String() string {
	switch c {
	case ALU:
		return "ALU"
	case Load:
		return "LOAD"
	case Store:
		return "STORE"
	case Branch:
		return "BRANCH"
	default:
		return "NOP"
	}
}

// Latency returns the class's execution latency in cycles.
func (c Class) Latency() int {
	if c == Load {
		return 3
	}
	return 1
}

// Instruction is one operation flowing through the machine. Src lists the
// registers read, Dest the register written and Imm the immediate operand.
// Commit computes the architectural result: a Load writes Imm, an ALU op
// writes the sum of its sources plus Imm, the remaining classes write
// nothing.
type Instruction struct {
	Class Class
	Src   []int
	Dest  int
	Imm   int
}

// Violation reports one correctness failure found by Audit.
type Violation struct {
	// Kind is "register", "stuck" or "uncommitted".
	Kind   string
	Detail string
}

// Stats are the machine's progress counters.
type Stats struct {
	Cycle     int
	Issued    int
	Completed int
	Stalls    int
}

// entry tracks one instruction's lifecycle inside the machine.
type entry struct {
	inst         Instruction
	issuedAt     int
	dispatchedAt int
	completedAt  int
	dispatched   bool
	completed    bool
}
