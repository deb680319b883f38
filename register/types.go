package register

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrBadWidth indicates a register width outside [1,64].
	ErrBadWidth = errors.New("register: width must be in [1,64]")
	// ErrBitRange indicates a bit position beyond the register width.
	ErrBitRange = errors.New("register: bit position beyond register width")
	// ErrFieldRange indicates a field that extends beyond the register width.
	ErrFieldRange = errors.New("register: field extends beyond register width")
	// ErrFieldValue indicates a value too large for the requested field width.
	ErrFieldValue = errors.New("register: value does not fit field width")
	// ErrValueRange indicates a loaded value that does not fit the width.
	ErrValueRange = errors.New("register: value does not fit register width")
	// ErrBadBank indicates a bank id outside the bank file.
	ErrBadBank = errors.New("register: bank id out of range")
	// ErrBadIndex indicates a register index outside a bank.
	ErrBadIndex = errors.New("register: register index out of range")
	// ErrNotPending indicates a shadow commit with nothing staged.
	ErrNotPending = errors.New("register: no staged value pending")
)

// Op identifies the kind of mutation recorded in an Event.
type Op string

// Mutation kinds appearing in a Register's history.
const (
	OpSet    Op = "set"
	OpClear  Op = "clear"
	OpToggle Op = "toggle"
	OpInsert Op = "insert"
	OpRotate Op = "rotate"
	OpLoad   Op = "load"
	OpReset  Op = "reset"
	OpCommit Op = "commit"
)

// Event records one mutation: the operation, the bit position it targeted
// (-1 for whole-register operations) and the value before and after.
type Event struct {
	Op  Op
	Pos int
	Old uint64
	New uint64
}

// WatchFunc observes a watched bit changing. old and now are the bit's
// value before and after the mutation.
type WatchFunc func(name string, pos uint, old, now bool)

// Register models a single hardware register of a fixed width.
// Not safe for concurrent use.
type Register struct {
	name    string
	width   uint
	value   uint64
	history []Event
	watched uint64
	onWatch WatchFunc
}

// New returns a zeroed register with the given name and width in bits.
// Returns ErrBadWidth unless width is in [1,64].
func New(name string, width uint) (*Register, error) {
	if width < 1 || width > 64 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWidth, width)
	}
	return &Register{name: name, width: width}, nil
}

// Name returns the register's name.
func (r *Register) Name() string { return r.name }

// Width returns the register's width in bits.
func (r *Register) Width() uint { return r.width }

// mask returns the all-ones value of the register's width.
func (r *Register) mask() uint64 {
	if r.width == 64 {
		return ^uint64(0)
	}
	return (1 << r.width) - 1
}

// record appends an Event and fires watch callbacks for every watched bit
// that changed.
func (r *Register) record(op Op, pos int, old, now uint64) {
	r.history = append(r.history, Event{Op: op, Pos: pos, Old: old, New: now})
	if r.onWatch == nil || r.watched == 0 {
		return
	}
	diff := (old ^ now) & r.watched
	for diff != 0 {
		p := uint(bits.TrailingZeros64(diff))
		r.onWatch(r.name, p, old&(1<<p) != 0, now&(1<<p) != 0)
		diff &= diff - 1
	}
}
