package register

import "fmt"

// Shadow wraps a Register with a staging buffer: writes land in the shadow
// and become visible only on Commit, so readers of the live register never
// observe a half-applied update. This mirrors the shadow registers timer
// and PWM peripherals use for glitch-free reconfiguration.
type Shadow struct {
	reg     *Register
	staged  uint64
	pending bool
}

// NewShadow returns a shadow over an existing register.
func NewShadow(reg *Register) *Shadow {
	return &Shadow{reg: reg}
}

// Stage buffers v for the next Commit without touching the live register.
// Returns ErrValueRange when v does not fit the register width.
func (s *Shadow) Stage(v uint64) error {
	if v > s.reg.mask() {
		return fmt.Errorf("%w: %#x in %d-bit %s", ErrValueRange, v, s.reg.width, s.reg.name)
	}
	s.staged = v
	s.pending = true
	return nil
}

// Commit atomically moves the staged value into the live register and
// records an OpCommit event. Returns ErrNotPending when nothing is staged.
func (s *Shadow) Commit() error {
	if !s.pending {
		return ErrNotPending
	}
	old := s.reg.value
	s.reg.value = s.staged
	s.pending = false
	s.reg.record(OpCommit, -1, old, s.reg.value)
	return nil
}

// Discard drops the staged value without applying it.
func (s *Shadow) Discard() { s.pending = false }

// Pending reports whether a staged value awaits Commit.
func (s *Shadow) Pending() bool { return s.pending }

// Value reads the live register, never the staged value.
func (s *Shadow) Value() uint64 { return s.reg.value }
