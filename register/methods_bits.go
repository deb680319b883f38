package register

import "fmt"

// SetBit sets the bit at pos.
// Returns ErrBitRange when pos is beyond the register width.
//
// Complexity: O(1)
func (r *Register) SetBit(pos uint) error {
	if err := r.checkPos(pos); err != nil {
		return err
	}
	old := r.value
	r.value |= 1 << pos
	r.record(OpSet, int(pos), old, r.value)
	return nil
}

// ClearBit clears the bit at pos.
// Returns ErrBitRange when pos is beyond the register width.
//
// Complexity: O(1)
func (r *Register) ClearBit(pos uint) error {
	if err := r.checkPos(pos); err != nil {
		return err
	}
	old := r.value
	r.value &^= 1 << pos
	r.record(OpClear, int(pos), old, r.value)
	return nil
}

// ToggleBit inverts the bit at pos.
// Returns ErrBitRange when pos is beyond the register width.
//
// Complexity: O(1)
func (r *Register) ToggleBit(pos uint) error {
	if err := r.checkPos(pos); err != nil {
		return err
	}
	old := r.value
	r.value ^= 1 << pos
	r.record(OpToggle, int(pos), old, r.value)
	return nil
}

// TestBit reports whether the bit at pos is set. Reads are not recorded
// in the history.
// Returns ErrBitRange when pos is beyond the register width.
//
// Complexity: O(1)
func (r *Register) TestBit(pos uint) (bool, error) {
	if err := r.checkPos(pos); err != nil {
		return false, err
	}
	return r.value&(1<<pos) != 0, nil
}

func (r *Register) checkPos(pos uint) error {
	if pos >= r.width {
		return fmt.Errorf("%w: bit %d of %d-bit %s", ErrBitRange, pos, r.width, r.name)
	}
	return nil
}
