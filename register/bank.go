package register

import "fmt"

// Bank models a banked register file: numBanks banks of regsPerBank
// registers each, with one bank active at a time. Writes and reads address
// the active bank, so switching banks swaps the whole context in O(1), the
// way banked general-purpose registers back fast interrupt entry.
type Bank struct {
	width  uint
	banks  [][]uint64
	active int
}

// NewBank returns a bank file of numBanks × regsPerBank zeroed registers of
// the given width. Returns ErrBadBank or ErrBadIndex for non-positive
// dimensions and ErrBadWidth for a width outside [1,64].
func NewBank(numBanks, regsPerBank int, width uint) (*Bank, error) {
	if numBanks < 1 {
		return nil, fmt.Errorf("%w: need at least one bank, got %d", ErrBadBank, numBanks)
	}
	if regsPerBank < 1 {
		return nil, fmt.Errorf("%w: need at least one register per bank, got %d", ErrBadIndex, regsPerBank)
	}
	if width < 1 || width > 64 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWidth, width)
	}
	banks := make([][]uint64, numBanks)
	for i := range banks {
		banks[i] = make([]uint64, regsPerBank)
	}
	return &Bank{width: width, banks: banks}, nil
}

// Active returns the id of the currently selected bank.
func (b *Bank) Active() int { return b.active }

// SwitchBank selects bank id as the target of subsequent reads and writes.
// Returns ErrBadBank for an id outside the file.
func (b *Bank) SwitchBank(id int) error {
	if id < 0 || id >= len(b.banks) {
		return fmt.Errorf("%w: bank %d of %d", ErrBadBank, id, len(b.banks))
	}
	b.active = id
	return nil
}

// Write stores v into register idx of the active bank.
// Returns ErrBadIndex for an out-of-range index and ErrValueRange when v
// does not fit the bank's register width.
func (b *Bank) Write(idx int, v uint64) error {
	if err := b.checkIndex(idx); err != nil {
		return err
	}
	if v > fieldMask(b.width) {
		return fmt.Errorf("%w: %#x in %d-bit register", ErrValueRange, v, b.width)
	}
	b.banks[b.active][idx] = v
	return nil
}

// Read returns the value of register idx in the active bank.
// Returns ErrBadIndex for an out-of-range index.
func (b *Bank) Read(idx int) (uint64, error) {
	if err := b.checkIndex(idx); err != nil {
		return 0, err
	}
	return b.banks[b.active][idx], nil
}

func (b *Bank) checkIndex(idx int) error {
	if idx < 0 || idx >= len(b.banks[b.active]) {
		return fmt.Errorf("%w: register %d of %d", ErrBadIndex, idx, len(b.banks[b.active]))
	}
	return nil
}
