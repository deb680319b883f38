package register

import "fmt"

// ExtractField returns the width-bit field starting at bit start.
// Returns ErrFieldRange when the field extends beyond the register width.
//
// Complexity: O(1)
func (r *Register) ExtractField(start, width uint) (uint64, error) {
	if err := r.checkField(start, width); err != nil {
		return 0, err
	}
	return (r.value >> start) & fieldMask(width), nil
}

// InsertField replaces the width-bit field starting at bit start with value.
// Returns ErrFieldRange when the field extends beyond the register width and
// ErrFieldValue when value does not fit the field.
//
// Complexity: O(1)
func (r *Register) InsertField(start, width uint, value uint64) error {
	if err := r.checkField(start, width); err != nil {
		return err
	}
	if value > fieldMask(width) {
		return fmt.Errorf("%w: %#x in %d-bit field", ErrFieldValue, value, width)
	}
	old := r.value
	r.value = (r.value &^ (fieldMask(width) << start)) | value<<start
	r.record(OpInsert, int(start), old, r.value)
	return nil
}

// RotateLeft rotates the register's bits left by n positions, confined to
// the register width. n is reduced modulo the width.
//
// Complexity: O(1)
func (r *Register) RotateLeft(n uint) {
	n %= r.width
	old := r.value
	if n != 0 {
		r.value = (r.value<<n | r.value>>(r.width-n)) & r.mask()
	}
	r.record(OpRotate, -1, old, r.value)
}

// RotateRight rotates the register's bits right by n positions, confined to
// the register width. n is reduced modulo the width.
//
// Complexity: O(1)
func (r *Register) RotateRight(n uint) {
	n %= r.width
	old := r.value
	if n != 0 {
		r.value = (r.value>>n | r.value<<(r.width-n)) & r.mask()
	}
	r.record(OpRotate, -1, old, r.value)
}

func (r *Register) checkField(start, width uint) error {
	if width == 0 || start+width > r.width {
		return fmt.Errorf("%w: [%d,%d) in %d-bit %s",
			ErrFieldRange, start, start+width, r.width, r.name)
	}
	return nil
}

func fieldMask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (1 << width) - 1
}
