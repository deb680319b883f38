package register

import (
	"fmt"
	"math/bits"
	"strings"
)

// Value returns the register's current value.
func (r *Register) Value() uint64 { return r.value }

// Load sets the whole register to v.
// Returns ErrValueRange when v does not fit the register width.
//
// Complexity: O(1)
func (r *Register) Load(v uint64) error {
	if v > r.mask() {
		return fmt.Errorf("%w: %#x in %d-bit %s", ErrValueRange, v, r.width, r.name)
	}
	old := r.value
	r.value = v
	r.record(OpLoad, -1, old, r.value)
	return nil
}

// Reset clears the register to its power-on value of zero.
func (r *Register) Reset() {
	old := r.value
	r.value = 0
	r.record(OpReset, -1, old, 0)
}

// PopCount returns the number of set bits.
//
// Complexity: O(1)
func (r *Register) PopCount() int { return bits.OnesCount64(r.value) }

// FirstSet returns the position of the least significant set bit, the
// hardware FFS result, or -1 when the register is zero.
//
// Complexity: O(1)
func (r *Register) FirstSet() int {
	if r.value == 0 {
		return -1
	}
	return bits.TrailingZeros64(r.value)
}

// LastSet returns the position of the most significant set bit, or -1 when
// the register is zero.
//
// Complexity: O(1)
func (r *Register) LastSet() int {
	if r.value == 0 {
		return -1
	}
	return 63 - bits.LeadingZeros64(r.value)
}

// BinaryString renders the value zero-padded to the register width. When
// group > 1 the bits are split into space-separated groups of that size,
// counted from the most significant end.
//
// Complexity: O(width)
func (r *Register) BinaryString(group int) string {
	s := fmt.Sprintf("%0*b", r.width, r.value)
	if group <= 1 || group >= len(s) {
		return s
	}
	groups := make([]string, 0, (len(s)+group-1)/group)
	for i := 0; i < len(s); i += group {
		end := i + group
		if end > len(s) {
			end = len(s)
		}
		groups = append(groups, s[i:end])
	}
	return strings.Join(groups, " ")
}
