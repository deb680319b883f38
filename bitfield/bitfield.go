package bitfield

import (
	"fmt"
	"math/bits"
)

// wordWidth is the width of the raw values this package operates on.
const wordWidth = 64

// IsPowerOfTwo reports whether v is a positive power of two.
// The classic identity: a power of two has exactly one set bit,
// so v&(v-1) clears it and must yield zero.
func IsPowerOfTwo(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}

// SetBit returns v with the bit at pos set.
func SetBit(v uint64, pos uint) uint64 { return v | (1 << pos) }

// ClearBit returns v with the bit at pos cleared.
func ClearBit(v uint64, pos uint) uint64 { return v &^ (1 << pos) }

// ToggleBit returns v with the bit at pos flipped.
func ToggleBit(v uint64, pos uint) uint64 { return v ^ (1 << pos) }

// TestBit reports whether the bit at pos is set in v.
func TestBit(v uint64, pos uint) bool { return (v>>pos)&1 != 0 }

// ExtractField returns the width-bit field of v starting at bit start.
// Returns ErrFieldRange when the field does not fit in a 64-bit word.
func ExtractField(v uint64, start, width uint) (uint64, error) {
	if width == 0 || start+width > wordWidth {
		return 0, fmt.Errorf("%w: start=%d width=%d", ErrFieldRange, start, width)
	}
	mask := fieldMask(width)
	return (v >> start) & mask, nil
}

// InsertField returns v with the width-bit field at start replaced by field.
// Returns ErrFieldRange for an oversized field position and ErrFieldValue
// when field has bits above the field width.
func InsertField(v uint64, start, width uint, field uint64) (uint64, error) {
	if width == 0 || start+width > wordWidth {
		return 0, fmt.Errorf("%w: start=%d width=%d", ErrFieldRange, start, width)
	}
	mask := fieldMask(width)
	if field > mask {
		return 0, fmt.Errorf("%w: value %#x exceeds %d bits", ErrFieldValue, field, width)
	}
	return (v &^ (mask << start)) | (field << start), nil
}

// ReplaceBits returns v with bits [start,end] (inclusive) replaced by repl.
// repl is interpreted as an (end-start+1)-bit value.
func ReplaceBits(v, repl uint64, start, end uint) (uint64, error) {
	if end < start || end >= wordWidth {
		return 0, fmt.Errorf("%w: start=%d end=%d", ErrFieldRange, start, end)
	}
	return InsertField(v, start, end-start+1, repl)
}

// ReverseBits32 returns v with its 32 bits in reverse order.
// Built bit by bit: peel the LSB off v, push it onto the result.
// ReverseBits32(13) == 2952790016.
func ReverseBits32(v uint32) uint32 {
	var out uint32
	for i := 0; i < 32; i++ {
		out = (out << 1) | (v & 1)
		v >>= 1
	}
	return out
}

// RotateLeft rotates the low width bits of v left by count positions.
// Bits above width must be zero in v and remain zero in the result.
func RotateLeft(v uint64, width, count uint) (uint64, error) {
	if width == 0 || width > wordWidth {
		return 0, fmt.Errorf("%w: width=%d", ErrBadRotation, width)
	}
	count %= width
	if count == 0 {
		return v & fieldMask(width), nil
	}
	mask := fieldMask(width)
	v &= mask
	return ((v << count) | (v >> (width - count))) & mask, nil
}

// RotateRight rotates the low width bits of v right by count positions.
func RotateRight(v uint64, width, count uint) (uint64, error) {
	if width == 0 || width > wordWidth {
		return 0, fmt.Errorf("%w: width=%d", ErrBadRotation, width)
	}
	count %= width
	return RotateLeft(v, width, width-count)
}

// IsAligned reports whether addr sits on an align-byte boundary.
// align must be a positive power of two; the check is then a single mask,
// since align-1 covers exactly the offset bits.
func IsAligned(addr, align uint64) (bool, error) {
	if !IsPowerOfTwo(align) {
		return false, fmt.Errorf("%w: %d", ErrBadAlignment, align)
	}
	return addr&(align-1) == 0, nil
}

// Cache-line size bounds accepted by ValidCacheLineSize.
const (
	minCacheLine = 16
	maxCacheLine = 512
)

// ValidCacheLineSize reports whether size is a plausible cache-line size:
// a power of two between 16 and 512 bytes.
func ValidCacheLineSize(size uint64) bool {
	return IsPowerOfTwo(size) && size >= minCacheLine && size <= maxCacheLine
}

// ValidRegisterWidth reports whether width is a register width found in
// production silicon: a power of two from 8 to 512 bits.
func ValidRegisterWidth(width uint) bool {
	switch width {
	case 8, 16, 32, 64, 128, 256, 512:
		return true
	}
	return false
}

// StuckBit locates the single bit that differs between a known-good word and
// a faulty readback. Returns ErrNoDifference when the words match and
// ErrMultiBit when more than one bit differs (not a single stuck-at fault).
func StuckBit(good, faulty uint64) (int, error) {
	diff := good ^ faulty
	if diff == 0 {
		return 0, ErrNoDifference
	}
	if diff&(diff-1) != 0 {
		return 0, fmt.Errorf("%w: %d bits differ", ErrMultiBit, bits.OnesCount64(diff))
	}
	return bits.TrailingZeros64(diff), nil
}

// PriorityConflicts scans the priority assignment of the interrupts enabled
// in mask (bit i of mask enables interrupt i) and returns every priority
// level claimed by more than one enabled interrupt, in scan order.
// Priorities above 63 are ignored; a seen-bitmap keeps the scan O(n).
func PriorityConflicts(mask uint64, priorities []uint) []uint {
	var seen uint64
	var conflicts []uint
	for i, p := range priorities {
		if i >= wordWidth || !TestBit(mask, uint(i)) || p >= wordWidth {
			continue
		}
		if TestBit(seen, p) {
			conflicts = append(conflicts, p)
			continue
		}
		seen = SetBit(seen, p)
	}
	return conflicts
}

// ShiftAddMultiply computes a*b by shift-and-add, the way a sequential
// multiplier unit does: for each set bit of b, add a shifted copy of a.
func ShiftAddMultiply(a, b uint64) uint64 {
	var product uint64
	for b != 0 {
		if b&1 != 0 {
			product += a
		}
		a <<= 1
		b >>= 1
	}
	return product
}

// fieldMask returns a mask with the low width bits set.
func fieldMask(width uint) uint64 {
	if width >= wordWidth {
		return ^uint64(0)
	}
	return (1 << width) - 1
}
