package bitfield

import "errors"

var (
	// ErrFieldRange indicates a field that extends beyond the 64-bit word.
	ErrFieldRange = errors.New("bitfield: field extends beyond word width")
	// ErrFieldValue indicates a value too large for the requested field width.
	ErrFieldValue = errors.New("bitfield: value does not fit field width")
	// ErrBadRotation indicates a rotation width of zero or above 64 bits.
	ErrBadRotation = errors.New("bitfield: rotation width must be in [1,64]")
	// ErrBadAlignment indicates an alignment that is not a positive power of two.
	ErrBadAlignment = errors.New("bitfield: alignment must be a positive power of two")
	// ErrNoDifference indicates stuck-bit diagnosis on two identical words.
	ErrNoDifference = errors.New("bitfield: values are identical")
	// ErrMultiBit indicates more than one differing bit between two words.
	ErrMultiBit = errors.New("bitfield: values differ in more than one bit")
)
