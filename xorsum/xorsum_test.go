package xorsum_test

import (
	"testing"

	"github.com/sivalab/sival/xorsum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSingle covers the lone-value search and the empty-input error.
func TestSingle(t *testing.T) {
	got, err := xorsum.Single([]int{4, 1, 2, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = xorsum.Single([]int{7})
	require.NoError(t, err)
	assert.Equal(t, 7, got, "a lone element is its own answer")

	_, err = xorsum.Single(nil)
	assert.ErrorIs(t, err, xorsum.ErrEmptyInput)
}

// TestSingleOfTriples verifies the ones/twos bit-state tracking.
func TestSingleOfTriples(t *testing.T) {
	got, err := xorsum.SingleOfTriples([]int{2, 2, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = xorsum.SingleOfTriples([]int{0, 1, 0, 1, 0, 1, 99})
	require.NoError(t, err)
	assert.Equal(t, 99, got)

	_, err = xorsum.SingleOfTriples([]int{})
	assert.ErrorIs(t, err, xorsum.ErrEmptyInput)
}

// TestSinglePair verifies both lone values are recovered in ascending order.
func TestSinglePair(t *testing.T) {
	a, b, err := xorsum.SinglePair([]int{1, 2, 1, 3, 2, 5})
	require.NoError(t, err)
	assert.Equal(t, 3, a)
	assert.Equal(t, 5, b)

	a, b, err = xorsum.SinglePair([]int{9, 4})
	require.NoError(t, err)
	assert.Equal(t, 4, a)
	assert.Equal(t, 9, b)

	_, _, err = xorsum.SinglePair([]int{1})
	assert.ErrorIs(t, err, xorsum.ErrEmptyInput)
}

// TestParity checks even-parity generation and symbol validation.
func TestParity(t *testing.T) {
	// 7-bit ASCII 'A' has two set bits: even parity 0.
	p, err := xorsum.Parity([]uint8{1, 0, 0, 0, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, uint8(0), p)

	p, err = xorsum.Parity([]uint8{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, uint8(1), p)

	p, err = xorsum.Parity(nil)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), p, "empty word has even parity")

	_, err = xorsum.Parity([]uint8{0, 2})
	assert.ErrorIs(t, err, xorsum.ErrBadSymbol)
}

// TestDetectSingleBitError flips one symbol of a parity-protected word.
func TestDetectSingleBitError(t *testing.T) {
	clean := []uint8{1, 0, 0, 0, 0, 0, 1, 0} // 'A' + even parity
	bad, err := xorsum.DetectSingleBitError(clean)
	require.NoError(t, err)
	assert.False(t, bad)

	corrupted := []uint8{1, 0, 0, 0, 1, 0, 1, 0} // bit 4 flipped
	bad, err = xorsum.DetectSingleBitError(corrupted)
	require.NoError(t, err)
	assert.True(t, bad)
}

// TestHammingSyndrome checks a clean codeword, every single-flip position,
// and symbol validation.
func TestHammingSyndrome(t *testing.T) {
	// Data 1011 encoded as Hamming(7,4): p1 p2 d1 p4 d2 d3 d4 = 0 1 1 0 0 1 1.
	clean := [7]uint8{0, 1, 1, 0, 0, 1, 1}
	s, err := xorsum.HammingSyndrome(clean)
	require.NoError(t, err)
	assert.Equal(t, 0, s, "clean codeword")

	for pos := 0; pos < 7; pos++ {
		flipped := clean
		flipped[pos] ^= 1
		s, err = xorsum.HammingSyndrome(flipped)
		require.NoError(t, err)
		assert.Equal(t, pos+1, s, "flip at position %d", pos+1)
	}

	_, err = xorsum.HammingSyndrome([7]uint8{0, 0, 0, 0, 0, 0, 3})
	assert.ErrorIs(t, err, xorsum.ErrBadSymbol)
}
