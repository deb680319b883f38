package xorsum

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates an accumulation over an empty slice.
	ErrEmptyInput = errors.New("xorsum: input must be non-empty")
	// ErrBadSymbol indicates a parity input symbol outside {0,1}.
	ErrBadSymbol = errors.New("xorsum: symbols must be 0 or 1")
)

// Single returns the value that appears exactly once in nums, where every
// other value appears exactly twice. A single XOR pass: duplicate pairs
// cancel, the lone value survives.
func Single(nums []int) (int, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyInput
	}
	acc := 0
	for _, n := range nums {
		acc ^= n
	}
	return acc, nil
}

// SingleOfTriples returns the value that appears exactly once in nums, where
// every other value appears exactly three times. Two accumulators hold the
// bits seen once and twice; a bit reaching both is a third sighting and is
// cleared from each, so after the pass ones holds the lone value.
func SingleOfTriples(nums []int) (int, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyInput
	}
	ones, twos := 0, 0
	for _, n := range nums {
		twos |= ones & n
		ones ^= n
		common := ones & twos
		ones &^= common
		twos &^= common
	}
	return ones, nil
}

// SinglePair returns, in ascending order, the two values that each appear
// exactly once in nums, where every other value appears exactly twice.
// The XOR of everything equals a^b; its lowest set bit is a position where
// a and b differ, so partitioning on that bit puts a and b in different
// groups, each of which cancels down to its lone value.
func SinglePair(nums []int) (int, int, error) {
	if len(nums) < 2 {
		return 0, 0, fmt.Errorf("%w: need at least two values", ErrEmptyInput)
	}
	all := 0
	for _, n := range nums {
		all ^= n
	}
	lowBit := all & (-all)
	a, b := 0, 0
	for _, n := range nums {
		if n&lowBit != 0 {
			a ^= n
		} else {
			b ^= n
		}
	}
	if a > b {
		a, b = b, a
	}
	return a, b, nil
}

// Parity returns the even-parity bit of a 0/1 symbol slice: 1 when the
// number of set symbols is odd.
func Parity(symbols []uint8) (uint8, error) {
	var p uint8
	for _, s := range symbols {
		if s > 1 {
			return 0, fmt.Errorf("%w: got %d", ErrBadSymbol, s)
		}
		p ^= s
	}
	return p, nil
}

// DetectSingleBitError reports whether a parity-protected word (data symbols
// plus their even-parity bit) arrived with an odd number of flips. With even
// parity appended, a clean word XORs to zero.
func DetectSingleBitError(word []uint8) (bool, error) {
	p, err := Parity(word)
	if err != nil {
		return false, err
	}
	return p != 0, nil
}

// HammingSyndrome computes the Hamming(7,4) syndrome of a received 7-symbol
// codeword (positions 1..7 at indices 0..6, parity bits at positions 1, 2
// and 4). A zero syndrome means no detectable error; otherwise the syndrome
// is the 1-based position of the single flipped symbol.
func HammingSyndrome(code [7]uint8) (int, error) {
	for _, s := range code {
		if s > 1 {
			return 0, fmt.Errorf("%w: got %d", ErrBadSymbol, s)
		}
	}
	h1 := code[0] ^ code[2] ^ code[4] ^ code[6]
	h2 := code[1] ^ code[2] ^ code[5] ^ code[6]
	h4 := code[3] ^ code[4] ^ code[5] ^ code[6]
	return int(h4)<<2 | int(h2)<<1 | int(h1), nil
}
