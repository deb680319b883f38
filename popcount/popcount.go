package popcount

// Naive counts set bits by testing every position of the word.
func Naive(v uint64) int {
	count := 0
	for pos := uint(0); pos < 64; pos++ {
		if v&(1<<pos) != 0 {
			count++
		}
	}
	return count
}

// Shift counts set bits by repeatedly adding the LSB and shifting right.
// Terminates as soon as the remaining bits are zero.
func Shift(v uint64) int {
	count := 0
	for v != 0 {
		count += int(v & 1)
		v >>= 1
	}
	return count
}

// Kernighan counts set bits with v &= v-1, which clears exactly the lowest
// set bit per iteration. Runs once per set bit, not per word bit.
func Kernighan(v uint64) int {
	count := 0
	for v != 0 {
		v &= v - 1
		count++
	}
	return count
}

// SWAR masks for the parallel reduction.
const (
	mask1 = 0x5555555555555555 // pairs
	mask2 = 0x3333333333333333 // nibbles
	mask4 = 0x0F0F0F0F0F0F0F0F // bytes
	ones  = 0x0101010101010101 // byte-sum multiplier
)

// Parallel counts set bits branch-free: adjacent pairs are summed in place,
// then nibbles, then bytes, and a final multiply accumulates all byte counts
// into the top byte.
func Parallel(v uint64) int {
	v -= (v >> 1) & mask1
	v = (v & mask2) + ((v >> 2) & mask2)
	v = (v + (v >> 4)) & mask4
	return int((v * ones) >> 56)
}

// Table is a precomputed per-byte popcount lookup table.
type Table [256]uint8

// NewTable builds the 256-entry table from the recurrence
// table[i] = table[i>>1] + (i & 1).
func NewTable() *Table {
	var t Table
	for i := 1; i < len(t); i++ {
		t[i] = t[i>>1] + uint8(i&1)
	}
	return &t
}

// Count sums the table entries of the eight bytes of v.
func (t *Table) Count(v uint64) int {
	count := 0
	for v != 0 {
		count += int(t[v&0xFF])
		v >>= 8
	}
	return count
}
