package register_test

import (
	"testing"

	"github.com/sivalab/sival/register"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r, err := register.New("CTRL", 32)
	require.NoError(t, err)
	assert.Equal(t, "CTRL", r.Name())
	assert.Equal(t, uint(32), r.Width())
	assert.Zero(t, r.Value())

	for _, w := range []uint{0, 65, 100} {
		_, err := register.New("BAD", w)
		assert.ErrorIs(t, err, register.ErrBadWidth, "width %d", w)
	}

	// Full 64-bit width must work without mask overflow.
	r64, err := register.New("WIDE", 64)
	require.NoError(t, err)
	require.NoError(t, r64.Load(^uint64(0)))
	assert.Equal(t, ^uint64(0), r64.Value())
}

func TestBitOperations(t *testing.T) {
	r, err := register.New("STATUS", 8)
	require.NoError(t, err)

	require.NoError(t, r.SetBit(0))
	require.NoError(t, r.SetBit(3))
	assert.Equal(t, uint64(0b1001), r.Value())

	require.NoError(t, r.ClearBit(0))
	assert.Equal(t, uint64(0b1000), r.Value())

	require.NoError(t, r.ToggleBit(7))
	require.NoError(t, r.ToggleBit(3))
	assert.Equal(t, uint64(0b1000_0000), r.Value())

	set, err := r.TestBit(7)
	require.NoError(t, err)
	assert.True(t, set)
	set, err = r.TestBit(3)
	require.NoError(t, err)
	assert.False(t, set)

	// Position 8 is the first invalid one on an 8-bit register.
	assert.ErrorIs(t, r.SetBit(8), register.ErrBitRange)
	assert.ErrorIs(t, r.ClearBit(8), register.ErrBitRange)
	assert.ErrorIs(t, r.ToggleBit(8), register.ErrBitRange)
	_, err = r.TestBit(8)
	assert.ErrorIs(t, err, register.ErrBitRange)
}

func TestFields(t *testing.T) {
	r, err := register.New("UART_CTRL", 16)
	require.NoError(t, err)

	// [15:4] baud divisor, [3:2] parity, [1] stop, [0] enable.
	require.NoError(t, r.InsertField(4, 12, 0x0C0))
	require.NoError(t, r.InsertField(2, 2, 0b10))
	require.NoError(t, r.SetBit(0))

	baud, err := r.ExtractField(4, 12)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0C0), baud)
	parity, err := r.ExtractField(2, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b10), parity)

	// Re-inserting a field leaves its neighbors alone.
	require.NoError(t, r.InsertField(2, 2, 0b01))
	baud, err = r.ExtractField(4, 12)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0C0), baud)
	enable, err := r.TestBit(0)
	require.NoError(t, err)
	assert.True(t, enable)

	err = r.InsertField(8, 12, 0)
	assert.ErrorIs(t, err, register.ErrFieldRange)
	_, err = r.ExtractField(0, 17)
	assert.ErrorIs(t, err, register.ErrFieldRange)
	err = r.InsertField(0, 4, 16)
	assert.ErrorIs(t, err, register.ErrFieldValue)
}

func TestRotate(t *testing.T) {
	r, err := register.New("SHIFT", 8)
	require.NoError(t, err)
	require.NoError(t, r.Load(0b1000_0001))

	r.RotateLeft(1)
	assert.Equal(t, uint64(0b0000_0011), r.Value())
	r.RotateRight(1)
	assert.Equal(t, uint64(0b1000_0001), r.Value())

	// Rotation counts wrap at the width.
	r.RotateLeft(8)
	assert.Equal(t, uint64(0b1000_0001), r.Value())
	r.RotateRight(9)
	assert.Equal(t, uint64(0b1100_0000), r.Value())
}

func TestLoadValueReset(t *testing.T) {
	r, err := register.New("DATA", 12)
	require.NoError(t, err)

	require.NoError(t, r.Load(0xFFF))
	assert.Equal(t, uint64(0xFFF), r.Value())
	assert.ErrorIs(t, r.Load(0x1000), register.ErrValueRange)
	assert.Equal(t, uint64(0xFFF), r.Value(), "failed load leaves the value alone")

	r.Reset()
	assert.Zero(t, r.Value())
}

func TestScanHelpers(t *testing.T) {
	r, err := register.New("SCAN", 32)
	require.NoError(t, err)

	assert.Zero(t, r.PopCount())
	assert.Equal(t, -1, r.FirstSet())
	assert.Equal(t, -1, r.LastSet())

	require.NoError(t, r.Load(0x0001_0810))
	assert.Equal(t, 3, r.PopCount())
	assert.Equal(t, 4, r.FirstSet())
	assert.Equal(t, 16, r.LastSet())
}

func TestBinaryString(t *testing.T) {
	r, err := register.New("FMT", 8)
	require.NoError(t, err)
	require.NoError(t, r.Load(0xA5))

	assert.Equal(t, "10100101", r.BinaryString(0))
	assert.Equal(t, "10100101", r.BinaryString(1))
	assert.Equal(t, "1010 0101", r.BinaryString(4))
	assert.Equal(t, "101 001 01", r.BinaryString(3))

	wide, err := register.New("FMT12", 12)
	require.NoError(t, err)
	require.NoError(t, wide.Load(0x05))
	assert.Equal(t, "0000 0000 0101", wide.BinaryString(4))
}

func TestHistory(t *testing.T) {
	r, err := register.New("HIST", 8)
	require.NoError(t, err)

	require.NoError(t, r.SetBit(1))
	require.NoError(t, r.ToggleBit(1))
	require.NoError(t, r.Load(0x7F))
	r.Reset()

	h := r.History()
	require.Len(t, h, 4)
	assert.Equal(t, register.Event{Op: register.OpSet, Pos: 1, Old: 0, New: 2}, h[0])
	assert.Equal(t, register.Event{Op: register.OpToggle, Pos: 1, Old: 2, New: 0}, h[1])
	assert.Equal(t, register.Event{Op: register.OpLoad, Pos: -1, Old: 0, New: 0x7F}, h[2])
	assert.Equal(t, register.Event{Op: register.OpReset, Pos: -1, Old: 0x7F, New: 0}, h[3])

	// History returns a copy; mutating it must not corrupt the register.
	h[0].New = 99
	assert.Equal(t, uint64(2), r.History()[0].New)

	r.ClearHistory()
	assert.Empty(t, r.History())
}

func TestWatchpoints(t *testing.T) {
	r, err := register.New("IRQ", 8)
	require.NoError(t, err)

	type hit struct {
		pos uint
		now bool
	}
	var hits []hit
	r.SetWatchFunc(func(name string, pos uint, old, now bool) {
		assert.Equal(t, "IRQ", name)
		hits = append(hits, hit{pos, now})
	})
	require.NoError(t, r.Watch(3))

	require.NoError(t, r.SetBit(3))   // fires: 0 -> 1
	require.NoError(t, r.SetBit(3))   // no change, no hit
	require.NoError(t, r.SetBit(5))   // unwatched
	require.NoError(t, r.ClearBit(3)) // fires: 1 -> 0
	assert.Equal(t, []hit{{3, true}, {3, false}}, hits)

	// A whole-register load fires for each watched bit that flips.
	hits = nil
	require.NoError(t, r.Watch(0))
	require.NoError(t, r.Load(0b0000_1001))
	assert.ElementsMatch(t, []hit{{0, true}, {3, true}}, hits)

	r.Unwatch(3)
	hits = nil
	require.NoError(t, r.ToggleBit(3))
	assert.Empty(t, hits)

	assert.ErrorIs(t, r.Watch(8), register.ErrBitRange)
}
