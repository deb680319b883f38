package register_test

import (
	"testing"

	"github.com/sivalab/sival/register"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankContextSwitch(t *testing.T) {
	b, err := register.NewBank(4, 16, 32)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Active())

	require.NoError(t, b.Write(0, 0xDEADBEEF))
	require.NoError(t, b.SwitchBank(1))
	require.NoError(t, b.Write(0, 0xCAFEBABE))

	// Register 0 in bank 1 is independent of register 0 in bank 0.
	v, err := b.Read(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xCAFEBABE), v)

	require.NoError(t, b.SwitchBank(0))
	v, err = b.Read(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xDEADBEEF), v)
}

func TestBankErrors(t *testing.T) {
	_, err := register.NewBank(0, 16, 32)
	assert.ErrorIs(t, err, register.ErrBadBank)
	_, err = register.NewBank(4, 0, 32)
	assert.ErrorIs(t, err, register.ErrBadIndex)
	_, err = register.NewBank(4, 16, 65)
	assert.ErrorIs(t, err, register.ErrBadWidth)

	b, err := register.NewBank(2, 8, 16)
	require.NoError(t, err)

	assert.ErrorIs(t, b.SwitchBank(2), register.ErrBadBank)
	assert.ErrorIs(t, b.SwitchBank(-1), register.ErrBadBank)
	assert.ErrorIs(t, b.Write(8, 1), register.ErrBadIndex)
	_, err = b.Read(-1)
	assert.ErrorIs(t, err, register.ErrBadIndex)
	assert.ErrorIs(t, b.Write(0, 0x1_0000), register.ErrValueRange)
}

func TestShadowCommit(t *testing.T) {
	r, err := register.New("TIMER_PERIOD", 32)
	require.NoError(t, err)
	require.NoError(t, r.Load(0x1000))

	s := register.NewShadow(r)
	assert.False(t, s.Pending())

	require.NoError(t, s.Stage(0x2000))
	assert.True(t, s.Pending())
	assert.Equal(t, uint64(0x1000), s.Value(), "staging leaves the live value alone")

	require.NoError(t, s.Commit())
	assert.False(t, s.Pending())
	assert.Equal(t, uint64(0x2000), r.Value())

	// The commit shows up in the register's history as one atomic step.
	h := r.History()
	require.NotEmpty(t, h)
	assert.Equal(t, register.Event{Op: register.OpCommit, Pos: -1, Old: 0x1000, New: 0x2000}, h[len(h)-1])

	assert.ErrorIs(t, s.Commit(), register.ErrNotPending)
}

func TestShadowDiscard(t *testing.T) {
	r, err := register.New("PWM_DUTY", 16)
	require.NoError(t, err)

	s := register.NewShadow(r)
	require.NoError(t, s.Stage(0x00FF))
	s.Discard()
	assert.False(t, s.Pending())
	assert.Zero(t, r.Value())
	assert.ErrorIs(t, s.Commit(), register.ErrNotPending)

	assert.ErrorIs(t, s.Stage(0x1_0000), register.ErrValueRange)
}
