package fpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Package-level variables keep the divisions below out of reach of
// compile-time constant folding: the quotients must be computed by the
// hardware at run time, under whatever mode is then active.
var (
	numOne   = 1.0
	numThree = 3.0
)

func TestScopedRoundingBrackets(t *testing.T) {
	c := Default()
	if !c.Available() {
		t.Skip("rounding control unavailable on this host")
	}

	nearest := numOne / numThree
	up, err := RoundingUp(c, func() float64 { return numOne / numThree })
	require.NoError(t, err)
	down, err := RoundingDown(c, func() float64 { return numOne / numThree })
	require.NoError(t, err)

	require.GreaterOrEqual(t, up, nearest)
	require.LessOrEqual(t, down, nearest)
	// 1/3 is inexact in binary, so the directed results differ.
	require.Greater(t, up, down)
}

func TestScopedRoundingRestores(t *testing.T) {
	c := Default()
	if !c.Available() {
		t.Skip("rounding control unavailable on this host")
	}

	before, err := c.backend.Rounding()
	require.NoError(t, err)

	_, err = RoundingUp(c, func() float64 { return numOne / numThree })
	require.NoError(t, err)
	after, err := c.backend.Rounding()
	require.NoError(t, err)
	require.Equal(t, before, after)

	require.PanicsWithValue(t, "boom", func() {
		RoundingDown(c, func() float64 { panic("boom") })
	})
	after, err = c.backend.Rounding()
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestDefaultConveniences(t *testing.T) {
	if !Available() {
		t.Skip("rounding control unavailable on this host")
	}

	up, err := Up(func() float64 { return numOne / numThree })
	require.NoError(t, err)
	down, err := Down(func() float64 { return numOne / numThree })
	require.NoError(t, err)
	require.Greater(t, up, down)
}

func TestWithRoundingModeNested(t *testing.T) {
	b := &fakeBackend{mode: 7}
	c := NewControl(b, 0x200, 0x100)

	v, err := RoundingUp(c, func() uint32 {
		inner, err := RoundingDown(c, func() uint32 { return b.mode })
		require.NoError(t, err)
		return inner
	})
	require.NoError(t, err)
	// The inner scope saw the downward code, and both scopes unwound.
	require.Equal(t, uint32(0x100), v)
	require.Equal(t, uint32(7), b.mode)
	require.Equal(t, []uint32{0x200, 0x100, 0x200, 7}, b.writes)
}
