package fpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestControlfpMaskedWrites(t *testing.T) {
	// Simulate the VC runtime's control word: the bits outside the
	// rounding mask hold precision and exception-mask settings.
	word := uint32(0x0009001F)
	b := controlfpBackend{call: func(value, mask uint32) uint32 {
		word = (word &^ mask) | (value & mask)
		return word
	}}

	require.NoError(t, b.SetRounding(msvcUpward))
	require.Equal(t, uint32(0x0009021F), word)
	m, err := b.Rounding()
	require.NoError(t, err)
	require.Equal(t, uint32(msvcUpward), m)

	require.NoError(t, b.SetRounding(msvcDownward))
	require.Equal(t, uint32(0x0009011F), word)

	// A mode value carrying stray bits cannot leak outside the mask.
	require.NoError(t, b.SetRounding(0xFFFFFFFF))
	require.Equal(t, uint32(0x0009031F), word)

	// Reads never write: the word is queried with an empty mask.
	before := word
	_, err = b.Rounding()
	require.NoError(t, err)
	require.Equal(t, before, word)
}

func TestControlfpScoped(t *testing.T) {
	word := uint32(0x0009001F)
	b := controlfpBackend{call: func(value, mask uint32) uint32 {
		word = (word &^ mask) | (value & mask)
		return word
	}}
	c := NewControl(b, msvcUpward, msvcDownward)

	v, err := RoundingUp(c, func() uint32 { return word })
	require.NoError(t, err)
	require.Equal(t, uint32(0x0009021F), v)
	// The scope restored the rounding bits and never touched the rest.
	require.Equal(t, uint32(0x0009001F), word)
}
