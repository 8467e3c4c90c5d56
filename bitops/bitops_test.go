package bitops_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vlaran/nonogram/bitops"
)

func TestMask(t *testing.T) {
	require.Equal(t, bitops.LineWord(0b11), bitops.Mask(1))
	require.Equal(t, bitops.LineWord(0b1111), bitops.Mask(2))
	require.Equal(t, bitops.LineWord(1125899906842623), bitops.Mask(25))
}

func TestShiftRightLeftRoundTrip(t *testing.T) {
	n := 5
	a := bitops.LineWord(0b11_01_10_11_01) // 5 cells
	shifted := bitops.ShiftRight(a, 2, n)
	back := bitops.ShiftLeft(shifted, 2, n)
	// the low 2 cells are lost, everything above remains shifted back into place
	require.Equal(t, a&^bitops.Mask(2), back)
}

func TestShiftLeftNegativeDelegatesToRight(t *testing.T) {
	n := 4
	a := bitops.LineWord(0b11_10_01_11)
	require.Equal(t, bitops.ShiftRight(a, 1, n), bitops.ShiftLeft(a, -1, n))
}

func TestPopcountMasked(t *testing.T) {
	n := 3
	a := bitops.LineWord(0b11_11_11) // all unknown: 6 bits set
	require.Equal(t, 6, bitops.PopcountMasked(a, n))

	// garbage above the mask must not be counted
	garbage := a | (bitops.LineWord(0b11) << 6)
	require.Equal(t, 6, bitops.PopcountMasked(garbage, n))
}
