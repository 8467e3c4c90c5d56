package zobrist_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vlaran/nonogram/zobrist"
)

func TestBuildDeterministic(t *testing.T) {
	a := zobrist.Build("seed-a")
	b := zobrist.Build("seed-a")
	require.Equal(t, a.At(0, 3), b.At(0, 3))
	require.Equal(t, a.At(5, 10), b.At(5, 10))
}

func TestBuildDiffersBySeed(t *testing.T) {
	a := zobrist.Build("seed-a")
	b := zobrist.Build("seed-b")
	require.NotEqual(t, a.At(0, 3), b.At(0, 3))
}

func TestAtOutOfBoundsPanics(t *testing.T) {
	require.Panics(t, func() { zobrist.Default.At(-1, 0) })
	require.Panics(t, func() { zobrist.Default.At(0, zobrist.MaxRunLength+1) })
}
