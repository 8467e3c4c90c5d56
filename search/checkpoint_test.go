package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/search"
)

func TestCheckpointStoreRoundTrip(t *testing.T) {
	store, err := search.OpenCheckpointStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	var state search.CheckpointState
	state.Depth = 3
	state.NodeCount = 42
	state.Board = board.Board{N: 5, Determined: 7}
	state.Stack[0] = search.Frame{Step: 1}
	state.Stack[1] = search.Frame{Step: 2}

	require.NoError(t, store.Save("puzzle-1", state))

	loaded, found, err := store.Load("puzzle-1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, state, loaded)
}

func TestCheckpointStoreMissingKey(t *testing.T) {
	store, err := search.OpenCheckpointStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, found, err := store.Load("does-not-exist")
	require.NoError(t, err)
	require.False(t, found)
}

func TestCheckpointStoreDelete(t *testing.T) {
	store, err := search.OpenCheckpointStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save("puzzle-2", search.CheckpointState{Depth: 1}))
	require.NoError(t, store.Delete("puzzle-2"))

	_, found, err := store.Load("puzzle-2")
	require.NoError(t, err)
	require.False(t, found)
}
