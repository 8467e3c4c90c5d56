package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/engine"
	"github.com/vlaran/nonogram/status"
	"github.com/vlaran/nonogram/zobrist"
)

func clue(t *testing.T, runs []int, n int, zt *zobrist.Table) *board.LineClue {
	t.Helper()
	c, err := board.NewLineClue(runs, n, zt)
	require.NoError(t, err)
	return c
}

func TestSolveOneFullyForcedPuzzle(t *testing.T) {
	e := engine.New()
	zt := e.Zobrist()

	clues := []*board.LineClue{
		clue(t, []int{2}, 2, zt), clue(t, []int{2}, 2, zt),
		clue(t, []int{2}, 2, zt), clue(t, []int{2}, 2, zt),
	}

	res := e.SolveOne(2, clues)
	require.Equal(t, status.Solved, res.Status)
	require.True(t, res.Board.Solved())
}

func TestSolveUniqueDetectsManySolution(t *testing.T) {
	e := engine.New()
	zt := e.Zobrist()

	clues := []*board.LineClue{
		clue(t, []int{1}, 2, zt), clue(t, []int{1}, 2, zt),
		clue(t, []int{1}, 2, zt), clue(t, []int{1}, 2, zt),
	}

	res := e.SolveUnique(2, clues)
	require.Equal(t, status.ManySolution, res.Status)
	require.NotNil(t, res.Other)
}

func TestNewResumableRunsToSolved(t *testing.T) {
	e := engine.New()
	zt := e.Zobrist()

	clues := []*board.LineClue{
		clue(t, []int{2}, 2, zt), clue(t, []int{2}, 2, zt),
		clue(t, []int{2}, 2, zt), clue(t, []int{2}, 2, zt),
	}

	r, err := e.NewResumable(2, clues, 1000)
	require.NoError(t, err)
	require.Equal(t, status.Solved, r.Run())
}
