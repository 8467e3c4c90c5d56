package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/linecache"
	"github.com/vlaran/nonogram/linesolver"
	"github.com/vlaran/nonogram/search"
	"github.com/vlaran/nonogram/status"
	"github.com/vlaran/nonogram/zobrist"
)

func newLine(t *testing.T, runs []int, n int) *board.LineClue {
	t.Helper()
	c, err := board.NewLineClue(runs, n, zobrist.Default)
	require.NoError(t, err)
	return c
}

func TestSearchOneSolutionFullyForced(t *testing.T) {
	const n = 5
	clues := make([]*board.LineClue, 2*n)
	for i := range clues {
		clues[i] = newLine(t, []int{n}, n)
	}

	driver := linesolver.NewDriver()
	cache := linecache.NewDefault()
	st, b, _ := search.SearchOneSolution(n, clues, driver, cache)

	require.Equal(t, status.Solved, st)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.Equal(t, board.Black, b.Get(i, j))
		}
	}
}

func TestSearchOneSolutionAmbiguousStillFindsOne(t *testing.T) {
	const n = 2
	clues := []*board.LineClue{
		newLine(t, []int{1}, n),
		newLine(t, []int{1}, n),
		newLine(t, []int{1}, n),
		newLine(t, []int{1}, n),
	}

	driver := linesolver.NewDriver()
	cache := linecache.NewDefault()
	st, b, _ := search.SearchOneSolution(n, clues, driver, cache)

	require.Equal(t, status.Solved, st)
	require.True(t, b.Solved())
}

func TestSearchTwoSolutionsDetectsManySolution(t *testing.T) {
	// N=2, col [1],[1], row [1],[1]: the two diagonals are both valid.
	const n = 2
	clues := []*board.LineClue{
		newLine(t, []int{1}, n),
		newLine(t, []int{1}, n),
		newLine(t, []int{1}, n),
		newLine(t, []int{1}, n),
	}

	driver := linesolver.NewDriver()
	cache := linecache.NewDefault()
	st, _, other, _ := search.SearchTwoSolutions(n, clues, driver, cache)

	require.Equal(t, status.ManySolution, st)
	require.NotNil(t, other)
}

func TestSearchTwoSolutionsManySolutionCommitsTerminalBoard(t *testing.T) {
	// N=4 permutation-matrix puzzle: 24 solutions, underdetermined enough
	// to force real branching before a second, distinct solution surfaces
	// through the mixed SOLVED/UNSOLVED leg of verify's decision table.
	// Regression for a bug where that leg returned MANY_SOLUTION without
	// ever committing *b to a terminal board, leaving it at the pre-trial
	// snapshot.
	const n = 4
	clues := make([]*board.LineClue, 2*n)
	for i := range clues {
		clues[i] = newLine(t, []int{1}, n)
	}

	driver := linesolver.NewDriver()
	cache := linecache.NewDefault()
	st, b, other, _ := search.SearchTwoSolutions(n, clues, driver, cache)

	require.Equal(t, status.ManySolution, st)
	require.True(t, b.Solved(), "board returned alongside MANY_SOLUTION must be a terminal, fully-determined solution")
	require.NotNil(t, other)
	require.True(t, other.Solved(), "other solution recorded for MANY_SOLUTION must also be terminal")
}

func TestSearchTwoSolutionsUnsolvable(t *testing.T) {
	const n = 2
	clues := []*board.LineClue{
		newLine(t, []int{2}, n),
		newLine(t, nil, n),
		newLine(t, []int{1}, n),
		newLine(t, []int{1}, n),
	}

	driver := linesolver.NewDriver()
	cache := linecache.NewDefault()
	st, _, other, _ := search.SearchTwoSolutions(n, clues, driver, cache)

	require.Equal(t, status.Conflict, st)
	require.Nil(t, other)
}

func TestSearchTwoSolutionsUnique(t *testing.T) {
	const n = 5
	clues := make([]*board.LineClue, 2*n)
	for i := range clues {
		clues[i] = newLine(t, []int{n}, n)
	}

	driver := linesolver.NewDriver()
	cache := linecache.NewDefault()
	st, _, other, _ := search.SearchTwoSolutions(n, clues, driver, cache)

	require.Equal(t, status.Solved, st)
	require.Nil(t, other)
}

func TestResumableFindsSameSolutionAsOneShot(t *testing.T) {
	const n = 5
	clues := make([]*board.LineClue, 2*n)
	for i := range clues {
		clues[i] = newLine(t, []int{n}, n)
	}

	driver := linesolver.NewDriver()
	cache := linecache.NewDefault()

	oneShotSt, oneShotBoard, _ := search.SearchOneSolution(n, clues, driver, cache)
	require.Equal(t, status.Solved, oneShotSt)

	r, err := search.NewResumable(n, clues, driver, linecache.NewDefault(), 100)
	require.NoError(t, err)
	st := r.Run()
	require.Equal(t, status.Solved, st)
	require.Equal(t, oneShotBoard, r.Board)
}

func TestResumableTimeoutThenResumeReachesSolved(t *testing.T) {
	// N=4, every row and column a single run of length 1: a
	// permutation-matrix puzzle with many solutions, underdetermined
	// enough that the very first Prober sweep stalls and takes a branch
	// rather than solving outright — guaranteeing at least one real DFS
	// node before a solution is found.
	const n = 4
	clues := make([]*board.LineClue, 2*n)
	for i := range clues {
		clues[i] = newLine(t, []int{1}, n)
	}

	driver := linesolver.NewDriver()
	cache := linecache.NewDefault()

	r, err := search.NewResumable(n, clues, driver, cache, 0)
	require.NoError(t, err)
	st := r.Run()
	require.Equal(t, status.Timeout, st)

	cp := r.Checkpoint()
	resumed := search.ResumeFromCheckpoint(n, clues, driver, cache, cp, 1000)
	st2 := resumed.Run()
	require.Equal(t, status.Solved, st2)
}
