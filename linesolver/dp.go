// File: dp.go
// Role: the per-line DP recursion (spec.md §4.6 "Algorithm").
// Memoization keys are reset to unsolved on each line solve, never across
// lines (spec.md §9 Design Notes).

package linesolver

import (
	"github.com/vlaran/nonogram/bitops"
	"github.com/vlaran/nonogram/board"
)

// maxRuns is the largest run count a single MaxN-cell line can carry:
// ceil((MaxN+1)/2) runs of length 1, each separated by one white cell.
const maxRuns = (board.MaxN + 1) / 2

type triState uint8

const (
	unsolved triState = iota
	solvedState
	conflictState
)

// blockMasks[l] is the packed word with Black in cell positions [0, l),
// independent of any particular n — callers shift and mask it themselves.
var blockMasks [board.MaxN + 1]bitops.LineWord

func init() {
	for l := 0; l <= board.MaxN; l++ {
		var m bitops.LineWord
		for i := 0; i < l; i++ {
			m |= bitops.LineWord(board.Black) << uint(2*i)
		}
		blockMasks[l] = m
	}
}

// dp is a reusable, fixed-size DP workspace. One instance is owned per
// Driver (or per goroutine solving lines) and reset per line, never
// reallocated — the hot path this engine runs most.
type dp struct {
	table [board.MaxN + 1][maxRuns + 1]triState
	n     int
	clue  *board.LineClue
	word  bitops.LineWord
}

// reset prepares the workspace for a fresh line solve against clue and word
// on a line of length n.
func (d *dp) reset(n int, clue *board.LineClue, word bitops.LineWord) {
	d.n, d.clue, d.word = n, clue, word
	for i := 0; i <= n; i++ {
		for j := 0; j <= clue.Count; j++ {
			d.table[i][j] = unsolved
		}
	}
}

// solve runs spec.md §4.6's DP top-level call (solve(N, m, out=0)) and
// returns the settled line word on success, or ErrLineConflict.
func (d *dp) solve() (bitops.LineWord, error) {
	var out bitops.LineWord
	if !d.rec(d.n, d.clue.Count, &out) {
		return 0, ErrLineConflict
	}
	return out, nil
}

// rec implements spec.md §4.6 steps 1-8. Base cases at i<=0 are merged
// per this package's doc comment: success iff j==0, matching the original
// Python reference's (i==-1 or i==0) and j==0 check.
func (d *dp) rec(i, j int, out *bitops.LineWord) bool {
	if i <= 0 {
		return j == 0
	}

	if d.table[i][j] != unsolved {
		return d.table[i][j] == solvedState
	}

	cell := board.State(bitops.ShiftRight(d.word, i-1, d.n) & 0b11)
	valid := false

	// Try placing run j ending at position i-1.
	if j > 0 {
		p := i - d.clue.Numbers[j]
		if p >= 0 {
			m := bitops.ShiftLeft(blockMasks[d.clue.Numbers[j]], p, d.n)
			if p > 0 {
				m |= bitops.ShiftLeft(bitops.LineWord(board.White), p-1, d.n)
			}
			compatible := (m &^ d.word) == 0
			if cell != board.White && compatible {
				if d.rec(p-1, j-1, out) {
					*out |= m
					valid = true
				}
			}
		}
	}

	// Try placing a white at position i-1.
	if cell != board.Black && i > d.clue.Sum[j] {
		if d.rec(i-1, j, out) {
			*out |= bitops.ShiftLeft(bitops.LineWord(board.White), i-1, d.n)
			valid = true
		}
	}

	if valid {
		d.table[i][j] = solvedState
	} else {
		d.table[i][j] = conflictState
	}
	return valid
}
