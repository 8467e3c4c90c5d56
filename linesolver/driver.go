// File: driver.go
// Role: queue-driven application of the per-line DP to every line touched
// by propagation (spec.md §4.6 "Driver loop").

package linesolver

import (
	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/linecache"
	"github.com/vlaran/nonogram/status"
	"github.com/vlaran/nonogram/workqueue"
)

// Driver owns the reusable DP workspace for one solving context. It is not
// safe for concurrent use — callers needing concurrent solves should use
// one Driver per goroutine (see engine.Engine, which owns exactly one).
type Driver struct {
	dp dp
}

// NewDriver returns a ready-to-use Driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Touched, if non-nil, is ORed with the bit for every line index the
// driver pops off wq and processes — the dependency-tracking hook spec.md
// §4.6/§4.7 calls this_temp_table.
type Touched = *uint64

// Run drains wq, applying the cached-or-computed DP settlement to each
// popped line, diffing it against the board, and pushing perpendicular
// lines back onto wq for every newly fixed cell. Returns Solved once
// Board.Determined == N*N and the queue is empty, Conflict the moment any
// single line has no valid placement (clearing wq first, per spec.md
// §4.6), or Unsolved if the queue drained without reaching full
// determination.
func (d *Driver) Run(b *board.Board, clues []*board.LineClue, wq *workqueue.WorkQueue, cache *linecache.Cache, touched Touched) status.Status {
	for !wq.IsEmpty() {
		idx := wq.Pop()
		if touched != nil {
			*touched |= uint64(1) << uint(idx)
		}

		word := b.Line(idx)
		clue := clues[idx]
		key := linecache.Key{HashKey: clue.HashKey, Word: word}

		settled, ok := cache.Lookup(key)
		if !ok {
			d.dp.reset(b.N, clue, word)
			var err error
			settled, err = d.dp.solve()
			if err != nil {
				wq.Clear()
				return status.Conflict
			}
			cache.Insert(key, settled)
		}

		applyDiff(b, idx, word, settled, wq)
	}

	if b.Solved() {
		return status.Solved
	}
	return status.Unsolved
}

// applyDiff walks the XOR of the line's previous and settled words
// cell-by-cell, committing every newly fixed cell through SetSquare and
// Board.Determined bookkeeping, and pushing the perpendicular line for
// each changed cell. The color written is read from settled (the actual
// final state), not the XOR itself — the XOR only identifies which cells
// changed, not what they changed to.
func applyDiff(b *board.Board, idx int, before, settled uint64, wq *workqueue.WorkQueue) {
	change := before ^ settled
	n := b.N
	for j := 0; change != 0 && j < n; j++ {
		bits := change & 0b11
		if bits != 0 {
			color := board.State((settled >> uint(2*j)) & 0b11)
			b.Determined++
			if idx < n {
				// idx is a column; j indexes the row.
				b.SetSquare(idx, j, color)
				wq.Push(j + n)
			} else {
				// idx is a row; j indexes the column.
				row := idx - n
				b.SetSquare(j, row, color)
				wq.Push(j)
			}
		}
		change >>= 2
	}
}
