// File: board.go
// Role: packed, row/column-paired board state (spec.md §3/§4.2 Board).
//
// Board is deliberately a plain value type: Col and Row are fixed-size
// arrays (not slices), so `b2 := b1` and `b1 = snapshot` are ordinary
// struct copies with no aliasing and no heap traversal — the hot path
// spec.md §9 calls out for trial/restore in the prober.

package board

import "github.com/vlaran/nonogram/bitops"

// Board holds the packed state of an N x N puzzle: one LineWord per column
// and one per row, kept in sync by every mutator in this package.
type Board struct {
	N          int
	Col        [MaxN]bitops.LineWord
	Row        [MaxN]bitops.LineWord
	Determined int
}

// New returns a Board of side n, not yet initialized (all-zero LineWords,
// which is the Conflict state — call Init before using it).
func New(n int) (*Board, error) {
	if n < 1 || n > MaxN {
		return nil, ErrInvalidN
	}
	return &Board{N: n}, nil
}

// LineCount returns 2N: the number of lines (N columns then N rows).
func (b *Board) LineCount() int {
	return 2 * b.N
}

// Line returns the current LineWord for line index idx in [0, 2N): columns
// occupy [0,N), rows occupy [N,2N).
func (b *Board) Line(idx int) bitops.LineWord {
	if idx < b.N {
		return b.Col[idx]
	}
	return b.Row[idx-b.N]
}

// SetLine overwrites the LineWord for line index idx directly, without
// touching Determined or the perpendicular lines, so the row/column pairing
// holds afterwards only if the caller writes the matching perpendicular
// words too. The LineSolver driver's bit-diff loop does not use it: it
// applies per-cell changes through SetSquare and updates Determined once
// per changed cell.
func (b *Board) SetLine(idx int, w bitops.LineWord) {
	if idx < b.N {
		b.Col[idx] = w
	} else {
		b.Row[idx-b.N] = w
	}
}

// Get extracts the two-bit State of cell (i,j): column i, row j.
func (b *Board) Get(i, j int) State {
	return State(bitops.ShiftRight(b.Row[j], i, b.N) & 0b11)
}

// opposite returns the complementary color to clear when collapsing a cell
// to color: clearing White's bit leaves Black, and vice versa.
func opposite(color State) State {
	if color == Black {
		return White
	}
	return Black
}

// setSquare clears the complementary color bit from both col[i] and row[j]
// at the paired positions, collapsing Unknown to color. It does not touch
// Determined: spec.md §9's open question on set_square vs set_and_flag asks
// ports to reserve set_square for call sites that already account for the
// determined-count change themselves (here: the LineSolver driver's
// bit-diff loop, which increments Determined once per changed cell as it
// walks the diff — see linesolver.Driver).
func (b *Board) setSquare(i, j int, color State) {
	opp := bitops.LineWord(opposite(color))
	b.Col[i] &^= bitops.ShiftLeft(opp, j, b.N)
	b.Row[j] &^= bitops.ShiftLeft(opp, i, b.N)
}

// SetSquare is the exported form of setSquare, for the one other caller
// (linesolver's bit-diff loop) that must live outside this package but
// still needs set-without-count semantics.
func (b *Board) SetSquare(i, j int, color State) {
	b.setSquare(i, j, color)
}

// LineQueuer is the minimal interface SetAndFlag needs from a work queue:
// push a line index back onto the propagation queue. workqueue.WorkQueue
// satisfies it.
type LineQueuer interface {
	Push(idx int)
}

// SetAndFlag collapses cell (i,j) to color, increments Determined, and
// pushes both of the cell's lines (column i, row N+j) onto wq — the
// Prober-visible mutation spec.md §9 says should always go through this
// path rather than the internal setSquare.
func (b *Board) SetAndFlag(i, j int, color State, wq LineQueuer) {
	before := b.Get(i, j)
	b.setSquare(i, j, color)
	if before == Unknown {
		b.Determined++
	}
	wq.Push(i)
	wq.Push(j + b.N)
}

// Init resets every cell to Unknown, zeroes Determined, and pushes every
// line index [0, 2N) onto wq — spec.md §4.2 init().
func (b *Board) Init(wq LineQueuer) {
	mask := bitops.Mask(b.N)
	for i := 0; i < b.N; i++ {
		b.Col[i] = mask
		b.Row[i] = mask
	}
	b.Determined = 0
	for i := 0; i < b.LineCount(); i++ {
		wq.Push(i)
	}
}

// Solved reports whether every cell is determined, i.e. Determined == N*N.
func (b *Board) Solved() bool {
	return b.Determined == b.N*b.N
}

// Snapshot returns a value copy of b: a plain struct copy, safe to mutate
// independently of b.
func (b *Board) Snapshot() Board {
	return *b
}

// Restore overwrites b's contents with snap, another plain struct copy.
func (b *Board) Restore(snap Board) {
	*b = snap
}
