// File: prober.go
// Role: shared Prober state, the per-cell trial primitive, the
// intersect-and-repropagate helper, and the branching heuristic
// (spec.md §4.8 steps common to both variants).

package prober

import (
	"math"

	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/dependency"
	"github.com/vlaran/nonogram/linecache"
	"github.com/vlaran/nonogram/linesolver"
	"github.com/vlaran/nonogram/status"
	"github.com/vlaran/nonogram/workqueue"
)

// Branch carries the two candidate boards a stalled sweep leaves for the
// DFS layer to pick between: FirstGo is the white-trial board, SecondGo is
// the black-trial board, per spec.md §4.8 step 4 and §4.9's "B ← first_go
// ... B ← second_go" ordering.
type Branch struct {
	FirstGo  board.Board
	SecondGo board.Board
}

// Prober runs the fixpoint sweep described in spec.md §4.8 over a Board,
// using a shared LineSolver driver, LineCache, WorkQueue, and
// DependencyMap. Not safe for concurrent use — one Prober belongs to one
// search context (each search entry point in the search package builds
// its own).
type Prober struct {
	n      int
	clues  []*board.LineClue
	driver *linesolver.Driver
	cache  *linecache.Cache
	wq     *workqueue.WorkQueue
	dep    *dependency.Map
}

// New returns a Prober for an N x N puzzle with the given clues (length
// 2N, columns then rows), sharing driver and cache with the rest of the
// solving context.
func New(n int, clues []*board.LineClue, driver *linesolver.Driver, cache *linecache.Cache) *Prober {
	return &Prober{
		n:      n,
		clues:  clues,
		driver: driver,
		cache:  cache,
		wq:     workqueue.New(2 * n),
		dep:    dependency.New(),
	}
}

// ResetDependencies zeros the DependencyMap back to its first-sweep state,
// per spec.md §4.9's `search_one_solution` entry point ("zero
// DependencyMap, run LineSolver driver once").
func (p *Prober) ResetDependencies() {
	p.dep.Reset()
}

// trial snapshots nothing itself (callers snapshot/restore around it): it
// commits SetAndFlag(i,j,color) onto b, runs the driver to a determinate
// end, and returns the resulting status and a value copy of b. touched, if
// non-nil, accumulates the set of lines the driver processed.
func (p *Prober) trial(b *board.Board, i, j int, color board.State, touched *uint64) (status.Status, board.Board) {
	p.wq.Reset()
	b.SetAndFlag(i, j, color, p.wq)
	st := p.driver.Run(b, p.clues, p.wq, p.cache, touched)
	return st, b.Snapshot()
}

// intersectAndPropagate implements spec.md §4.8's merge step: for each
// line, bits forbidden in *both* trial boards are cleared from b. Every
// newly-forced cell goes through SetAndFlag (a Prober-visible mutation,
// per spec.md §9's set_square/set_and_flag resolution) and, if any cell
// flipped, the driver runs once more to propagate the consequence.
// Returns the resulting status (meaningful only when changed is true) and
// whether any cell actually flipped.
func (p *Prober) intersectAndPropagate(b *board.Board, bw, bb *board.Board) (status.Status, bool) {
	n := b.N
	p.wq.Reset()
	changed := false

	for idx := 0; idx < 2*n; idx++ {
		unioned := bw.Line(idx) | bb.Line(idx)
		cur := b.Line(idx)
		diff := cur &^ unioned
		if diff == 0 {
			continue
		}
		for pos := 0; pos < n; pos++ {
			bits := (diff >> uint(2*pos)) & 0b11
			if bits == 0 {
				continue
			}
			var i2, j2 int
			if idx < n {
				i2, j2 = idx, pos
			} else {
				i2, j2 = pos, idx-n
			}
			if b.Get(i2, j2) != board.Unknown {
				continue
			}
			curCell := (cur >> uint(2*pos)) & 0b11
			newCell := curCell &^ bits
			if newCell == 0 {
				return status.Conflict, true
			}
			b.SetAndFlag(i2, j2, board.State(newCell), p.wq)
			changed = true
		}
	}

	if !changed {
		return status.Unsolved, false
	}
	return p.driver.Run(b, p.clues, p.wq, p.cache, nil), true
}

// branchScore implements spec.md §4.8's branching heuristic:
// min(black.determined, white.determined) + 1.85*ln(1+|diff|).
func branchScore(whiteDetermined, blackDetermined int) float64 {
	lo := whiteDetermined
	if blackDetermined < lo {
		lo = blackDetermined
	}
	diff := whiteDetermined - blackDetermined
	if diff < 0 {
		diff = -diff
	}
	return float64(lo) + 1.85*math.Log(1+float64(diff))
}

// sameSolution reports whether two fully-determined boards hold the same
// solution, per spec.md §4.10's "row-string arrays are bitwise equal".
func sameSolution(a, b *board.Board) bool {
	if a.N != b.N {
		return false
	}
	for j := 0; j < a.N; j++ {
		if a.Row[j] != b.Row[j] {
			return false
		}
	}
	return true
}
