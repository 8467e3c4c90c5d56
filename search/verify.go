// File: verify.go
// Role: the two-solution (uniqueness) DFSSearch variant (spec.md §4.10).

package search

import (
	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/linecache"
	"github.com/vlaran/nonogram/linesolver"
	"github.com/vlaran/nonogram/prober"
	"github.com/vlaran/nonogram/status"
	"github.com/vlaran/nonogram/workqueue"
)

// SearchTwoSolutions runs the verification search: if the initial
// LineSolver driver pass alone fully determines the board, that solution
// is necessarily unique (no branch was ever taken), so it returns Solved
// without invoking the verify recursion at all. Otherwise it hands off to
// verify. On ManySolution, other holds the second, conflicting solution
// recorded during the search; it is nil otherwise.
func SearchTwoSolutions(n int, clues []*board.LineClue, driver *linesolver.Driver, cache *linecache.Cache) (result status.Status, solved board.Board, other *board.Board, nodeCount int) {
	b, _ := board.New(n)
	wq := workqueue.New(2 * n)
	b.Init(wq)

	if st := driver.Run(b, clues, wq, cache, nil); st != status.Unsolved {
		return st, *b, nil, 0
	}

	p := prober.New(n, clues, driver, cache)
	p.ResetDependencies()

	var recorded board.Board
	st := verify(b, p, &recorded, &nodeCount)
	switch st {
	case status.ManySolution:
		snap := recorded
		return status.ManySolution, *b, &snap, nodeCount
	default:
		return st, *b, nil, nodeCount
	}
}

// verify implements spec.md §4.10's recursion: probe with the
// always-both-colors variant; on a stall, recurse first into the
// white-trial branch, then the black-trial branch (short-circuiting the
// moment either reports ManySolution), and combine the two outcomes per
// spec.md §4.10's final table.
func verify(b *board.Board, p *prober.Prober, recorded *board.Board, nodeCount *int) status.Status {
	*nodeCount++

	st, branch := p.ProbeVerify(b, recorded)
	switch st {
	case status.Solved, status.Conflict, status.ManySolution:
		return st
	}
	if branch == nil {
		return status.Conflict
	}

	*b = branch.FirstGo
	r1 := verify(b, p, recorded, nodeCount)
	if r1 == status.ManySolution {
		return status.ManySolution
	}

	*b = branch.SecondGo
	r2 := verify(b, p, recorded, nodeCount)
	if r2 == status.ManySolution {
		return status.ManySolution
	}

	if r1 == status.Conflict && r2 == status.Conflict {
		return status.Conflict
	}
	if r1 == status.Solved && r2 == status.Solved {
		return status.ManySolution
	}
	return status.Solved
}
