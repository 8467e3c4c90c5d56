// File: dfs.go
// Role: the single-solution DFSSearch variant (spec.md §4.9).

package search

import (
	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/linecache"
	"github.com/vlaran/nonogram/linesolver"
	"github.com/vlaran/nonogram/prober"
	"github.com/vlaran/nonogram/status"
	"github.com/vlaran/nonogram/workqueue"
)

// SearchOneSolution is spec.md §4.9's entry point: zero the
// DependencyMap, run the LineSolver driver once on the freshly initialized
// board, and only fall into find_one if that single pass didn't already
// decide the puzzle. Returns the final status and the total node count.
func SearchOneSolution(n int, clues []*board.LineClue, driver *linesolver.Driver, cache *linecache.Cache) (status.Status, board.Board, int) {
	b, _ := board.New(n) // n validated already, via the clues that built it
	wq := workqueue.New(2 * n)
	b.Init(wq)

	if st := driver.Run(b, clues, wq, cache, nil); st != status.Unsolved {
		return st, *b, 0
	}

	p := prober.New(n, clues, driver, cache)
	p.ResetDependencies()

	nodeCount := 0
	st := findOne(b, p, &nodeCount)
	return st, *b, nodeCount
}

// findOne implements spec.md §4.9's find_one: probe, and on stall recurse
// first into the white-trial branch, then (if that didn't solve it) into
// the black-trial branch.
func findOne(b *board.Board, p *prober.Prober, nodeCount *int) status.Status {
	*nodeCount++

	st, branch := p.Probe(b)
	if st == status.Solved || st == status.Conflict {
		return st
	}
	if branch == nil {
		// No UNKNOWN cell remained eligible for branching, yet the board
		// isn't SOLVED: nothing left to try along this path.
		return status.Conflict
	}

	*b = branch.FirstGo
	if r := findOne(b, p, nodeCount); r == status.Solved {
		return status.Solved
	}

	*b = branch.SecondGo
	return findOne(b, p, nodeCount)
}
