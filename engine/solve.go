// File: solve.go
// Role: Engine's solving entry points, wrapping the search package's
// free functions with the Engine's shared driver/cache/Zobrist and
// round-boundary logging (spec.md §9 Design Notes; SPEC_FULL.md §4.x
// Logging).

package engine

import (
	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/search"
	"github.com/vlaran/nonogram/status"
)

// Result is the outcome of a single-solution solve: Status plus the final
// board (valid whenever Status is Solved; partially determined otherwise)
// and the DFS node count spent reaching it.
type Result struct {
	Status    status.Status
	Board     board.Board
	NodeCount int
}

// SolveOne runs the single-solution DFSSearch variant (spec.md §4.9) on an
// n x n puzzle described by clues.
func (e *Engine) SolveOne(n int, clues []*board.LineClue) Result {
	st, b, nodes := search.SearchOneSolution(n, clues, e.driver, e.cache)
	e.log.V(1).Info("solve one", "n", n, "status", st.String(), "nodes", nodes)
	if st == status.Conflict {
		e.log.Error(nil, "solve one ended in conflict", "n", n)
	}
	return Result{Status: st, Board: b, NodeCount: nodes}
}

// UniqueResult is the outcome of SolveUnique: Status plus the board the
// search first reached, and (only when Status is ManySolution) a second,
// conflicting solution recorded during verification.
type UniqueResult struct {
	Status    status.Status
	Board     board.Board
	Other     *board.Board
	NodeCount int
}

// SolveUnique runs the two-solution (uniqueness) DFSSearch variant
// (spec.md §4.10) on an n x n puzzle described by clues.
func (e *Engine) SolveUnique(n int, clues []*board.LineClue) UniqueResult {
	st, b, other, nodes := search.SearchTwoSolutions(n, clues, e.driver, e.cache)
	e.log.V(1).Info("solve unique", "n", n, "status", st.String(), "nodes", nodes)
	if st == status.ManySolution {
		e.log.V(1).Info("multiple solutions found", "n", n)
	}
	return UniqueResult{Status: st, Board: b, Other: other, NodeCount: nodes}
}

// NewResumable starts a checkpointable search (spec.md §4.11) bounded by
// nodeLimit, sharing this Engine's driver and cache.
func (e *Engine) NewResumable(n int, clues []*board.LineClue, nodeLimit int) (*search.Resumable, error) {
	r, err := search.NewResumable(n, clues, e.driver, e.cache, nodeLimit)
	if err != nil {
		e.log.Error(err, "new resumable search", "n", n)
	}
	return r, err
}

// ResumeFromCheckpoint rebuilds a Resumable from a previously saved
// search.CheckpointState, sharing this Engine's driver and cache, with a
// caller-supplied node_limit (spec.md §6).
func (e *Engine) ResumeFromCheckpoint(n int, clues []*board.LineClue, cp search.CheckpointState, nodeLimit int) *search.Resumable {
	e.log.V(1).Info("resuming search from checkpoint", "n", n, "depth", cp.Depth, "nodeCount", cp.NodeCount)
	return search.ResumeFromCheckpoint(n, clues, e.driver, e.cache, cp, nodeLimit)
}
