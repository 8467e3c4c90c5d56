// File: resumable.go
// Role: ResumableSearch, the explicit-stack DFS state machine
// (spec.md §4.11).

package search

import (
	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/linecache"
	"github.com/vlaran/nonogram/linesolver"
	"github.com/vlaran/nonogram/prober"
	"github.com/vlaran/nonogram/status"
	"github.com/vlaran/nonogram/workqueue"
)

// Resumable is the explicit-stack search state: one step of resumable_dfs
// (spec.md §4.11) executes per call to step, and Run drives step until a
// terminal status is reached.
type Resumable struct {
	clues  []*board.LineClue
	driver *linesolver.Driver
	cache  *linecache.Cache
	prober *prober.Prober

	Board     board.Board
	Stack     [StackMaxDepth]Frame
	Depth     int
	NodeCount int
	NodeLimit int
	State     status.Status

	// Err is set to ErrStackOverflow when Depth would exceed StackMaxDepth;
	// the Status returned alongside it is still Conflict (spec.md §4.11
	// has no dedicated overflow status), but a caller can distinguish a
	// genuine puzzle conflict from stack exhaustion by checking Err.
	Err error
}

// NewResumable initializes a fresh ResumableSearch on an N x N puzzle: it
// builds and Inits the board, runs the LineSolver driver once (which may
// already decide the puzzle), and otherwise readies the Prober for
// step-by-step DFS.
func NewResumable(n int, clues []*board.LineClue, driver *linesolver.Driver, cache *linecache.Cache, nodeLimit int) (*Resumable, error) {
	b, err := board.New(n)
	if err != nil {
		return nil, err
	}
	wq := workqueue.New(2 * n)
	b.Init(wq)

	st := driver.Run(b, clues, wq, cache, nil)

	r := &Resumable{
		clues:     clues,
		driver:    driver,
		cache:     cache,
		prober:    prober.New(n, clues, driver, cache),
		Board:     *b,
		NodeLimit: nodeLimit,
		State:     st,
	}
	if st == status.Unsolved {
		r.prober.ResetDependencies()
	}
	return r, nil
}

// ResumeFromCheckpoint rebuilds a ResumableSearch from a previously saved
// CheckpointState, with a caller-supplied node_limit (spec.md §6: "the new
// node_limit is supplied by the caller").
func ResumeFromCheckpoint(n int, clues []*board.LineClue, driver *linesolver.Driver, cache *linecache.Cache, cp CheckpointState, nodeLimit int) *Resumable {
	return &Resumable{
		clues:     clues,
		driver:    driver,
		cache:     cache,
		prober:    prober.New(n, clues, driver, cache),
		Board:     cp.Board,
		Stack:     cp.Stack,
		Depth:     cp.Depth,
		NodeCount: cp.NodeCount,
		NodeLimit: nodeLimit,
		State:     status.Unsolved,
	}
}

// Checkpoint captures the current state for persistence.
func (r *Resumable) Checkpoint() CheckpointState {
	return CheckpointState{
		Board:     r.Board,
		Stack:     r.Stack,
		Depth:     r.Depth,
		NodeCount: r.NodeCount,
	}
}

// Run drives Step until the search reaches Solved, Conflict, or Timeout,
// per spec.md §4.11's `resumable_solver` loop ("until state != UNSOLVED").
func (r *Resumable) Run() status.Status {
	if r.State != status.Unsolved {
		return r.State
	}
	for {
		st := r.step()
		if st != status.Unsolved {
			r.State = st
			return st
		}
	}
}

// step executes exactly one resumable_dfs call (spec.md §4.11).
func (r *Resumable) step() status.Status {
	switch r.Stack[r.Depth].Step {
	case 0:
		return r.stepProbe()
	case 1:
		r.Board = r.Stack[r.Depth].SecondGo
		r.Stack[r.Depth].Step = 2
		r.Depth++
		return r.afterDescend()
	default: // 2
		r.Stack[r.Depth].Step = 0
		r.Depth--
		return r.afterBacktrack()
	}
}

// stepProbe runs the Prober once (step 0) and either returns a decided
// status, backtracks on CONFLICT, or descends into the white-trial
// branch — consuming exactly one unit of NodeLimit, per spec.md §4.11.
func (r *Resumable) stepProbe() status.Status {
	st, branch := r.prober.Probe(&r.Board)
	r.NodeLimit--
	r.NodeCount++

	switch st {
	case status.Solved:
		return status.Solved
	case status.Conflict:
		r.Stack[r.Depth].Step = 0
		r.Depth--
	default:
		if branch == nil {
			r.Stack[r.Depth].Step = 0
			r.Depth--
			break
		}
		r.Stack[r.Depth].FirstGo = branch.FirstGo
		r.Stack[r.Depth].SecondGo = branch.SecondGo
		r.Board = branch.FirstGo
		r.Stack[r.Depth].Step = 1
		r.Depth++
	}

	// spec.md §4.11: the node_limit check applies after either sub-branch
	// of step 0, before the separate, later depth<0/overflow checks.
	if r.NodeLimit < 0 {
		return status.Timeout
	}
	if r.Depth < 0 {
		return status.Conflict
	}
	if r.Depth >= StackMaxDepth {
		r.Err = ErrStackOverflow
		return status.Conflict
	}
	return status.Unsolved
}

func (r *Resumable) afterDescend() status.Status {
	if r.Depth >= StackMaxDepth {
		r.Err = ErrStackOverflow
		return status.Conflict
	}
	return status.Unsolved
}

func (r *Resumable) afterBacktrack() status.Status {
	if r.Depth < 0 {
		return status.Conflict
	}
	return status.Unsolved
}
