// File: types.go
// Role: the DFS frame and checkpoint payload shared by ResumableSearch
// and its disk persistence (spec.md §3 "DFS frame", §6 "Checkpoint
// files").

package search

import "github.com/vlaran/nonogram/board"

// StackMaxDepth is the explicit-stack capacity for ResumableSearch,
// spec.md §4.11's STACK_MAX_DEPTH.
const StackMaxDepth = 626

// Frame is a per-depth record in ResumableSearch's explicit stack: Step
// tracks which branch has been committed so far (0: not yet probed, 1:
// FirstGo committed, 2: SecondGo committed), and FirstGo/SecondGo cache
// the Prober's branch candidates so step 1 doesn't need to re-probe.
type Frame struct {
	Step     int
	FirstGo  board.Board
	SecondGo board.Board
}

// CheckpointState is the exact, exported snapshot of a ResumableSearch
// that gets gob-encoded and compressed into a checkpoint: the current
// board, the full frame stack, the current depth, and the node count so
// far. NodeLimit is deliberately excluded — spec.md §6 says "the new
// node_limit is supplied by the caller" on resume.
type CheckpointState struct {
	Board     board.Board
	Stack     [StackMaxDepth]Frame
	Depth     int
	NodeCount int
}
