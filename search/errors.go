// File: errors.go
// Role: sentinel errors for the search package.

package search

import "errors"

var (
	// ErrStackOverflow indicates ResumableSearch's explicit stack
	// exceeded StackMaxDepth (626, per spec.md §4.11): Resumable.Err is
	// set to this when Depth would cross that bound, alongside a
	// Conflict status. In practice DFS depth is bounded by the number of
	// UNKNOWN cells remaining when a branch starts, which shrinks by at
	// least one per frame, so this should not trigger on a well-formed
	// puzzle; it exists as a guard against runaway recursion rather than
	// an expected path.
	ErrStackOverflow = errors.New("search: resumable stack exceeded max depth")

	// ErrNoCheckpoint indicates a checkpoint lookup found no saved state
	// for the requested puzzle id.
	ErrNoCheckpoint = errors.New("search: no checkpoint found for puzzle id")
)
