// File: errors.go
// Role: sentinel errors for the board package.

package board

import "errors"

var (
	// ErrInvalidN indicates a requested board size is outside [1, MaxN].
	ErrInvalidN = errors.New("board: n must be in [1, MaxN]")

	// ErrClueOverflow indicates a clue's minimum span (runs + separators)
	// exceeds the line length it was built against — spec.md §7 treats
	// this as an invariant violation, not a recoverable input error.
	ErrClueOverflow = errors.New("board: clue minimum span exceeds line length")

	// ErrTooManyRuns indicates more runs were supplied than a line of the
	// given length can hold ((n+1)/2 runs of length 1).
	ErrTooManyRuns = errors.New("board: too many runs for a single line")
)
