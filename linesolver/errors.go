// File: errors.go
// Role: sentinel errors for the linesolver package.

package linesolver

import "errors"

// ErrLineConflict indicates a single line has no placement consistent
// with its clue and current partial state.
var ErrLineConflict = errors.New("linesolver: line has no valid placement")
