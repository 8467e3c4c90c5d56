// File: errors.go
// Role: sentinel errors for the parse package.

package parse

import "errors"

var (
	// ErrMissingHeader indicates a puzzle record didn't start with a
	// line beginning `$`, per spec.md §6.
	ErrMissingHeader = errors.New("parse: puzzle record missing $ header line")

	// ErrTruncated indicates fewer than 2N clue lines (or buffer tokens)
	// were available before EOF.
	ErrTruncated = errors.New("parse: truncated puzzle record")

	// ErrBadRunToken indicates a clue line held a token that isn't a
	// positive integer run length.
	ErrBadRunToken = errors.New("parse: run length token is not a positive integer")
)
