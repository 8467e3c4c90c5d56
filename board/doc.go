// Package board defines the Nonogram board and clue types: the packed,
// row/column-paired cell representation (spec.md §3 Board) and the
// per-line run-length clue with its precomputed cumulative sums and
// Zobrist fingerprint (spec.md §3 Clue).
//
// Board is deliberately a small, fixed-size, trivially copyable struct —
// two [MaxN]bitops.LineWord arrays plus an int — so that snapshotting it
// before a trial (spec.md §9 Design Notes) is a plain struct copy, never a
// heap walk.
package board
