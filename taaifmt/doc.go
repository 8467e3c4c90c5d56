// Package taaifmt renders a solved board.Board as the TAAI solution text
// format (spec.md §6): N rows of N tab-separated cell codes, one of
// "1" (Black), "0" (White), "-1" (Unknown), "-2" (Conflict).
package taaifmt
