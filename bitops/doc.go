// Package bitops implements shift and popcount primitives over a LineWord:
// a 2N-bit packed representation of one Nonogram line, two bits per cell.
//
// Cell j of a line occupies bits (2j, 2j+1) of the word, low bit first.
// Every operation here treats a cell as an atomic two-bit unit — a "shift
// by s" always means "shift by s cells", i.e. 2s raw bits.
package bitops
