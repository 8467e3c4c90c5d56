// File: print.go
// Role: TAAI solution grid printer, grounded on
// original_source/puzzle.py's print_board_taai.

package taaifmt

import (
	"io"
	"strings"

	"github.com/vlaran/nonogram/board"
)

// Format renders b as N lines of N tab-separated cell codes, row-major:
// row i holds the codes for cells (0,i)..(N-1,i).
func Format(b *board.Board) string {
	var sb strings.Builder
	for j := 0; j < b.N; j++ {
		for i := 0; i < b.N; i++ {
			sb.WriteString(b.Get(i, j).String())
			if i != b.N-1 {
				sb.WriteByte('\t')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Write renders b via Format and writes it to w.
func Write(w io.Writer, b *board.Board) error {
	_, err := io.WriteString(w, Format(b))
	return err
}
