// File: taai.go
// Role: the TAAI text clue format (spec.md §6): a `$`-prefixed header
// line followed by 2N clue lines, columns then rows.

package parse

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/zobrist"
)

// Puzzle is one parsed record: N column clue lines followed by N row clue
// lines, each as an ordered list of run lengths.
type Puzzle struct {
	N       int
	ColRuns [][]int
	RowRuns [][]int
}

// ParseOne reads a single puzzle record of side n from r: a header line
// beginning with `$` (its trailing content is ignored), then 2n clue
// lines, columns top-to-bottom-left-to-right then rows left-to-right
// top-to-bottom.
func ParseOne(r io.Reader, n int) (*Puzzle, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, pkgerrors.Wrap(err, "parse: read header line")
		}
		return nil, ErrTruncated
	}
	if !strings.HasPrefix(sc.Text(), "$") {
		return nil, ErrMissingHeader
	}

	lines := make([][]int, 2*n)
	for i := 0; i < 2*n; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, pkgerrors.Wrap(err, "parse: read clue line")
			}
			return nil, ErrTruncated
		}
		runs, err := parseClueLine(sc.Text())
		if err != nil {
			return nil, err
		}
		lines[i] = runs
	}

	return &Puzzle{N: n, ColRuns: lines[:n], RowRuns: lines[n:]}, nil
}

// ParseTAAIFile reads count consecutive puzzle records of side n from r.
func ParseTAAIFile(r io.Reader, n int, count int) ([]*Puzzle, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	puzzles := make([]*Puzzle, 0, count)
	for q := 0; q < count; q++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return puzzles, pkgerrors.Wrap(err, "parse: read header line")
			}
			return puzzles, ErrTruncated
		}
		if !strings.HasPrefix(sc.Text(), "$") {
			return puzzles, ErrMissingHeader
		}

		lines := make([][]int, 2*n)
		for i := 0; i < 2*n; i++ {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return puzzles, pkgerrors.Wrap(err, "parse: read clue line")
				}
				return puzzles, ErrTruncated
			}
			runs, err := parseClueLine(sc.Text())
			if err != nil {
				return puzzles, err
			}
			lines[i] = runs
		}

		puzzles = append(puzzles, &Puzzle{N: n, ColRuns: lines[:n], RowRuns: lines[n:]})
	}
	return puzzles, nil
}

// parseClueLine splits a tab/space-separated list of positive integers.
// An empty (or whitespace-only) line means zero runs.
func parseClueLine(line string) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	runs := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v <= 0 {
			return nil, ErrBadRunToken
		}
		runs[i] = v
	}
	return runs, nil
}

// BuildClues constructs the 2N board.LineClue values (columns then rows)
// a Puzzle describes, fingerprinted against zt.
func BuildClues(p *Puzzle, zt *zobrist.Table) ([]*board.LineClue, error) {
	clues := make([]*board.LineClue, 0, 2*p.N)
	for _, runs := range p.ColRuns {
		c, err := board.NewLineClue(runs, p.N, zt)
		if err != nil {
			return nil, err
		}
		clues = append(clues, c)
	}
	for _, runs := range p.RowRuns {
		c, err := board.NewLineClue(runs, p.N, zt)
		if err != nil {
			return nil, err
		}
		clues = append(clues, c)
	}
	return clues, nil
}

// BuildCluesFromBuffer decodes the 'a'+n-1/'z' buffer form directly into
// board.LineClue values, the alternate ingestion path spec.md §6 allows.
func BuildCluesFromBuffer(buf []byte, n int, zt *zobrist.Table) ([]*board.LineClue, error) {
	lines, err := DecodeBuffer(buf, n)
	if err != nil {
		return nil, err
	}
	p := &Puzzle{N: n, ColRuns: lines[:n], RowRuns: lines[n:]}
	return BuildClues(p, zt)
}
