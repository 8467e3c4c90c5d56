// File: clue.go
// Role: per-line run-length clue (LineClue), its cumulative sums, and its
// Zobrist fingerprint (spec.md §3 Clue).
// Determinism: built once per puzzle and never mutated afterwards.

package board

import "github.com/vlaran/nonogram/zobrist"

// LineClue is the run-length specification for one line (row or column).
//
// Numbers and Sum are 1-indexed to match spec.md §3 exactly: Numbers[0] and
// Sum[0] are always zero, Numbers[1..Count] are the run lengths in order,
// and Sum[k] is the minimum span (run lengths plus mandatory single-cell
// separators) occupied by the first k runs.
type LineClue struct {
	Count   int
	Numbers []int
	Sum     []int
	HashKey uint64
}

// NewLineClue builds a LineClue from an ordered list of run lengths against
// a line of length n, using zt to derive HashKey. Returns ErrClueOverflow
// if the clue's minimum span exceeds n, and ErrTooManyRuns if more runs
// are supplied than a single line can ever hold ((n+1)/2 runs of length
// 1, 1-separated, is the absolute ceiling).
func NewLineClue(runs []int, n int, zt *zobrist.Table) (*LineClue, error) {
	if n < 1 || n > MaxN {
		return nil, ErrInvalidN
	}
	if len(runs) > (n+1)/2 {
		return nil, ErrTooManyRuns
	}

	count := len(runs)
	numbers := make([]int, count+1)
	sum := make([]int, count+1)

	running := 0
	var hashKey uint64
	for k := 1; k <= count; k++ {
		numbers[k] = runs[k-1]
		running += numbers[k]
		sum[k] = running + (k - 1)
		hashKey ^= zt.At(k-1, numbers[k])
	}

	if sum[count] > n {
		return nil, ErrClueOverflow
	}

	return &LineClue{Count: count, Numbers: numbers, Sum: sum, HashKey: hashKey}, nil
}

// IsEmpty reports whether the line has zero runs, i.e. must reduce entirely
// to White (spec.md §8 boundary behavior).
func (c *LineClue) IsEmpty() bool {
	return c.Count == 0
}

// IsFullyForced reports whether the clue's minimum span exactly fills the
// line, meaning every cell's color is already determined by the clue alone
// (spec.md §8 boundary behavior).
func (c *LineClue) IsFullyForced(n int) bool {
	return c.Sum[c.Count] == n
}
