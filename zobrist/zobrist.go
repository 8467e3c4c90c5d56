// File: zobrist.go
// Role: deterministic generation of the (run-position, run-length) fingerprint table.

package zobrist

import (
	"encoding/binary"

	"blainsmith.com/go/seahash"
)

// DefaultSeed is the textual seed used when a caller does not supply one.
// Changing it changes every cache key and every clue hash_key, but never
// the solutions an Engine produces — only which bucket of LineCache a line
// lands in.
const DefaultSeed = "nonogram-zobrist-v1"

// MaxRuns bounds how many runs a single N=25 line can have: a line
// of N cells holds at most ceil((N+1)/2) runs of length 1 separated by
// single whites, so 13 is the true bound for N=25, but the table is sized
// generously to MaxRuns to tolerate any N<=32 a caller constructs.
const MaxRuns = 32

// MaxRunLength bounds the longest run length a table entry is indexed by;
// a run cannot exceed the line length itself.
const MaxRunLength = 32

// Table holds Z[k][n]: a 64-bit constant keyed by zero-based run position k
// and 1-based run length n. Table is immutable once built and is safe for
// concurrent read access from any number of Engines.
type Table struct {
	z [MaxRuns][MaxRunLength + 1]uint64
}

// Build constructs a Table deterministically from seed. The same seed
// always yields the same Table, on any machine, in any process.
func Build(seed string) *Table {
	t := &Table{}
	buf := make([]byte, len(seed)+8)
	copy(buf, seed)
	for k := 0; k < MaxRuns; k++ {
		for n := 0; n <= MaxRunLength; n++ {
			binary.BigEndian.PutUint32(buf[len(seed):], uint32(k))
			binary.BigEndian.PutUint32(buf[len(seed)+4:], uint32(n))
			t.z[k][n] = seahash.Sum64(buf)
		}
	}
	return t
}

// Default is the package-wide Table built from DefaultSeed. Engines that
// don't care about a custom seed can share this instance; it is read-only.
var Default = Build(DefaultSeed)

// At returns Z[k][n], the constant for the k-th run (0-indexed) of length n.
// Panics if k or n is out of the table's configured bounds — this signals
// a programmer error (a clue with more runs or a longer run than this
// engine's N supports), not a recoverable input error.
func (t *Table) At(k, n int) uint64 {
	if k < 0 || k >= MaxRuns || n < 0 || n > MaxRunLength {
		panic("zobrist: (run-position, run-length) out of table bounds")
	}
	return t.z[k][n]
}
