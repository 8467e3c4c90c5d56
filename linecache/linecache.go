// File: linecache.go
// Role: fixed-size open-addressed cache, keyed by (clue fingerprint, line word).
// Contract: a hit's settled word is exactly what the DP would have produced
// for that (clue, line) pair (spec.md §8 Cache soundness).

package linecache

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/vlaran/nonogram/bitops"
)

// DefaultSizeLog2 sizes the default cache at 2^20 entries, matching the
// capacity spec.md §4.5 suggests.
const DefaultSizeLog2 = 20

// ProbeLen is the number of linear slots Lookup tries before reporting a
// miss. Insert does not probe: it always overwrites the first slot
// (spec.md §4.5).
const ProbeLen = 4

// Key identifies one (clue, line-state) pair. HashKey is the clue's Zobrist
// fingerprint; Word is the line's current packed state.
type Key struct {
	HashKey uint64
	Word    bitops.LineWord
}

type entry struct {
	valid   bool
	key     Key
	settled bitops.LineWord
}

// Cache is the process-wide (or Engine-wide) LineCache. It is never
// invalidated during a run: entries are valid for as long as the Zobrist
// table that produced HashKey is held fixed, and are shared across puzzles
// because they key on clue content, not clue identity.
type Cache struct {
	entries []entry
	mask    uint64
}

// New returns an empty Cache sized to 2^sizeLog2 entries.
func New(sizeLog2 uint) *Cache {
	size := uint64(1) << sizeLog2
	return &Cache{
		entries: make([]entry, size),
		mask:    size - 1,
	}
}

// NewDefault returns a Cache sized per DefaultSizeLog2.
func NewDefault() *Cache {
	return New(DefaultSizeLog2)
}

func mix(k Key) uint64 {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], k.HashKey)
	binary.BigEndian.PutUint64(buf[8:16], uint64(k.Word))
	return xxhash.Sum64(buf[:])
}

// Lookup probes up to ProbeLen slots starting at mix(k) mod len(entries).
// It returns the stored settled word and true only on an exact key match;
// any other outcome (empty slot, different key within the probe run) is a
// miss, and the caller is expected to compute and Insert the real result.
func (c *Cache) Lookup(k Key) (bitops.LineWord, bool) {
	start := mix(k) & c.mask
	for p := 0; p < ProbeLen; p++ {
		e := &c.entries[(start+uint64(p))&c.mask]
		if !e.valid {
			continue
		}
		if e.key == k {
			return e.settled, true
		}
	}
	return 0, false
}

// Insert stores (k, settled), overwriting whatever occupied the first
// probed slot (spec.md §4.5: "replace-on-collision, no chaining").
func (c *Cache) Insert(k Key, settled bitops.LineWord) {
	start := mix(k) & c.mask
	c.entries[start] = entry{valid: true, key: k, settled: settled}
}

// Len reports how many slots the cache's backing table has (not how many
// are occupied) — useful for diagnostics, not correctness.
func (c *Cache) Len() int {
	return len(c.entries)
}
