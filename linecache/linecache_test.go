package linecache_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vlaran/nonogram/linecache"
)

func TestMissThenHit(t *testing.T) {
	c := linecache.New(8)
	k := linecache.Key{HashKey: 42, Word: 0b1101}
	_, ok := c.Lookup(k)
	require.False(t, ok)

	c.Insert(k, 0b1001)
	got, ok := c.Lookup(k)
	require.True(t, ok)
	require.Equal(t, uint64(0b1001), uint64(got))
}

func TestDifferentWordSameHashKeyDoesNotFalseHit(t *testing.T) {
	c := linecache.New(8)
	k1 := linecache.Key{HashKey: 7, Word: 1}
	k2 := linecache.Key{HashKey: 7, Word: 2}
	c.Insert(k1, 111)

	_, ok := c.Lookup(k2)
	require.False(t, ok, "a different line word under the same hash_key must never false-hit")
}

func TestInsertOverwritesColliding(t *testing.T) {
	c := linecache.New(1) // 2 entries total, forces collisions
	k1 := linecache.Key{HashKey: 1, Word: 1}
	k2 := linecache.Key{HashKey: 2, Word: 2}
	c.Insert(k1, 10)
	c.Insert(k2, 20)
	// k1 may or may not survive depending on bucket layout, but whichever
	// is reported present must report its own correct value.
	if got, ok := c.Lookup(k1); ok {
		require.Equal(t, uint64(10), uint64(got))
	}
	got2, ok2 := c.Lookup(k2)
	require.True(t, ok2)
	require.Equal(t, uint64(20), uint64(got2))
}
