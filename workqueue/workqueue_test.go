package workqueue_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vlaran/nonogram/workqueue"
)

func TestPushPopFIFO(t *testing.T) {
	q := workqueue.New(5)
	require.True(t, q.IsEmpty())
	q.Push(2)
	q.Push(4)
	q.Push(0)
	require.False(t, q.IsEmpty())
	require.Equal(t, 2, q.Pop())
	require.Equal(t, 4, q.Pop())
	require.Equal(t, 0, q.Pop())
	require.True(t, q.IsEmpty())
}

func TestPushIdempotent(t *testing.T) {
	q := workqueue.New(5)
	q.Push(1)
	q.Push(1)
	q.Push(1)
	require.Equal(t, 1, q.Pop())
	require.True(t, q.IsEmpty())
}

func TestClearResetsMembership(t *testing.T) {
	q := workqueue.New(5)
	q.Push(1)
	q.Push(2)
	q.Clear()
	require.True(t, q.IsEmpty())
	require.False(t, q.IsIn(1))
	q.Push(1)
	require.Equal(t, 1, q.Pop())
}

func TestNeverExceedsSize(t *testing.T) {
	const n = 4
	q := workqueue.New(2 * n)
	for i := 0; i < 2*n; i++ {
		q.Push(i)
		q.Push(i) // idempotent, must not overflow the ring
	}
	count := 0
	for !q.IsEmpty() {
		q.Pop()
		count++
	}
	require.Equal(t, 2*n, count)
}
