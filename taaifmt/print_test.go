package taaifmt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/taaifmt"
	"github.com/vlaran/nonogram/workqueue"
)

func TestFormatRendersKnownAndUnknownCells(t *testing.T) {
	b, err := board.New(2)
	require.NoError(t, err)
	wq := workqueue.New(b.LineCount())
	b.Init(wq)

	b.SetAndFlag(0, 0, board.Black, wq)
	b.SetAndFlag(1, 0, board.White, wq)

	got := taaifmt.Format(b)
	require.Equal(t, "1\t0\n-1\t-1\n", got)
}
