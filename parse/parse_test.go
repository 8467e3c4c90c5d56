package parse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlaran/nonogram/parse"
	"github.com/vlaran/nonogram/zobrist"
)

func TestParseOneReadsHeaderAndClueLines(t *testing.T) {
	src := "$ puzzle 1\n1\n1\n\n\n1\t1\n\n\n1\n"
	p, err := parse.ParseOne(strings.NewReader(src), 2)
	require.NoError(t, err)
	require.Equal(t, 2, p.N)
	require.Equal(t, [][]int{{1}, {1}}, p.ColRuns)
	require.Equal(t, [][]int{{1, 1}, {1}}, p.RowRuns)
}

func TestParseOneMissingHeader(t *testing.T) {
	src := "1\n1\n1\n1\n"
	_, err := parse.ParseOne(strings.NewReader(src), 2)
	require.ErrorIs(t, err, parse.ErrMissingHeader)
}

func TestParseOneTruncated(t *testing.T) {
	src := "$ puzzle\n1\n1\n"
	_, err := parse.ParseOne(strings.NewReader(src), 2)
	require.ErrorIs(t, err, parse.ErrTruncated)
}

func TestParseOneBadRunToken(t *testing.T) {
	src := "$ puzzle\nx\n1\n1\n1\n"
	_, err := parse.ParseOne(strings.NewReader(src), 2)
	require.ErrorIs(t, err, parse.ErrBadRunToken)
}

func TestParseTAAIFileReadsMultipleRecords(t *testing.T) {
	src := "$ a\n1\n1\n1\n1\n$ b\n\n\n\n\n"
	puzzles, err := parse.ParseTAAIFile(strings.NewReader(src), 2, 2)
	require.NoError(t, err)
	require.Len(t, puzzles, 2)
	require.Equal(t, [][]int{{1}, {1}}, puzzles[0].ColRuns)
	require.Equal(t, [][]int(nil), puzzles[1].ColRuns[0])
}

func TestBuildCluesRoundTripsThroughBuffer(t *testing.T) {
	p := &parse.Puzzle{
		N:       2,
		ColRuns: [][]int{{1}, {1}},
		RowRuns: [][]int{{1}, {1}},
	}
	buf := parse.EncodeBuffer(p.ColRuns, p.RowRuns)

	fromText, err := parse.BuildClues(p, zobrist.Default)
	require.NoError(t, err)

	fromBuffer, err := parse.BuildCluesFromBuffer(buf, 2, zobrist.Default)
	require.NoError(t, err)

	require.Len(t, fromText, 4)
	require.Len(t, fromBuffer, 4)
	for i := range fromText {
		require.Equal(t, fromText[i].HashKey, fromBuffer[i].HashKey)
	}
}
