// Package nonogram implements a constraint-propagation and search engine
// for N x N Nonogram (Paint-by-Numbers) puzzles: a bit-packed board, a
// per-line dynamic-programming solver, a 2-SAT-style cell prober, and
// branch-and-bound depth-first search, in both single-shot and
// checkpointable/resumable forms.
//
// Package layout:
//
//   - bitops       packed 2-bit-per-cell line word arithmetic
//   - board        Board, LineClue, cell State
//   - workqueue    FIFO circular buffer of line indices
//   - linecache    fixed-size (clue, line) -> settled-line cache
//   - linesolver   per-line DP solver and the queue-driven Driver loop
//   - dependency   per-cell probe eligibility tracking
//   - prober       single- and two-solution cell probing
//   - search       DFS search (direct, verification, and resumable)
//   - parse        TAAI clue-file text and buffer formats
//   - taaifmt      TAAI solution grid printer
//   - zobrist      deterministic clue fingerprint table
//   - engine       process-wide solving context (Engine)
//   - cmd/nonogramctl  CLI driver: solve, generate, batch
//
// See DESIGN.md for the grounding of each package's design and
// dependency choices, and SPEC_FULL.md for the full functional
// specification this module implements.
package nonogram
