// Package engine ties bitops/board/linesolver/linecache/prober/search
// together behind the context object spec.md §9's Design Notes ask for: a
// value owning the process-wide LineCache and Zobrist table, so a caller
// can run several independent Engines (e.g. one per worker goroutine in a
// batch run) without sharing mutable globals.
package engine
