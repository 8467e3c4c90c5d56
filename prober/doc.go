// Package prober implements the 2-SAT-style probing layer (spec.md §4.8):
// trial WHITE and BLACK on every eligible UNKNOWN cell, run the LineSolver
// driver on each trial's consequences, and either commit a color, intersect
// both trials into the board, or hand back a branching candidate once the
// sweep stalls.
//
// Prober.Probe implements the single-solution variant (spec.md §4.8).
// Prober.ProbeVerify implements the two-solution uniqueness variant
// (spec.md §4.10). Per spec.md §9's note that the two probers differ only
// in the cell-trial decision, both share the sweep loop, the
// dependency.Map bookkeeping, the branching heuristic, and the intersect
// helper in this file; only the per-cell outcome table differs.
package prober
