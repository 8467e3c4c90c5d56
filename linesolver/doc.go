// Package linesolver implements the per-line dynamic-programming
// propagator (spec.md §4.6 LineSolver) and the queue-driven Driver that
// repeatedly applies it until the WorkQueue drains (spec.md §4.6 "Driver
// loop").
//
// The DP recursion's base cases are taken from the original Python
// reference (line_solver.py's sprint_settle) rather than spec.md's
// slightly compressed restatement: the original treats position -1 with
// zero runs remaining as success (a run that ends exactly at the line
// start recurses into i=-1), which spec.md's three numbered base-case
// rules don't spell out explicitly. Implementing only spec.md's literal
// "i<0 => conflict" rule would reject every line whose first run starts at
// position 0 — so this port follows the original's merged rule instead:
// i<=0 succeeds iff j==0.
package linesolver
