// Package search implements the depth-first branch-and-bound layer on top
// of prober.Prober: DFSSearch's single-solution variant (spec.md §4.9),
// its two-solution uniqueness-verification variant (spec.md §4.10), and
// the explicit-stack ResumableSearch (spec.md §4.11) that serializes its
// frame stack to a checkpoint store when its node budget is exhausted.
//
// The non-resumable variants use native Go recursion: a goroutine stack
// grows on demand and comfortably accommodates the worst case of 2·N²
// frames spec.md §9 names, so no explicit-stack rewrite is needed there.
// ResumableSearch has no such freedom — its stack is exactly what gets
// serialized to disk, so it is the one variant built on an explicit
// array-backed stack of STACK_MAX_DEPTH frames.
package search
