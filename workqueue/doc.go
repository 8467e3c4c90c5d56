// Package workqueue implements the bounded ring buffer of line indices
// awaiting re-propagation (spec.md §3 WorkQueue, §4.4). Capacity is fixed
// at 2N+1; a parallel membership array makes repeated Push calls no-ops, so
// the queue never holds more than 2N distinct indices at once.
package workqueue
