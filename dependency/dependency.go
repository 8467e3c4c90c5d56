// File: dependency.go
// Role: the DependencyMap's three cumulative bitsets (update, temp_update,
// this_update) plus the per-cell point_tables (spec.md §4.7).
// Determinism: line indices run [0, 2N), so a uint64 bitset covers every
// N <= MaxN this engine supports.

package dependency

import "github.com/vlaran/nonogram/board"

// Map tracks, per cell, which lines were touched the last time that cell
// was probed, plus the cumulative bitsets the Prober's fixpoint loop needs
// to decide which cells are worth probing again.
type Map struct {
	point      [board.MaxN][board.MaxN]uint64
	update     uint64
	tempUpdate uint64
	thisUpdate uint64
}

// New returns a zeroed Map. The first sweep after New (or after Reset)
// always probes every cell, since update == 0 is the documented
// first-sweep escape hatch (spec.md §4.7).
func New() *Map {
	return &Map{}
}

// Reset clears all bitsets and point tables back to the first-sweep state.
func (m *Map) Reset() {
	*m = Map{}
}

// BeginSweep zeros temp_update at the start of a Prober fixpoint pass.
func (m *Map) BeginSweep() {
	m.tempUpdate = 0
}

// Stalled reports whether this sweep's temp_update is still zero, i.e. no
// cell probe committed a change — spec.md §4.8 step 4's stall condition.
// Must be called before EndSweep, which folds temp_update away.
func (m *Map) Stalled() bool {
	return m.tempUpdate == 0
}

// EndSweep folds this sweep's temp_update into the cumulative update
// bitset, per spec.md §4.7 step 3.
func (m *Map) EndSweep() {
	m.update |= m.tempUpdate
}

// Eligible reports whether cell (i,j) should be probed this sweep: either
// this is the first sweep (update == 0), or some line this cell's last
// probe touched has since been re-propagated.
func (m *Map) Eligible(i, j int) bool {
	return m.update == 0 || m.update&m.point[i][j] != 0
}

// BeginProbe zeros this_update and returns a pointer to it, suitable for
// passing directly as linesolver.Touched: the driver loop ORs each
// processed line index's bit into *touched as it pops the queue.
func (m *Map) BeginProbe() *uint64 {
	m.thisUpdate = 0
	return &m.thisUpdate
}

// EndProbe stores the lines touched during the most recent BeginProbe
// window into point_tables[i][j] (spec.md §4.7: "stores this_update into
// point_tables[i][j]").
func (m *Map) EndProbe(i, j int) {
	m.point[i][j] = m.thisUpdate
}

// MergeIntoTemp ORs the most recent this_update into temp_update, for the
// cases in spec.md §4.8 where a cell's trial line set must be folded into
// this sweep's temp_update (every branch except those that end the probe
// with SOLVED/CONFLICT, and the one where both trials are UNSOLVED and
// intersecting them changes nothing).
func (m *Map) MergeIntoTemp() {
	m.tempUpdate |= m.thisUpdate
}
