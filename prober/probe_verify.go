// File: probe_verify.go
// Role: the two-solution (uniqueness) Prober variant (spec.md §4.10).

package prober

import (
	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/status"
)

// ProbeVerify is the uniqueness-verification counterpart to Probe: every
// cell trial always runs *both* colors (no early commit on a single
// conflict), and the outcome pair is decided by spec.md §4.10's table.
// recorded holds the first completed solution this verify search has
// observed across any branch so far; recorded.N == 0 means "none yet".
// ProbeVerify writes into *recorded the first time a solution surfaces.
// It returns ManySolution when both trials of one cell solve, or when a
// mixed SOLVED/UNSOLVED trial pair or an intersection surfaces a solution
// different from *recorded. When one color solves and the other conflicts
// it returns Solved without comparing against *recorded; the caller's
// combination of branch results decides multiplicity in that case.
func (p *Prober) ProbeVerify(b *board.Board, recorded *board.Board) (status.Status, *Branch) {
	for {
		p.dep.BeginSweep()

		haveBest := false
		bestScore := 0.0
		var bestBw, bestBb board.Board

		for j := 0; j < p.n; j++ {
			for i := 0; i < p.n; i++ {
				if b.Get(i, j) != board.Unknown {
					continue
				}
				if !p.dep.Eligible(i, j) {
					continue
				}

				snap := b.Snapshot()
				touched := p.dep.BeginProbe()

				sw, bw := p.trial(b, i, j, board.White, touched)
				b.Restore(snap)
				sb, bb := p.trial(b, i, j, board.Black, touched)
				b.Restore(snap)
				p.dep.EndProbe(i, j)

				switch {
				case sw == status.Solved && sb == status.Solved:
					*recorded = bb
					*b = bw
					return status.ManySolution, nil

				case sw == status.Solved && sb == status.Conflict:
					*b = bw
					if recorded.N == 0 {
						*recorded = bw
					}
					return status.Solved, nil

				case sw == status.Conflict && sb == status.Solved:
					*b = bb
					if recorded.N == 0 {
						*recorded = bb
					}
					return status.Solved, nil

				case sw == status.Conflict && sb == status.Conflict:
					return status.Conflict, nil

				case sw == status.Solved && sb == status.Unsolved:
					if recorded.N == 0 {
						*recorded = bw
						*b = bb
						p.dep.MergeIntoTemp()
					} else if !sameSolution(recorded, &bw) {
						*b = bw
						return status.ManySolution, nil
					} else {
						*b = bb
						p.dep.MergeIntoTemp()
					}

				case sw == status.Unsolved && sb == status.Solved:
					if recorded.N == 0 {
						*recorded = bb
						*b = bw
						p.dep.MergeIntoTemp()
					} else if !sameSolution(recorded, &bb) {
						*b = bb
						return status.ManySolution, nil
					} else {
						*b = bw
						p.dep.MergeIntoTemp()
					}

				default: // both Unsolved: intersect
					st, changed := p.intersectAndPropagate(b, &bw, &bb)
					if changed {
						switch st {
						case status.Solved:
							if recorded.N != 0 && !sameSolution(recorded, b) {
								return status.ManySolution, nil
							}
							if recorded.N == 0 {
								*recorded = b.Snapshot()
							}
							return status.Solved, nil
						case status.Conflict:
							return status.Conflict, nil
						default:
							p.dep.MergeIntoTemp()
						}
						continue
					}

					score := branchScore(bw.Determined, bb.Determined)
					if !haveBest || score > bestScore {
						haveBest = true
						bestScore = score
						bestBw, bestBb = bw, bb
					}
				}
			}
		}

		stalled := p.dep.Stalled()
		p.dep.EndSweep()
		if stalled {
			if !haveBest {
				return status.Unsolved, nil
			}
			return status.Unsolved, &Branch{FirstGo: bestBw, SecondGo: bestBb}
		}
	}
}
