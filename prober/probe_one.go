// File: probe_one.go
// Role: the single-solution Prober variant (spec.md §4.8).

package prober

import (
	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/status"
)

// Probe runs spec.md §4.8's fixpoint to completion: repeated sweeps over
// every eligible UNKNOWN cell, trialling WHITE then BLACK, committing or
// intersecting as each pair of trial outcomes dictates, until the board is
// SOLVED, a CONFLICT is detected, or a sweep makes no committed change
// (stall). On stall, Probe returns Unsolved and a Branch holding the two
// candidate boards for the highest-scoring cell under the branching
// heuristic; DFSSearch consumes that Branch to pick first_go/second_go.
func (p *Prober) Probe(b *board.Board) (status.Status, *Branch) {
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

				switch sw {
				case status.Solved:
					*b = bw
					return status.Solved, nil

				case status.Conflict:
					b.Restore(snap)
					sb, bb := p.trial(b, i, j, board.Black, touched)
					p.dep.EndProbe(i, j)

					switch sb {
					case status.Solved:
						*b = bb
						return status.Solved, nil
					case status.Conflict:
						b.Restore(snap)
						return status.Conflict, nil
					default:
						*b = bb
						p.dep.MergeIntoTemp()
					}

				default: // white Unsolved
					b.Restore(snap)
					sb, bb := p.trial(b, i, j, board.Black, touched)
					p.dep.EndProbe(i, j)

					switch sb {
					case status.Solved:
						*b = bb
						return status.Solved, nil
					case status.Conflict:
						*b = bw
						p.dep.MergeIntoTemp()
					default:
						b.Restore(snap)
						st, changed := p.intersectAndPropagate(b, &bw, &bb)
						if changed {
							switch st {
							case status.Solved:
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
