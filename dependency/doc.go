// Package dependency implements the DependencyMap (spec.md §4.7): a
// per-cell bitset of which lines were re-propagated as a consequence of
// probing that cell, used by the Prober to skip cells no recent
// propagation could have affected.
package dependency
