// Package linecache implements the LineCache described in spec.md §3/§4.5:
// a fixed-size, open-addressed map from (clue fingerprint, current line
// word) to the settled line word the LineSolver DP would have produced.
//
// spec.md §9 raises, as an open question, whether comparing only the
// derived lookup key (clue.HashKey XOR word) is safe against collisions.
// This port takes the SHOULD it offers: every slot stores the full (HashKey,
// Word) pair and Lookup confirms an exact match before returning a hit, so
// a hash collision can only cost a cache miss, never a wrong answer.
package linecache
