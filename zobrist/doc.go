// Package zobrist builds the process-wide table of 64-bit fingerprint
// constants used to derive a Clue's hash_key (spec.md §3) and, combined
// with a line word, a LineCache lookup key (spec.md §4.5).
//
// The original engine seeds this table from the platform PRNG at process
// start, which makes two independent processes disagree on cache contents
// even for byte-identical puzzles — harmless for a single run, but at odds
// with the Determinism testable property (spec.md §8) once checkpoints or
// logs are compared across machines. This port derives the table
// deterministically from a fixed seed via SeaHash instead of math/rand,
// so the same seed always produces the same table everywhere.
package zobrist
