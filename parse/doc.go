// Package parse implements the TAAI clue-file format (spec.md §6
// "External Interfaces"): a text record per puzzle (a `$`-prefixed header
// line followed by 2N clue lines) and the internal `'a'+n-1`/`'z'`
// delimited buffer encoding of the same data.
package parse
