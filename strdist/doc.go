// Package strdist computes a bounded Levenshtein edit distance between two
// strings, wrapped as a bounds.Bounded edit.
//
// StringEdit fills the classic (m+1)x(n+1) distance matrix one row per
// TightenBounds call rather than all at once, and derives a narrowing
// Range from the matrix's 1-Lipschitz property: adding one more row can
// change the target cell by at most 1, the same incremental-bound
// technique package dtw applies to Dynamic Time Warping's DP table.
// MemoryMode mirrors dtw.MemoryMode: only FullMatrix retains every row,
// which is required to back-trace a character-level edit script.
package strdist
