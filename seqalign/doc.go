// Package seqalign aligns two ordered child sequences (order-sensitive
// containers) into a ListEdit via branch-and-bound search
// over a dynamic-programming grid of interval-bounded cells, the same
// admissible-lower-bound, deterministic-branching technique package tsp's
// bbEngine applies to Hamiltonian-cycle search.
//
// Each grid cell (i, j) bounds the cost of aligning a[:i] against b[:j] as
// the elementwise minimum of three candidate continuations — match a[i-1]
// with b[j-1], remove a[i-1], or insert b[j-1] — each itself a sum of a
// prior cell's bound and one terminal edit's bound. Recursive per-pair
// match costs (costFn) are constructed eagerly when the grid is built, but
// each cell's own Bounds/TightenBounds stay lazy and narrowing, so the
// overall ListEdit still honors the incremental bounds.Bounded contract:
// a caller can stop tightening at any point and read a valid, if not yet
// definitive, Range.
package seqalign
