// Package setmatch matches the unordered children of two containers —
// MultiSetNode, MappingNode, and key-fixed FixedKeyMappingNode — via an
// exact minimum-cost bipartite match, not an approximation of one.
//
// Every candidate (a[i], b[j]) pairing is priced once, up front, via an
// injected CostFunc. Those prices are themselves bounded computations (a
// nested container diff may need many rounds to become exact), so
// TightenBounds first drives every candidate's price to Definitive one at a
// time; once the full cost matrix is known exactly, it pads the matrix into
// a square one (extra columns standing in for "remove a[i]", extra rows for
// "insert b[j]", zero cost between two padding cells) and solves it in one
// shot with the Hungarian algorithm (Kuhn–Munkres, dual potentials, O(n^3)).
// That solve step is a single compute-once unit of work, the same shape
// edit.Match's TightenBounds uses for a fact that is already fully known.
//
// A nearest-neighbor matcher — commit whichever remaining pairing is
// cheapest, repeat — is not this: it can strand an expensive leftover
// pairing that a different, globally cheaper assignment would have
// avoided. That distinction is the same one package tsp draws between its
// greedyMatch and the exact Blossom matcher it defers behind
// ErrMatchingNotImplemented. A tree diff has no such escape hatch — an edit
// script is only trustworthy if no cheaper one exists — so this package
// closes the gap tsp leaves open rather than deferring it.
//
// MappingNode keys that compare exactly equal are paired first and
// unconditionally, deterministically, before the assignment runs over
// whatever remains; FixedKeyMappingNode (allow_key_edits=false) skips the
// assignment step entirely; anything left over becomes a whole-entry
// Remove or Insert.
package setmatch
