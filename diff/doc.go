// Package diff is the top-level dispatcher and driver: Edits resolves the
// edit between any two treenode.Node values by a type-switch on their pair
// of kinds, and Diff runs the cooperative tighten loop to push that edit
// to a definitive cost, mirroring the dispatcher shape of tsp's top-level
// Solve function.
//
// Edits is the one place in the module where every leaf and container
// package is visible at once; strdist, seqalign, and setmatch each take an
// injected CostFunc precisely so they never need to import this package.
package diff
