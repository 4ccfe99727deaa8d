// Package randtree generates random treenode.Node values and related
// mutations for property-based testing, the same role package builder
// plays for graph fixtures: every shape is driven entirely by a caller-
// supplied *rand.Rand, so a fixed seed always reproduces the same tree.
package randtree
