// Package treenode defines the uniform tree data model structdiff diffs:
// scalar leaves (integer, float, bool, null, string) and containers
// (ordered list, unordered multiset, keyed mapping, key/value pair, and an
// XML-element shape).
//
// Nodes are built once by a parser (see package parse) and never mutated
// afterward; Node is implemented by pointer types so that each node has a
// stable identity usable as a map key, which is how the diff/edit packages
// attach edit annotations without subclassing (see AnnotationTable in
// package edit).
//
// Node deliberately does not know how to diff itself against another node:
// that dispatch lives in package diff, which can see every leaf and
// container package without creating an import cycle back into treenode.
package treenode
