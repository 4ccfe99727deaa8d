// Package parse builds a treenode.Node tree from an encoded document —
// JSON, YAML, XML, or CSV — via the BuildTree family of constructors.
// Every constructor returns a *ParseError rather than a bare error,
// carrying the source path and a human-readable message, the same
// struct-error shape as package flow's EdgeError.
package parse
