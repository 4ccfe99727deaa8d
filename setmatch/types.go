package setmatch

import (
	"github.com/katalvlaran/structdiff/edit"
	"github.com/katalvlaran/structdiff/treenode"
)

// CostFunc recursively prices the edit between two nodes of arbitrary kind,
// dependency-injected so setmatch never imports package diff (which would
// create an import cycle).
type CostFunc func(a, b treenode.Node) edit.Edit

// Options controls mapping-key matching. MultiSetNode ignores it entirely:
// multiset elements have no keys to preserve.
type Options struct {
	// AllowKeyEdits permits cross-key matching (an exact minimum-cost
	// assignment) once the exact-key fast path is exhausted. FixedKeyMappingNode sets this to false: any
	// pair left over after exact-key matching is Remove/Insert'd whole.
	AllowKeyEdits bool
}

// DefaultOptions returns the MappingNode default: key edits allowed.
func DefaultOptions() Options {
	return Options{AllowKeyEdits: true}
}
