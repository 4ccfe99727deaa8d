package edit

import (
	"errors"

	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/treenode"
)

// Sentinel errors for edit construction and cancellation.
var (
	// ErrNilFromNode indicates an edit was constructed without its
	// required from_node.
	ErrNilFromNode = errors.New("edit: from_node must not be nil")

	// ErrCancelled names the case where the caller set Valid(false) on an
	// edit before it reached a definitive cost. No function in this module
	// returns it; package diff's Diff returns the invalid edit itself.
	ErrCancelled = errors.New("edit: cancelled (valid=false)")
)

// EditKind tags the concrete shape of an Edit for the formatter's explicit
// dispatch table.
type EditKind int

const (
	// MatchKind identifies *Match.
	MatchKind EditKind = iota
	// RemoveKind identifies *Remove.
	RemoveKind
	// InsertKind identifies *Insert.
	InsertKind
	// CompoundKind identifies *CompoundEdit.
	CompoundKind
	// StringEditKind identifies package strdist's StringEdit.
	StringEditKind
	// ListEditKind identifies package seqalign's ListEdit.
	ListEditKind
	// MultiSetEditKind identifies package setmatch's MultiSetEdit.
	MultiSetEditKind
	// MappingEditKind identifies package setmatch's MappingEdit.
	MappingEditKind
	// KeyValuePairEditKind identifies package setmatch's KeyValuePairEdit.
	KeyValuePairEditKind
	// XMLElementEditKind identifies package diff's XMLElementEdit.
	XMLElementEditKind
)

// Edit is the tagged-variant contract every concrete edit kind satisfies:
// a from_node, an optional to_node, a Bounded cost, a Kind for dispatch,
// and a Valid flag for cooperative cancellation.
type Edit interface {
	bounds.Bounded

	// Kind reports the concrete shape tag.
	Kind() EditKind

	// FromNode is the node being transformed; never nil.
	FromNode() treenode.Node

	// ToNode is the target node, or nil when the edit has none (Remove
	// has no target; see concrete types).
	ToNode() treenode.Node

	// Valid reports whether the edit is still live. An outer search sets
	// this to false to mark a dominated or cancelled branch.
	Valid() bool

	// SetValid flips the Valid flag. Once false, Bounds reports
	// bounds.InfiniteRange() and TightenBounds reports false.
	SetValid(bool)

	// SubEdits returns the immediate sub-edits of a compound edit, or nil
	// for a terminal edit (Match/Remove/Insert).
	SubEdits() []Edit
}
