package edit

import (
	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/treenode"
)

// Match replaces from's leaf-equivalent content with to's at a fixed,
// already-known Cost. It is a terminal edit: TightenBounds
// is a no-op that always returns false.
type Match struct {
	from, to treenode.Node
	cost     int64
	valid    bool
}

// NewMatch constructs a Match with a pre-computed leaf cost.
func NewMatch(from, to treenode.Node, cost int64) *Match {
	return &Match{from: from, to: to, cost: cost, valid: true}
}

// Kind implements Edit.
func (m *Match) Kind() EditKind { return MatchKind }

// FromNode implements Edit.
func (m *Match) FromNode() treenode.Node { return m.from }

// ToNode implements Edit.
func (m *Match) ToNode() treenode.Node { return m.to }

// Valid implements Edit.
func (m *Match) Valid() bool { return m.valid }

// SetValid implements Edit.
func (m *Match) SetValid(v bool) { m.valid = v }

// SubEdits implements Edit: Match is terminal.
func (m *Match) SubEdits() []Edit { return nil }

// Bounds implements bounds.Bounded: always definitive at Cost.
func (m *Match) Bounds() bounds.Range {
	if !m.valid {
		return bounds.InfiniteRange()
	}

	return bounds.Exact(m.cost)
}

// TightenBounds implements bounds.Bounded: Match has no internal work.
func (m *Match) TightenBounds() bool { return false }

// IsComplete implements bounds.Bounded: Match is always complete.
func (m *Match) IsComplete() bool { return true }

// Remove deletes from in its entirety; its cost is from's TotalSize.
type Remove struct {
	from  treenode.Node
	valid bool
}

// NewRemove constructs a Remove edit.
func NewRemove(from treenode.Node) *Remove {
	return &Remove{from: from, valid: true}
}

// Kind implements Edit.
func (r *Remove) Kind() EditKind { return RemoveKind }

// FromNode implements Edit.
func (r *Remove) FromNode() treenode.Node { return r.from }

// ToNode implements Edit: Remove has no target.
func (r *Remove) ToNode() treenode.Node { return nil }

// Valid implements Edit.
func (r *Remove) Valid() bool { return r.valid }

// SetValid implements Edit.
func (r *Remove) SetValid(v bool) { r.valid = v }

// SubEdits implements Edit: Remove is terminal.
func (r *Remove) SubEdits() []Edit { return nil }

// Bounds implements bounds.Bounded.
func (r *Remove) Bounds() bounds.Range {
	if !r.valid {
		return bounds.InfiniteRange()
	}

	return bounds.Exact(r.from.TotalSize())
}

// TightenBounds implements bounds.Bounded: Remove has no internal work.
func (r *Remove) TightenBounds() bool { return false }

// IsComplete implements bounds.Bounded.
func (r *Remove) IsComplete() bool { return true }

// Insert adds to in its entirety; its cost is to's TotalSize. Insert
// carries no from_node of its own, but the outer container
// edit (e.g. ListEdit) records the position via its own bookkeeping, not
// via this type.
type Insert struct {
	to    treenode.Node
	valid bool
}

// NewInsert constructs an Insert edit.
func NewInsert(to treenode.Node) *Insert {
	return &Insert{to: to, valid: true}
}

// Kind implements Edit.
func (i *Insert) Kind() EditKind { return InsertKind }

// FromNode implements Edit: Insert has no source node. Returning the
// target here (rather than nil) keeps FromNode non-nil for every Edit;
// to's own TotalSize is what the cost is computed from either way.
func (i *Insert) FromNode() treenode.Node { return i.to }

// ToNode implements Edit.
func (i *Insert) ToNode() treenode.Node { return i.to }

// Valid implements Edit.
func (i *Insert) Valid() bool { return i.valid }

// SetValid implements Edit.
func (i *Insert) SetValid(v bool) { i.valid = v }

// SubEdits implements Edit: Insert is terminal.
func (i *Insert) SubEdits() []Edit { return nil }

// Bounds implements bounds.Bounded.
func (i *Insert) Bounds() bounds.Range {
	if !i.valid {
		return bounds.InfiniteRange()
	}

	return bounds.Exact(i.to.TotalSize())
}

// TightenBounds implements bounds.Bounded: Insert has no internal work.
func (i *Insert) TightenBounds() bool { return false }

// IsComplete implements bounds.Bounded.
func (i *Insert) IsComplete() bool { return true }
