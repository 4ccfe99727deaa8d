package edit

import (
	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/treenode"
)

// CompoundEdit owns an ordered list of sub-edits; its bounds are their sum
// and TightenBounds advances whichever sub-edit is first non-definitive.
// Sub-edit ordering determines tightening order, not final cost — the sum
// is order-independent.
type CompoundEdit struct {
	from, to treenode.Node
	subs     []Edit
	valid    bool
}

// NewCompoundEdit constructs a CompoundEdit over subs, in the given order.
func NewCompoundEdit(from, to treenode.Node, subs []Edit) *CompoundEdit {
	return &CompoundEdit{from: from, to: to, subs: subs, valid: true}
}

// Kind implements Edit.
func (c *CompoundEdit) Kind() EditKind { return CompoundKind }

// FromNode implements Edit.
func (c *CompoundEdit) FromNode() treenode.Node { return c.from }

// ToNode implements Edit.
func (c *CompoundEdit) ToNode() treenode.Node { return c.to }

// Valid implements Edit.
func (c *CompoundEdit) Valid() bool { return c.valid }

// SetValid implements Edit. Invalidating a compound edit does not
// propagate to its sub-edits; Bounds/TightenBounds short-circuit instead,
// so sub-edits retain whatever partial work they had already done.
func (c *CompoundEdit) SetValid(v bool) { c.valid = v }

// SubEdits implements Edit, exposing sub-edits in tightening order.
func (c *CompoundEdit) SubEdits() []Edit { return c.subs }

// Bounds implements bounds.Bounded: the sum of every sub-edit's bounds.
func (c *CompoundEdit) Bounds() bounds.Range {
	if !c.valid {
		return bounds.InfiniteRange()
	}
	total := bounds.Exact(0)
	for _, s := range c.subs {
		total = total.Add(s.Bounds())
	}

	return total
}

// TightenBounds implements bounds.Bounded: find the first sub-edit whose
// bounds are non-definitive and tighten it once. Returns false once every
// sub-edit is definitive.
func (c *CompoundEdit) TightenBounds() bool {
	if !c.valid {
		return false
	}
	for _, s := range c.subs {
		if s.Bounds().Definitive() {
			continue
		}

		return s.TightenBounds()
	}

	return false
}

// IsComplete implements bounds.Bounded: true iff every sub-edit is
// complete.
func (c *CompoundEdit) IsComplete() bool {
	for _, s := range c.subs {
		if !s.IsComplete() {
			return false
		}
	}

	return true
}

// Flatten returns every terminal (non-compound) sub-edit reachable from e,
// in tightening order, as an explicit stateful walk rather than lazy
// iteration.
func Flatten(e Edit) []Edit {
	subs := e.SubEdits()
	if subs == nil {
		return []Edit{e}
	}
	out := make([]Edit, 0, len(subs))
	for _, s := range subs {
		out = append(out, Flatten(s)...)
	}

	return out
}
