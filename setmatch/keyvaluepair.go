package setmatch

import (
	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/edit"
	"github.com/katalvlaran/structdiff/treenode"
)

// KeyValuePairEdit edits one matched KeyValuePairNode entry: its keyEdit
// (always a Match at cost 0 for an exact-key pairing; a priced Match or
// recursive edit for a cross-key pairing under AllowKeyEdits) and its
// valueEdit (whatever costFn produced for the two values) are tightened
// independently, in the same "first non-definitive" order package edit's
// CompoundEdit uses, but KeyValuePairEdit keeps its own Kind so the
// formatter can render it as a mapping entry rather than a generic compound.
type KeyValuePairEdit struct {
	from, to           treenode.Node
	keyEdit, valueEdit edit.Edit
	valid              bool
}

// NewKeyValuePairEdit constructs a KeyValuePairEdit from its two priced
// sub-edits.
func NewKeyValuePairEdit(from, to treenode.Node, keyEdit, valueEdit edit.Edit) *KeyValuePairEdit {
	return &KeyValuePairEdit{from: from, to: to, keyEdit: keyEdit, valueEdit: valueEdit, valid: true}
}

// Kind implements edit.Edit.
func (k *KeyValuePairEdit) Kind() edit.EditKind { return edit.KeyValuePairEditKind }

// FromNode implements edit.Edit.
func (k *KeyValuePairEdit) FromNode() treenode.Node { return k.from }

// ToNode implements edit.Edit.
func (k *KeyValuePairEdit) ToNode() treenode.Node { return k.to }

// Valid implements edit.Edit.
func (k *KeyValuePairEdit) Valid() bool { return k.valid }

// SetValid implements edit.Edit.
func (k *KeyValuePairEdit) SetValid(v bool) { k.valid = v }

// SubEdits implements edit.Edit, returning [keyEdit, valueEdit].
func (k *KeyValuePairEdit) SubEdits() []edit.Edit { return []edit.Edit{k.keyEdit, k.valueEdit} }

// Bounds implements bounds.Bounded: the element-wise sum of the key and
// value ranges.
func (k *KeyValuePairEdit) Bounds() bounds.Range {
	if !k.valid {
		return bounds.InfiniteRange()
	}

	return k.keyEdit.Bounds().Add(k.valueEdit.Bounds())
}

// TightenBounds tightens whichever of keyEdit/valueEdit is not yet
// definitive, key first.
func (k *KeyValuePairEdit) TightenBounds() bool {
	if !k.valid {
		return false
	}
	if !k.keyEdit.Bounds().Definitive() {
		return k.keyEdit.TightenBounds()
	}
	if !k.valueEdit.Bounds().Definitive() {
		return k.valueEdit.TightenBounds()
	}

	return false
}

// IsComplete implements bounds.Bounded.
func (k *KeyValuePairEdit) IsComplete() bool {
	return k.valid && k.keyEdit.IsComplete() && k.valueEdit.IsComplete()
}
