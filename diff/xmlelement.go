package diff

import (
	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/edit"
	"github.com/katalvlaran/structdiff/treenode"
)

// XMLElementEdit diffs two XMLElementNode values as three independent
// sub-problems: tag, attributes, children.
type XMLElementEdit struct {
	from, to                         *treenode.XMLElementNode
	tagEdit, attrsEdit, childrenEdit edit.Edit
	valid                            bool
}

// newXMLElementEdit builds the three sub-edits: the tag name compared as a
// string (cost 0 when equal, else its Levenshtein distance), the attribute
// map compared as a FixedKeyMappingNode, and the child list compared as a
// ListNode.
func newXMLElementEdit(from, to *treenode.XMLElementNode, opts Options) *XMLElementEdit {
	tagEdit := Edits(treenode.NewStringNode(from.Tag, false), treenode.NewStringNode(to.Tag, false), opts)
	attrsEdit := Edits(from.Attributes, to.Attributes, opts)
	childrenEdit := Edits(from.Children, to.Children, opts)

	return &XMLElementEdit{from: from, to: to, tagEdit: tagEdit, attrsEdit: attrsEdit, childrenEdit: childrenEdit, valid: true}
}

// Kind implements edit.Edit.
func (x *XMLElementEdit) Kind() edit.EditKind { return edit.XMLElementEditKind }

// FromNode implements edit.Edit.
func (x *XMLElementEdit) FromNode() treenode.Node { return x.from }

// ToNode implements edit.Edit.
func (x *XMLElementEdit) ToNode() treenode.Node { return x.to }

// Valid implements edit.Edit.
func (x *XMLElementEdit) Valid() bool { return x.valid }

// SetValid implements edit.Edit.
func (x *XMLElementEdit) SetValid(v bool) { x.valid = v }

// SubEdits implements edit.Edit, returning [tagEdit, attrsEdit, childrenEdit].
func (x *XMLElementEdit) SubEdits() []edit.Edit {
	return []edit.Edit{x.tagEdit, x.attrsEdit, x.childrenEdit}
}

// Bounds implements bounds.Bounded: the sum of the three sub-edit ranges.
func (x *XMLElementEdit) Bounds() bounds.Range {
	if !x.valid {
		return bounds.InfiniteRange()
	}

	return x.tagEdit.Bounds().Add(x.attrsEdit.Bounds()).Add(x.childrenEdit.Bounds())
}

// TightenBounds tightens whichever of tag/attrs/children is not yet
// definitive, in that order, mirroring CompoundEdit.TightenBounds.
func (x *XMLElementEdit) TightenBounds() bool {
	if !x.valid {
		return false
	}
	for _, sub := range []edit.Edit{x.tagEdit, x.attrsEdit, x.childrenEdit} {
		if !sub.Bounds().Definitive() {
			return sub.TightenBounds()
		}
	}

	return false
}

// IsComplete implements bounds.Bounded.
func (x *XMLElementEdit) IsComplete() bool {
	return x.valid && x.tagEdit.IsComplete() && x.attrsEdit.IsComplete() && x.childrenEdit.IsComplete()
}
