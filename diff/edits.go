package diff

import (
	"github.com/katalvlaran/structdiff/edit"
	"github.com/katalvlaran/structdiff/seqalign"
	"github.com/katalvlaran/structdiff/setmatch"
	"github.com/katalvlaran/structdiff/strdist"
	"github.com/katalvlaran/structdiff/treenode"
)

// Edits resolves the edit between a and b by a type-switch on their pair of
// kinds: same-leaf-type pairs produce a leaf-cost Match (or, for strings,
// a bounded Levenshtein StringEdit); different-leaf-type pairs
// and any container/non-matching-kind pair produce a full-replace Match;
// same-container-type pairs delegate to the appropriate aligner/matcher.
func Edits(a, b treenode.Node, opts Options) edit.Edit {
	if a.Kind() != b.Kind() {
		return fullReplace(a, b)
	}

	switch av := a.(type) {
	case *treenode.IntegerNode:
		return edit.NewMatch(a, b, integerLeafCost(av.Value, b.(*treenode.IntegerNode).Value))
	case *treenode.FloatNode:
		return edit.NewMatch(a, b, boolFloatLeafCost(av.Value == b.(*treenode.FloatNode).Value))
	case *treenode.BoolNode:
		return edit.NewMatch(a, b, boolFloatLeafCost(av.Value == b.(*treenode.BoolNode).Value))
	case *treenode.NullNode:
		return edit.NewMatch(a, b, 0)
	case *treenode.StringNode:
		bv := b.(*treenode.StringNode)
		se, err := strdist.NewStringEdit(av, bv, strdist.DefaultOptions())
		if err != nil {
			// av/bv are always valid StringNode values here, so the only
			// way NewStringEdit fails is an Options misuse, which
			// DefaultOptions never triggers.
			panic(err)
		}

		return se
	case *treenode.ListNode:
		bv := b.(*treenode.ListNode)
		costFn := func(x, y treenode.Node) edit.Edit { return Edits(x, y, opts) }

		return seqalign.Align(a, b, av.Children, bv.Children, costFn, opts.Seqalign)
	case *treenode.MultiSetNode:
		bv := b.(*treenode.MultiSetNode)
		costFn := func(x, y treenode.Node) edit.Edit { return Edits(x, y, opts) }

		return setmatch.NewMultiSetEdit(a, b, av.Children, bv.Children, costFn)
	case *treenode.MappingNode:
		bv := b.(*treenode.MappingNode)
		costFn := func(x, y treenode.Node) edit.Edit { return Edits(x, y, opts) }

		return setmatch.NewMappingEdit(a, b, av.Pairs, bv.Pairs, costFn, opts.setmatchOptions())
	case *treenode.FixedKeyMappingNode:
		bv := b.(*treenode.FixedKeyMappingNode)
		costFn := func(x, y treenode.Node) edit.Edit { return Edits(x, y, opts) }

		// FixedKeyMappingNode forbids key edits unconditionally, regardless
		// of opts.AllowKeyEdits.
		return setmatch.NewMappingEdit(a, b, av.Pairs, bv.Pairs, costFn, setmatch.Options{AllowKeyEdits: false})
	case *treenode.KeyValuePairNode:
		bv := b.(*treenode.KeyValuePairNode)

		return setmatch.NewKeyValuePairEdit(a, b, Edits(av.Key, bv.Key, opts), Edits(av.Value, bv.Value, opts))
	case *treenode.XMLElementNode:
		bv := b.(*treenode.XMLElementNode)

		return newXMLElementEdit(av, bv, opts)
	default:
		return fullReplace(a, b)
	}
}

// fullReplace is the "different type" / "container vs other type" branch:
// a Match whose cost is the sum of both total sizes.
func fullReplace(a, b treenode.Node) edit.Edit {
	return edit.NewMatch(a, b, a.TotalSize()+b.TotalSize())
}

// integerLeafCost is |x − y|, capped at max(|x|, |y|) so a mismatch never
// costs more than replacing both values outright.
func integerLeafCost(x, y int64) int64 {
	d := x - y
	if d < 0 {
		d = -d
	}
	ax, ay := x, y
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	capV := ax
	if ay > capV {
		capV = ay
	}
	if d > capV {
		return capV
	}

	return d
}

// boolFloatLeafCost charges 1 for a bool or float mismatch, 0 for a match.
func boolFloatLeafCost(equal bool) int64 {
	if equal {
		return 0
	}

	return 1
}
