package diff_test

import (
	"testing"

	"github.com/katalvlaran/structdiff/diff"
	"github.com/katalvlaran/structdiff/edit"
	"github.com/katalvlaran/structdiff/treenode"
	"github.com/stretchr/testify/require"
)

func str(t *testing.T, s string) *treenode.StringNode {
	t.Helper()

	return treenode.NewStringNode(s, true)
}

func kvp(t *testing.T, key string, value treenode.Node) *treenode.KeyValuePairNode {
	t.Helper()
	p, err := treenode.NewKeyValuePairNode(str(t, key), value)
	require.NoError(t, err)

	return p
}

// TestDiffStringScenario diffs two StringNode leaves character by character.
func TestDiffStringScenario(t *testing.T) {
	a := str(t, "abcdef")
	b := str(t, "azced")

	e := diff.Diff(a, b, diff.DefaultOptions())
	require.Equal(t, edit.StringEditKind, e.Kind())
	require.Equal(t, int64(3), e.Bounds().UpperBound())

	subs := e.SubEdits()
	kinds := make([]edit.EditKind, len(subs))
	for i, s := range subs {
		kinds[i] = s.Kind()
	}
	require.Equal(t, []edit.EditKind{
		edit.MatchKind, edit.RemoveKind, edit.InsertKind, edit.MatchKind,
		edit.RemoveKind, edit.MatchKind, edit.RemoveKind, edit.InsertKind,
	}, kinds)
}

// TestDiffMappingScenario diffs two MappingNode values entry by entry.
func TestDiffMappingScenario(t *testing.T) {
	a, err := treenode.NewMappingNode([]*treenode.KeyValuePairNode{
		kvp(t, "test", str(t, "foo")),
		kvp(t, "baz", treenode.NewIntegerNode(1)),
	})
	require.NoError(t, err)
	b, err := treenode.NewMappingNode([]*treenode.KeyValuePairNode{
		kvp(t, "test", str(t, "bar")),
		kvp(t, "baz", treenode.NewIntegerNode(2)),
	})
	require.NoError(t, err)

	e := diff.Diff(a, b, diff.DefaultOptions())
	require.Equal(t, int64(4), e.Bounds().UpperBound())
	require.Equal(t, edit.MappingEditKind, e.Kind())
	for _, s := range e.SubEdits() {
		require.Equal(t, edit.KeyValuePairEditKind, s.Kind())
	}
}

// TestDiffOrderedListRemovalScenario diffs two ListNode values where an element was removed.
func TestDiffOrderedListRemovalScenario(t *testing.T) {
	a, err := treenode.NewListNode(ints(t, 0, 1, 2, 3, 4, 5))
	require.NoError(t, err)
	b, err := treenode.NewListNode(ints(t, 1, 2, 3, 4, 5))
	require.NoError(t, err)

	e := diff.Diff(a, b, diff.DefaultOptions())
	require.Equal(t, int64(1), e.Bounds().UpperBound())

	subs := e.SubEdits()
	require.Len(t, subs, 6)
	require.Equal(t, edit.RemoveKind, subs[0].Kind())
	for _, s := range subs[1:] {
		require.Equal(t, edit.MatchKind, s.Kind())
		require.Equal(t, int64(0), s.Bounds().UpperBound())
	}
}

// TestDiffFixedKeyMappingScenario diffs two FixedKeyMappingNode values, where key edits are never allowed.
func TestDiffFixedKeyMappingScenario(t *testing.T) {
	a, err := treenode.NewFixedKeyMappingNode([]*treenode.KeyValuePairNode{
		kvp(t, "a", treenode.NewIntegerNode(1)),
		kvp(t, "b", treenode.NewIntegerNode(2)),
	})
	require.NoError(t, err)
	b, err := treenode.NewFixedKeyMappingNode([]*treenode.KeyValuePairNode{
		kvp(t, "a", treenode.NewIntegerNode(1)),
		kvp(t, "c", treenode.NewIntegerNode(2)),
	})
	require.NoError(t, err)

	opts := diff.DefaultOptions()
	opts.AllowKeyEdits = true // irrelevant: FixedKeyMappingNode always forbids key edits
	e := diff.Diff(a, b, opts)
	require.Equal(t, int64(4), e.Bounds().UpperBound()) // Remove(b:2) + Insert(c:2) = 2 + 2

	subs := e.SubEdits()
	require.Len(t, subs, 3)
	require.Equal(t, edit.KeyValuePairEditKind, subs[0].Kind())
	require.Equal(t, int64(0), subs[0].Bounds().UpperBound())
	require.Equal(t, edit.RemoveKind, subs[1].Kind())
	require.Equal(t, edit.InsertKind, subs[2].Kind())
}

// TestDiffXMLScenario diffs two XMLElementNode values.
func TestDiffXMLScenario(t *testing.T) {
	attrsA, err := treenode.NewFixedKeyMappingNode([]*treenode.KeyValuePairNode{kvp(t, "a", str(t, "1"))})
	require.NoError(t, err)
	attrsB, err := treenode.NewFixedKeyMappingNode([]*treenode.KeyValuePairNode{kvp(t, "a", str(t, "2"))})
	require.NoError(t, err)
	childrenA, err := treenode.NewListNode([]treenode.Node{str(t, "t")})
	require.NoError(t, err)
	childrenB, err := treenode.NewListNode([]treenode.Node{str(t, "t")})
	require.NoError(t, err)
	a, err := treenode.NewXMLElementNode("x", attrsA, childrenA)
	require.NoError(t, err)
	b, err := treenode.NewXMLElementNode("x", attrsB, childrenB)
	require.NoError(t, err)

	e := diff.Diff(a, b, diff.DefaultOptions())
	require.Equal(t, edit.XMLElementEditKind, e.Kind())
	require.Equal(t, int64(1), e.Bounds().UpperBound())
}

// TestDiffIdentityIsZeroCost checks that diffing a tree against itself
// always costs 0, across a representative sample of node shapes.
func TestDiffIdentityIsZeroCost(t *testing.T) {
	list, err := treenode.NewListNode(ints(t, 1, 2, 3))
	require.NoError(t, err)
	mapping, err := treenode.NewMappingNode([]*treenode.KeyValuePairNode{kvp(t, "k", treenode.NewIntegerNode(1))})
	require.NoError(t, err)

	for _, n := range []treenode.Node{
		treenode.NewIntegerNode(42),
		str(t, "hello"),
		treenode.NewBoolNode(true),
		list,
		mapping,
	} {
		e := diff.Diff(n, n, diff.DefaultOptions())
		require.Equal(t, int64(0), e.Bounds().UpperBound(), "identity diff of %T must cost 0", n)
	}
}

// TestDiffSizeBoundNeverExceedsSumOfSizes checks the size-bound
// property.
func TestDiffSizeBoundNeverExceedsSumOfSizes(t *testing.T) {
	a := str(t, "completely different")
	b := treenode.NewIntegerNode(7)

	e := diff.Diff(a, b, diff.DefaultOptions())
	require.LessOrEqual(t, e.Bounds().UpperBound(), a.TotalSize()+b.TotalSize())
}

func ints(t *testing.T, vs ...int64) []treenode.Node {
	t.Helper()
	out := make([]treenode.Node, len(vs))
	for i, v := range vs {
		out[i] = treenode.NewIntegerNode(v)
	}

	return out
}
