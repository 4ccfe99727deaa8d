package seqalign_test

import (
	"testing"

	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/edit"
	"github.com/katalvlaran/structdiff/seqalign"
	"github.com/katalvlaran/structdiff/treenode"
	"github.com/stretchr/testify/require"
)

// leafCost is a tiny costFn usable without importing package diff (which
// would create an import cycle in the real tree): two integers match with
// cost |a-b|. It accepts IntegerNodes only and panics on any other kind.
func leafCost(a, b treenode.Node) edit.Edit {
	ai := a.(*treenode.IntegerNode)
	bi := b.(*treenode.IntegerNode)
	d := ai.Value - bi.Value
	if d < 0 {
		d = -d
	}

	return edit.NewMatch(a, b, d)
}

func ints(vs ...int64) []treenode.Node {
	out := make([]treenode.Node, len(vs))
	for i, v := range vs {
		out[i] = treenode.NewIntegerNode(v)
	}

	return out
}

func runToCompletion(t *testing.T, le *seqalign.ListEdit) bounds.Range {
	t.Helper()
	var prev bounds.Range
	first := true
	for {
		cur := le.Bounds()
		if !first {
			require.NoError(t, bounds.AssertMonotone(prev, cur))
		}
		prev, first = cur, false
		if le.IsComplete() {
			return cur
		}
		require.True(t, le.TightenBounds())
	}
}

func TestAlignIdenticalSequencesAllMatch(t *testing.T) {
	from := treenode.NewIntegerNode(0)
	to := treenode.NewIntegerNode(0)
	a := ints(1, 2, 3)
	b := ints(1, 2, 3)

	le := seqalign.Align(from, to, a, b, leafCost, seqalign.DefaultOptions())
	final := runToCompletion(t, le)
	require.Equal(t, bounds.Exact(0), final)

	subs := le.SubEdits()
	require.Len(t, subs, 3)
	for _, s := range subs {
		require.Equal(t, edit.MatchKind, s.Kind())
	}
}

func TestAlignInsertionInMiddle(t *testing.T) {
	from := treenode.NewIntegerNode(0)
	to := treenode.NewIntegerNode(0)
	a := ints(1, 3)
	b := ints(1, 2, 3)

	le := seqalign.Align(from, to, a, b, leafCost, seqalign.DefaultOptions())
	final := runToCompletion(t, le)
	require.Equal(t, bounds.Exact(1), final) // one Insert(2), cost = TotalSize(2) = 1

	subs := le.SubEdits()
	require.Len(t, subs, 3)
	require.Equal(t, edit.MatchKind, subs[0].Kind())
	require.Equal(t, edit.InsertKind, subs[1].Kind())
	require.Equal(t, edit.MatchKind, subs[2].Kind())
}

func TestAlignRemovalInMiddle(t *testing.T) {
	from := treenode.NewIntegerNode(0)
	to := treenode.NewIntegerNode(0)
	a := ints(1, 2, 3)
	b := ints(1, 3)

	le := seqalign.Align(from, to, a, b, leafCost, seqalign.DefaultOptions())
	final := runToCompletion(t, le)
	require.Equal(t, bounds.Exact(1), final)

	subs := le.SubEdits()
	require.Len(t, subs, 3)
	require.Equal(t, edit.MatchKind, subs[0].Kind())
	require.Equal(t, edit.RemoveKind, subs[1].Kind())
	require.Equal(t, edit.MatchKind, subs[2].Kind())
}

func TestAlignPreservesOrder(t *testing.T) {
	// i1<i2 must imply j1<j2 for every pair of matched positions: verify by
	// checking the match sequence's underlying values are monotonically
	// increasing in both source sequences.
	from := treenode.NewIntegerNode(0)
	to := treenode.NewIntegerNode(0)
	a := ints(1, 5, 9)
	b := ints(0, 5, 6, 9, 10)

	le := seqalign.Align(from, to, a, b, leafCost, seqalign.DefaultOptions())
	runToCompletion(t, le)

	subs := le.SubEdits()
	var lastA int64 = -1
	for _, s := range subs {
		if s.Kind() != edit.MatchKind {
			continue
		}
		v := s.FromNode().(*treenode.IntegerNode).Value
		require.Greater(t, v, lastA)
		lastA = v
	}
}

func TestAlignEmptySequences(t *testing.T) {
	from := treenode.NewIntegerNode(0)
	to := treenode.NewIntegerNode(0)

	le := seqalign.Align(from, to, nil, nil, leafCost, seqalign.DefaultOptions())
	require.True(t, le.IsComplete())
	require.Equal(t, bounds.Exact(0), le.Bounds())
	require.Empty(t, le.SubEdits())
}

func TestAlignPositionalFallbackPairsByIndex(t *testing.T) {
	from := treenode.NewIntegerNode(0)
	to := treenode.NewIntegerNode(0)
	a := ints(1, 2, 3)
	b := ints(1, 9, 3, 4)

	le := seqalign.Align(from, to, a, b, leafCost, seqalign.Options{Enabled: false})
	final := runToCompletion(t, le)
	// 3 matches (cost 0,7,0) + one trailing insert (TotalSize 1) = 8
	require.Equal(t, bounds.Exact(8), final)

	subs := le.SubEdits()
	require.Len(t, subs, 4)
	require.Equal(t, edit.MatchKind, subs[0].Kind())
	require.Equal(t, edit.MatchKind, subs[1].Kind())
	require.Equal(t, edit.MatchKind, subs[2].Kind())
	require.Equal(t, edit.InsertKind, subs[3].Kind())
}

func TestAlignInvalidReportsInfinite(t *testing.T) {
	from := treenode.NewIntegerNode(0)
	to := treenode.NewIntegerNode(0)
	le := seqalign.Align(from, to, ints(1), ints(1), leafCost, seqalign.DefaultOptions())
	le.SetValid(false)
	require.Equal(t, bounds.InfiniteRange(), le.Bounds())
	require.False(t, le.TightenBounds())
}
