package formatter_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/structdiff/diff"
	"github.com/katalvlaran/structdiff/edit"
	"github.com/katalvlaran/structdiff/format/formatter"
	"github.com/katalvlaran/structdiff/format/printer"
	"github.com/katalvlaran/structdiff/treenode"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, e edit.Edit) string {
	t.Helper()
	var buf bytes.Buffer
	p := printer.New(&buf)
	p.SetColorEnabled(false)
	formatter.New(p, formatter.DefaultOptions()).Format(e)

	return buf.String()
}

func str(s string) *treenode.StringNode { return treenode.NewStringNode(s, true) }

func TestFormatterRendersUnchangedLeafPlain(t *testing.T) {
	a := treenode.NewIntegerNode(5)
	b := treenode.NewIntegerNode(5)
	e := diff.Diff(a, b, diff.DefaultOptions())
	require.Equal(t, "5", render(t, e))
}

func TestFormatterRendersChangedLeafAsOldArrowNew(t *testing.T) {
	a := treenode.NewIntegerNode(5)
	b := treenode.NewIntegerNode(9)
	e := diff.Diff(a, b, diff.DefaultOptions())
	require.Equal(t, "5 -> 9", render(t, e))
}

func TestFormatterRendersStringScriptInline(t *testing.T) {
	a := str("ab")
	b := str("ab")
	e := diff.Diff(a, b, diff.DefaultOptions())
	require.Equal(t, `"ab"`, render(t, e))
}

func TestFormatterRendersListAsBracketedBlock(t *testing.T) {
	a, err := treenode.NewListNode([]treenode.Node{treenode.NewIntegerNode(1), treenode.NewIntegerNode(2)})
	require.NoError(t, err)
	b, err := treenode.NewListNode([]treenode.Node{treenode.NewIntegerNode(1), treenode.NewIntegerNode(2)})
	require.NoError(t, err)

	e := diff.Diff(a, b, diff.DefaultOptions())
	require.Equal(t, "[\n  1\n  2\n]", render(t, e))
}

func TestFormatterRendersEmptyListAsEmptyBrackets(t *testing.T) {
	a, err := treenode.NewListNode(nil)
	require.NoError(t, err)
	b, err := treenode.NewListNode(nil)
	require.NoError(t, err)

	e := diff.Diff(a, b, diff.DefaultOptions())
	require.Equal(t, "[]", render(t, e))
}

func TestFormatterRendersMappingEntryAsKeyColonValue(t *testing.T) {
	p1, err := treenode.NewKeyValuePairNode(str("k"), treenode.NewIntegerNode(1))
	require.NoError(t, err)
	a, err := treenode.NewMappingNode([]*treenode.KeyValuePairNode{p1})
	require.NoError(t, err)

	p2, err := treenode.NewKeyValuePairNode(str("k"), treenode.NewIntegerNode(1))
	require.NoError(t, err)
	b, err := treenode.NewMappingNode([]*treenode.KeyValuePairNode{p2})
	require.NoError(t, err)

	e := diff.Diff(a, b, diff.DefaultOptions())
	require.Equal(t, "{\n  \"k\": 1\n}", render(t, e))
}

func TestFormatterStylesRemoveAndInsertWhenColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	p := printer.New(&buf)
	p.SetColorEnabled(true)
	f := formatter.New(p, formatter.DefaultOptions())

	f.Format(edit.NewRemove(treenode.NewIntegerNode(1)))
	require.Greater(t, buf.Len(), len("1"))
}

func TestFormatterJoinListsCollapsesUnchangedList(t *testing.T) {
	a, err := treenode.NewListNode([]treenode.Node{treenode.NewIntegerNode(1), treenode.NewIntegerNode(2)})
	require.NoError(t, err)
	b, err := treenode.NewListNode([]treenode.Node{treenode.NewIntegerNode(1), treenode.NewIntegerNode(2)})
	require.NoError(t, err)
	e := diff.Diff(a, b, diff.DefaultOptions())

	var buf bytes.Buffer
	p := printer.New(&buf)
	p.SetColorEnabled(false)
	formatter.New(p, formatter.Options{JoinLists: true}).Format(e)
	require.Equal(t, "[ 1, 2 ]", buf.String())
}

func TestFormatterJoinListsLeavesChangedListMultiLine(t *testing.T) {
	a, err := treenode.NewListNode([]treenode.Node{treenode.NewIntegerNode(1), treenode.NewIntegerNode(2)})
	require.NoError(t, err)
	b, err := treenode.NewListNode([]treenode.Node{treenode.NewIntegerNode(1), treenode.NewIntegerNode(9)})
	require.NoError(t, err)
	e := diff.Diff(a, b, diff.DefaultOptions())

	var buf bytes.Buffer
	p := printer.New(&buf)
	p.SetColorEnabled(false)
	formatter.New(p, formatter.Options{JoinLists: true}).Format(e)
	// Remove(2)+Insert(9) (cost 2) undercuts a same-position Match (cost 7),
	// so the aligner reports them as a deletion followed by an insertion.
	require.Equal(t, "[\n  1\n  2\n  9\n]", buf.String())
}

func TestFormatterJoinDictItemsCollapsesUnchangedMapping(t *testing.T) {
	p1, err := treenode.NewKeyValuePairNode(str("k"), treenode.NewIntegerNode(1))
	require.NoError(t, err)
	a, err := treenode.NewMappingNode([]*treenode.KeyValuePairNode{p1})
	require.NoError(t, err)
	p2, err := treenode.NewKeyValuePairNode(str("k"), treenode.NewIntegerNode(1))
	require.NoError(t, err)
	b, err := treenode.NewMappingNode([]*treenode.KeyValuePairNode{p2})
	require.NoError(t, err)
	e := diff.Diff(a, b, diff.DefaultOptions())

	var buf bytes.Buffer
	p := printer.New(&buf)
	p.SetColorEnabled(false)
	formatter.New(p, formatter.Options{JoinDictItems: true}).Format(e)
	require.Equal(t, `{ "k": 1 }`, buf.String())
}
