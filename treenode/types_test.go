package treenode_test

import (
	"testing"

	"github.com/katalvlaran/structdiff/treenode"
	"github.com/stretchr/testify/require"
)

func TestLeafTotalSize(t *testing.T) {
	require.Equal(t, int64(1), treenode.NewIntegerNode(42).TotalSize())
	require.Equal(t, int64(1), treenode.NewFloatNode(3.14).TotalSize())
	require.Equal(t, int64(1), treenode.NewBoolNode(true).TotalSize())
	require.Equal(t, int64(1), treenode.NewNullNode().TotalSize())
	require.Equal(t, int64(5), treenode.NewStringNode("hello", true).TotalSize())
}

func TestLeafEqual(t *testing.T) {
	require.True(t, treenode.NewIntegerNode(1).Equal(treenode.NewIntegerNode(1)))
	require.False(t, treenode.NewIntegerNode(1).Equal(treenode.NewIntegerNode(2)))
	require.False(t, treenode.Node(treenode.NewIntegerNode(1)).Equal(treenode.NewFloatNode(1)))
	require.True(t, treenode.NewStringNode("a", false).Equal(treenode.NewStringNode("a", true)))
	require.False(t, treenode.NewStringNode("a ", false).Equal(treenode.NewStringNode("a", false)))
}

func TestListNodeOrderedEqualAndSize(t *testing.T) {
	a, err := treenode.NewListNode([]treenode.Node{treenode.NewIntegerNode(1), treenode.NewIntegerNode(2)})
	require.NoError(t, err)
	b, err := treenode.NewListNode([]treenode.Node{treenode.NewIntegerNode(2), treenode.NewIntegerNode(1)})
	require.NoError(t, err)

	require.Equal(t, int64(2), a.TotalSize())
	require.False(t, a.Equal(b), "list equality is order-sensitive")

	c, err := treenode.NewListNode([]treenode.Node{treenode.NewIntegerNode(1), treenode.NewIntegerNode(2)})
	require.NoError(t, err)
	require.True(t, a.Equal(c))
}

func TestMultiSetNodeUnorderedEqual(t *testing.T) {
	a, err := treenode.NewMultiSetNode([]treenode.Node{treenode.NewIntegerNode(1), treenode.NewIntegerNode(2)})
	require.NoError(t, err)
	b, err := treenode.NewMultiSetNode([]treenode.Node{treenode.NewIntegerNode(2), treenode.NewIntegerNode(1)})
	require.NoError(t, err)

	require.True(t, a.Equal(b), "multiset equality ignores order")
}

func TestMultiSetNodeRespectsDuplicates(t *testing.T) {
	a, err := treenode.NewMultiSetNode([]treenode.Node{treenode.NewIntegerNode(1), treenode.NewIntegerNode(1)})
	require.NoError(t, err)
	b, err := treenode.NewMultiSetNode([]treenode.Node{treenode.NewIntegerNode(1), treenode.NewIntegerNode(2)})
	require.NoError(t, err)

	require.False(t, a.Equal(b))
}

func TestMappingNodeRejectsDuplicateKeys(t *testing.T) {
	k1, err := treenode.NewKeyValuePairNode(treenode.NewStringNode("a", true), treenode.NewIntegerNode(1))
	require.NoError(t, err)
	k2, err := treenode.NewKeyValuePairNode(treenode.NewStringNode("a", true), treenode.NewIntegerNode(2))
	require.NoError(t, err)

	_, err = treenode.NewMappingNode([]*treenode.KeyValuePairNode{k1, k2})
	require.ErrorIs(t, err, treenode.ErrDuplicateKey)
}

func TestMappingNodeUnorderedEqual(t *testing.T) {
	ka, _ := treenode.NewKeyValuePairNode(treenode.NewStringNode("a", true), treenode.NewIntegerNode(1))
	kb, _ := treenode.NewKeyValuePairNode(treenode.NewStringNode("b", true), treenode.NewIntegerNode(2))

	m1, err := treenode.NewMappingNode([]*treenode.KeyValuePairNode{ka, kb})
	require.NoError(t, err)
	m2, err := treenode.NewMappingNode([]*treenode.KeyValuePairNode{kb, ka})
	require.NoError(t, err)

	require.True(t, m1.Equal(m2))
}

func TestXMLElementNodeEqual(t *testing.T) {
	attrs, _ := treenode.NewFixedKeyMappingNode(nil)
	children, _ := treenode.NewListNode([]treenode.Node{treenode.NewStringNode("t", false)})

	e1, err := treenode.NewXMLElementNode("x", attrs, children)
	require.NoError(t, err)
	e2, err := treenode.NewXMLElementNode("x", attrs, children)
	require.NoError(t, err)
	e3, err := treenode.NewXMLElementNode("y", attrs, children)
	require.NoError(t, err)

	require.True(t, e1.Equal(e2))
	require.False(t, e1.Equal(e3))
}

func TestIsLeaf(t *testing.T) {
	require.True(t, treenode.IsLeaf(treenode.NewIntegerNode(1)))
	l, _ := treenode.NewListNode(nil)
	require.False(t, treenode.IsLeaf(l))
}
