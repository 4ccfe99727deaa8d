package seqalign_test

import (
	"testing"

	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/seqalign"
	"github.com/katalvlaran/structdiff/treenode"
)

func BenchmarkAlignToCompletion(b *testing.B) {
	from := treenode.NewIntegerNode(0)
	to := treenode.NewIntegerNode(0)
	a := make([]treenode.Node, 30)
	bb := make([]treenode.Node, 30)
	for i := range a {
		a[i] = treenode.NewIntegerNode(int64(i))
		bb[i] = treenode.NewIntegerNode(int64(i + 1))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		le := seqalign.Align(from, to, a, bb, leafCost, seqalign.DefaultOptions())
		bounds.TightenUntilDefinitive(le)
	}
}
