package setmatch_test

import (
	"testing"

	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/setmatch"
	"github.com/katalvlaran/structdiff/treenode"
)

func BenchmarkMultiSetEditToCompletion(b *testing.B) {
	from := treenode.NewIntegerNode(0)
	to := treenode.NewIntegerNode(0)
	a := make([]treenode.Node, 20)
	bb := make([]treenode.Node, 20)
	for i := range a {
		a[i] = treenode.NewIntegerNode(int64(i))
		bb[i] = treenode.NewIntegerNode(int64(i + 1))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := setmatch.NewMultiSetEdit(from, to, a, bb, intCost)
		bounds.TightenUntilDefinitive(m)
	}
}
