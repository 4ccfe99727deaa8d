package seqalign_test

import (
	"fmt"

	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/seqalign"
	"github.com/katalvlaran/structdiff/treenode"
)

// Example aligns [1, 3] against [1, 2, 3], the minimum-cost alignment being
// a single Insert of the middle element.
func Example() {
	from := treenode.NewIntegerNode(0)
	to := treenode.NewIntegerNode(0)

	le := seqalign.Align(from, to, ints(1, 3), ints(1, 2, 3), leafCost, seqalign.DefaultOptions())
	r := bounds.TightenUntilDefinitive(le)
	fmt.Println(r.UpperBound())
	// Output:
	// 1
}
