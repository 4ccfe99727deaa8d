package setmatch_test

import (
	"fmt"

	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/setmatch"
	"github.com/katalvlaran/structdiff/treenode"
)

// Example matches {1, 10} against {1, 11}: the cheapest pairing leaves 1
// matched to itself and pairs 10 with 11 at cost 1, never crossing them.
func Example() {
	from := treenode.NewIntegerNode(0)
	to := treenode.NewIntegerNode(0)

	m := setmatch.NewMultiSetEdit(from, to, ints(1, 10), ints(1, 11), intCost)
	r := bounds.TightenUntilDefinitive(m)
	fmt.Println(r.UpperBound())
	// Output:
	// 1
}
