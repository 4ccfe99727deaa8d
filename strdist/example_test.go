package strdist_test

import (
	"fmt"

	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/strdist"
	"github.com/katalvlaran/structdiff/treenode"
)

// Example tightens a StringEdit to completion and prints the resulting
// Levenshtein distance.
func Example() {
	from := treenode.NewStringNode("kitten", true)
	to := treenode.NewStringNode("sitting", true)

	se, err := strdist.NewStringEdit(from, to, strdist.DefaultOptions())
	if err != nil {
		panic(err)
	}

	r := bounds.TightenUntilDefinitive(se)
	fmt.Println(r.UpperBound())
	// Output:
	// 3
}
