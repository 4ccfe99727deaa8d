package diff

import (
	"github.com/katalvlaran/structdiff/edit"
	"github.com/katalvlaran/structdiff/treenode"
)

// Diff resolves the edit between a and b and drives it to a definitive
// cost via a cooperative tighten loop. It terminates because
// every TightenBounds call either narrows a range or returns false, and
// ranges are bounded below by 0 and above by a.TotalSize()+b.TotalSize().
func Diff(a, b treenode.Node, opts Options) edit.Edit {
	root := Edits(a, b, opts)
	for root.Valid() && !root.Bounds().Definitive() {
		if !root.TightenBounds() {
			break
		}
	}

	return root
}
