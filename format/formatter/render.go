package formatter

import (
	"fmt"

	"github.com/katalvlaran/structdiff/treenode"
)

// renderNode renders a leaf (or, as a fallback, a whole container) node to
// its textual form. Containers are normally never passed here directly —
// Format walks their edits instead — but KeyValuePairNode arrives this way
// when it is the FromNode/ToNode of a whole-entry Remove/Insert.
func renderNode(n treenode.Node) string {
	switch v := n.(type) {
	case *treenode.IntegerNode:
		return fmt.Sprintf("%d", v.Value)
	case *treenode.FloatNode:
		return fmt.Sprintf("%g", v.Value)
	case *treenode.BoolNode:
		return fmt.Sprintf("%t", v.Value)
	case *treenode.NullNode:
		return "null"
	case *treenode.StringNode:
		if v.Quoted {
			return fmt.Sprintf("%q", v.Value)
		}

		return v.Value
	case *treenode.KeyValuePairNode:
		return fmt.Sprintf("%s: %s", renderNode(v.Key), renderNode(v.Value))
	default:
		return fmt.Sprintf("<%s>", n.Kind())
	}
}

// renderRune renders a single-character StringNode's bare value, ignoring
// Quoted — StringFormatter supplies the surrounding quote pair itself, so
// wrapping each character individually would produce "a""b""c" instead of
// "abc".
func renderRune(n treenode.Node) string {
	s, ok := n.(*treenode.StringNode)
	if !ok {
		return renderNode(n)
	}

	return s.Value
}
