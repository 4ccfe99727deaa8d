package treenode

import "errors"

// Sentinel errors for tree-model invariant violations: construction bugs
// the core never recovers from.
var (
	// ErrDuplicateKey indicates a MappingNode/FixedKeyMappingNode was
	// constructed with two structurally-equal keys.
	ErrDuplicateKey = errors.New("treenode: mapping keys must be pairwise unequal")

	// ErrNilChild indicates a container was constructed with a nil child
	// node, which would make total_size and Equal ill-defined.
	ErrNilChild = errors.New("treenode: container child must not be nil")
)

// NodeKind tags the concrete shape of a Node, used by package diff's
// pair-of-tags dispatch.
type NodeKind int

const (
	// IntegerKind identifies *IntegerNode.
	IntegerKind NodeKind = iota
	// FloatKind identifies *FloatNode.
	FloatKind
	// BoolKind identifies *BoolNode.
	BoolKind
	// NullKind identifies *NullNode.
	NullKind
	// StringKind identifies *StringNode.
	StringKind
	// ListKind identifies *ListNode.
	ListKind
	// MultiSetKind identifies *MultiSetNode.
	MultiSetKind
	// MappingKind identifies *MappingNode.
	MappingKind
	// FixedKeyMappingKind identifies *FixedKeyMappingNode.
	FixedKeyMappingKind
	// KeyValuePairKind identifies *KeyValuePairNode.
	KeyValuePairKind
	// XMLElementKind identifies *XMLElementNode.
	XMLElementKind
)

// String renders a human-readable label for a NodeKind, used by error
// messages and the formatter's dispatch table.
func (k NodeKind) String() string {
	switch k {
	case IntegerKind:
		return "integer"
	case FloatKind:
		return "float"
	case BoolKind:
		return "bool"
	case NullKind:
		return "null"
	case StringKind:
		return "string"
	case ListKind:
		return "list"
	case MultiSetKind:
		return "multiset"
	case MappingKind:
		return "mapping"
	case FixedKeyMappingKind:
		return "fixed_key_mapping"
	case KeyValuePairKind:
		return "key_value_pair"
	case XMLElementKind:
		return "xml_element"
	default:
		return "unknown"
	}
}

// Node is the uniform interface over every shape in the tree model. It is
// implemented by pointer receivers so every node has a stable identity
// (see package edit's Annotation table, keyed by Node identity).
//
// Node is intentionally narrow: it carries no knowledge of how to diff
// itself against another node. That dispatch lives in package diff.
type Node interface {
	// Kind reports the concrete shape tag for dispatch.
	Kind() NodeKind

	// TotalSize is the sum of leaf weights in this node: string length in
	// characters, 1 for each other scalar, and the sum of children for
	// containers. It is cached after first computation.
	TotalSize() int64

	// Equal reports recursive, whitespace-sensitive structural equality.
	Equal(other Node) bool
}

// Container is implemented by every non-leaf Node, exposing its immediate
// children for generic traversal (formatters, property-based tests).
type Container interface {
	Node
	ChildNodes() []Node
}

// IsLeaf reports whether n is a scalar (not a Container).
func IsLeaf(n Node) bool {
	_, ok := n.(Container)
	return !ok
}
