package treenode

// IntegerNode is a scalar 64-bit signed integer leaf.
type IntegerNode struct {
	Value int64
}

// NewIntegerNode constructs an IntegerNode.
func NewIntegerNode(v int64) *IntegerNode { return &IntegerNode{Value: v} }

// Kind implements Node.
func (n *IntegerNode) Kind() NodeKind { return IntegerKind }

// TotalSize implements Node: every scalar weighs 1.
func (n *IntegerNode) TotalSize() int64 { return 1 }

// Equal implements Node.
func (n *IntegerNode) Equal(other Node) bool {
	o, ok := other.(*IntegerNode)
	return ok && o.Value == n.Value
}

// FloatNode is a scalar 64-bit floating point leaf.
type FloatNode struct {
	Value float64
}

// NewFloatNode constructs a FloatNode.
func NewFloatNode(v float64) *FloatNode { return &FloatNode{Value: v} }

// Kind implements Node.
func (n *FloatNode) Kind() NodeKind { return FloatKind }

// TotalSize implements Node.
func (n *FloatNode) TotalSize() int64 { return 1 }

// Equal implements Node.
func (n *FloatNode) Equal(other Node) bool {
	o, ok := other.(*FloatNode)
	return ok && o.Value == n.Value
}

// BoolNode is a scalar boolean leaf.
type BoolNode struct {
	Value bool
}

// NewBoolNode constructs a BoolNode.
func NewBoolNode(v bool) *BoolNode { return &BoolNode{Value: v} }

// Kind implements Node.
func (n *BoolNode) Kind() NodeKind { return BoolKind }

// TotalSize implements Node.
func (n *BoolNode) TotalSize() int64 { return 1 }

// Equal implements Node.
func (n *BoolNode) Equal(other Node) bool {
	o, ok := other.(*BoolNode)
	return ok && o.Value == n.Value
}

// NullNode is the singleton-shaped null/nil leaf.
type NullNode struct{}

// NewNullNode constructs a NullNode.
func NewNullNode() *NullNode { return &NullNode{} }

// Kind implements Node.
func (n *NullNode) Kind() NodeKind { return NullKind }

// TotalSize implements Node.
func (n *NullNode) TotalSize() int64 { return 1 }

// Equal implements Node.
func (n *NullNode) Equal(other Node) bool {
	_, ok := other.(*NullNode)
	return ok
}

// StringNode is a scalar string leaf. Quoted records whether the source
// document spelled this value with surrounding quote characters (JSON/YAML
// string vs. bareword/CSV cell), which the formatter uses for rendering but
// which does not affect Equal or TotalSize.
type StringNode struct {
	Value  string
	Quoted bool
}

// NewStringNode constructs a StringNode.
func NewStringNode(v string, quoted bool) *StringNode {
	return &StringNode{Value: v, Quoted: quoted}
}

// Kind implements Node.
func (n *StringNode) Kind() NodeKind { return StringKind }

// TotalSize implements Node: weighed by character count (runes), matching
// the string edit-distance leaf cost in package strdist.
func (n *StringNode) TotalSize() int64 {
	return int64(len([]rune(n.Value)))
}

// Equal implements Node: whitespace-sensitive exact comparison.
func (n *StringNode) Equal(other Node) bool {
	o, ok := other.(*StringNode)
	return ok && o.Value == n.Value
}
