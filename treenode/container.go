package treenode

import "fmt"

// ListNode is an ordered sequence of child nodes. Order is significant for
// both Equal and the sequence aligner in package seqalign.
type ListNode struct {
	Children []Node

	sizeCached bool
	size       int64
}

// NewListNode constructs a ListNode, rejecting nil children.
func NewListNode(children []Node) (*ListNode, error) {
	if err := requireNoNilChildren(children); err != nil {
		return nil, err
	}

	return &ListNode{Children: children}, nil
}

// Kind implements Node.
func (n *ListNode) Kind() NodeKind { return ListKind }

// TotalSize implements Node.
func (n *ListNode) TotalSize() int64 {
	if !n.sizeCached {
		n.size = sumSizes(n.Children)
		n.sizeCached = true
	}

	return n.size
}

// ChildNodes implements Container.
func (n *ListNode) ChildNodes() []Node { return n.Children }

// Equal implements Node: ordered, element-wise comparison.
func (n *ListNode) Equal(other Node) bool {
	o, ok := other.(*ListNode)
	if !ok || len(o.Children) != len(n.Children) {
		return false
	}
	for i, c := range n.Children {
		if !c.Equal(o.Children[i]) {
			return false
		}
	}

	return true
}

// MultiSetNode is an unordered bag of child nodes; duplicates are allowed
// and order carries no meaning for Equal.
type MultiSetNode struct {
	Children []Node

	sizeCached bool
	size       int64
}

// NewMultiSetNode constructs a MultiSetNode, rejecting nil children.
func NewMultiSetNode(children []Node) (*MultiSetNode, error) {
	if err := requireNoNilChildren(children); err != nil {
		return nil, err
	}

	return &MultiSetNode{Children: children}, nil
}

// Kind implements Node.
func (n *MultiSetNode) Kind() NodeKind { return MultiSetKind }

// TotalSize implements Node.
func (n *MultiSetNode) TotalSize() int64 {
	if !n.sizeCached {
		n.size = sumSizes(n.Children)
		n.sizeCached = true
	}

	return n.size
}

// ChildNodes implements Container.
func (n *MultiSetNode) ChildNodes() []Node { return n.Children }

// Equal implements Node: multiset equality — every child in n has a
// distinct structurally-equal match in other, and vice versa (same size).
func (n *MultiSetNode) Equal(other Node) bool {
	o, ok := other.(*MultiSetNode)
	if !ok || len(o.Children) != len(n.Children) {
		return false
	}
	used := make([]bool, len(o.Children))
	for _, c := range n.Children {
		matched := false
		for j, oc := range o.Children {
			if used[j] {
				continue
			}
			if c.Equal(oc) {
				used[j] = true
				matched = true

				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// KeyValuePairNode is a single key/value entry of a MappingNode.
type KeyValuePairNode struct {
	Key   Node
	Value Node

	sizeCached bool
	size       int64
}

// NewKeyValuePairNode constructs a KeyValuePairNode.
func NewKeyValuePairNode(key, value Node) (*KeyValuePairNode, error) {
	if key == nil || value == nil {
		return nil, ErrNilChild
	}

	return &KeyValuePairNode{Key: key, Value: value}, nil
}

// Kind implements Node.
func (n *KeyValuePairNode) Kind() NodeKind { return KeyValuePairKind }

// TotalSize implements Node.
func (n *KeyValuePairNode) TotalSize() int64 {
	if !n.sizeCached {
		n.size = n.Key.TotalSize() + n.Value.TotalSize()
		n.sizeCached = true
	}

	return n.size
}

// ChildNodes implements Container, returning [Key, Value].
func (n *KeyValuePairNode) ChildNodes() []Node { return []Node{n.Key, n.Value} }

// Equal implements Node.
func (n *KeyValuePairNode) Equal(other Node) bool {
	o, ok := other.(*KeyValuePairNode)
	return ok && n.Key.Equal(o.Key) && n.Value.Equal(o.Value)
}

// MappingNode is an unordered set of KeyValuePairNode entries whose keys
// are pairwise structurally unique. Key edits are permitted when diffing
// two MappingNodes (see package setmatch).
type MappingNode struct {
	Pairs []*KeyValuePairNode

	sizeCached bool
	size       int64
}

// NewMappingNode constructs a MappingNode, rejecting duplicate keys.
func NewMappingNode(pairs []*KeyValuePairNode) (*MappingNode, error) {
	if err := requireUniqueKeys(pairs); err != nil {
		return nil, err
	}

	return &MappingNode{Pairs: pairs}, nil
}

// Kind implements Node.
func (n *MappingNode) Kind() NodeKind { return MappingKind }

// TotalSize implements Node.
func (n *MappingNode) TotalSize() int64 {
	if !n.sizeCached {
		var sum int64
		for _, p := range n.Pairs {
			sum += p.TotalSize()
		}
		n.size = sum
		n.sizeCached = true
	}

	return n.size
}

// ChildNodes implements Container.
func (n *MappingNode) ChildNodes() []Node {
	out := make([]Node, len(n.Pairs))
	for i, p := range n.Pairs {
		out[i] = p
	}

	return out
}

// Equal implements Node: unordered set-of-pairs equality.
func (n *MappingNode) Equal(other Node) bool {
	o, ok := other.(*MappingNode)
	if !ok || len(o.Pairs) != len(n.Pairs) {
		return false
	}
	used := make([]bool, len(o.Pairs))
	for _, p := range n.Pairs {
		matched := false
		for j, op := range o.Pairs {
			if used[j] {
				continue
			}
			if p.Equal(op) {
				used[j] = true
				matched = true

				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// FixedKeyMappingNode is shaped exactly like MappingNode but forbids key
// edits when diffed: keys either match identically, or the whole entry is
// Remove/Insert'd. XML attribute maps use this shape.
type FixedKeyMappingNode struct {
	Pairs []*KeyValuePairNode

	sizeCached bool
	size       int64
}

// NewFixedKeyMappingNode constructs a FixedKeyMappingNode, rejecting
// duplicate keys.
func NewFixedKeyMappingNode(pairs []*KeyValuePairNode) (*FixedKeyMappingNode, error) {
	if err := requireUniqueKeys(pairs); err != nil {
		return nil, err
	}

	return &FixedKeyMappingNode{Pairs: pairs}, nil
}

// Kind implements Node.
func (n *FixedKeyMappingNode) Kind() NodeKind { return FixedKeyMappingKind }

// TotalSize implements Node.
func (n *FixedKeyMappingNode) TotalSize() int64 {
	if !n.sizeCached {
		var sum int64
		for _, p := range n.Pairs {
			sum += p.TotalSize()
		}
		n.size = sum
		n.sizeCached = true
	}

	return n.size
}

// ChildNodes implements Container.
func (n *FixedKeyMappingNode) ChildNodes() []Node {
	out := make([]Node, len(n.Pairs))
	for i, p := range n.Pairs {
		out[i] = p
	}

	return out
}

// Equal implements Node.
func (n *FixedKeyMappingNode) Equal(other Node) bool {
	o, ok := other.(*FixedKeyMappingNode)
	if !ok || len(o.Pairs) != len(n.Pairs) {
		return false
	}
	used := make([]bool, len(o.Pairs))
	for _, p := range n.Pairs {
		matched := false
		for j, op := range o.Pairs {
			if used[j] {
				continue
			}
			if p.Equal(op) {
				used[j] = true
				matched = true

				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

func sumSizes(nodes []Node) int64 {
	var sum int64
	for _, c := range nodes {
		sum += c.TotalSize()
	}

	return sum
}

func requireNoNilChildren(nodes []Node) error {
	for i, c := range nodes {
		if c == nil {
			return fmt.Errorf("treenode: child %d: %w", i, ErrNilChild)
		}
	}

	return nil
}

// requireUniqueKeys checks pairwise key uniqueness under Node.Equal. This
// is O(n^2) in the number of pairs, which is acceptable for the document
// sizes structdiff targets.
func requireUniqueKeys(pairs []*KeyValuePairNode) error {
	for i := 0; i < len(pairs); i++ {
		if pairs[i] == nil {
			return fmt.Errorf("treenode: pair %d: %w", i, ErrNilChild)
		}
		for j := i + 1; j < len(pairs); j++ {
			if pairs[i].Key.Equal(pairs[j].Key) {
				return fmt.Errorf("treenode: %w (index %d and %d)", ErrDuplicateKey, i, j)
			}
		}
	}

	return nil
}
