package treenode

// XMLElementNode represents a single XML element: a tag name, an
// attribute map (fixed-key — attribute names are never edited into a
// different attribute name, only added/removed or value-edited), and an
// ordered list of children, which may themselves be XMLElementNode or
// StringNode (text content). Tag, attributes, and children compare as
// three independent sub-problems.
type XMLElementNode struct {
	Tag        string
	Attributes *FixedKeyMappingNode
	Children   *ListNode

	sizeCached bool
	size       int64
}

// NewXMLElementNode constructs an XMLElementNode. attributes and children
// may be nil, in which case empty containers are substituted.
func NewXMLElementNode(tag string, attributes *FixedKeyMappingNode, children *ListNode) (*XMLElementNode, error) {
	if attributes == nil {
		var err error
		attributes, err = NewFixedKeyMappingNode(nil)
		if err != nil {
			return nil, err
		}
	}
	if children == nil {
		var err error
		children, err = NewListNode(nil)
		if err != nil {
			return nil, err
		}
	}

	return &XMLElementNode{Tag: tag, Attributes: attributes, Children: children}, nil
}

// Kind implements Node.
func (n *XMLElementNode) Kind() NodeKind { return XMLElementKind }

// TotalSize implements Node: the tag name counts as a string-sized leaf
// cost, plus attributes, plus children.
func (n *XMLElementNode) TotalSize() int64 {
	if !n.sizeCached {
		n.size = int64(len([]rune(n.Tag))) + n.Attributes.TotalSize() + n.Children.TotalSize()
		n.sizeCached = true
	}

	return n.size
}

// ChildNodes implements Container, exposing attributes and children as two
// sub-nodes (tag itself is not a Node; it is compared directly by diff).
func (n *XMLElementNode) ChildNodes() []Node {
	return []Node{n.Attributes, n.Children}
}

// Equal implements Node.
func (n *XMLElementNode) Equal(other Node) bool {
	o, ok := other.(*XMLElementNode)
	if !ok || o.Tag != n.Tag {
		return false
	}

	return n.Attributes.Equal(o.Attributes) && n.Children.Equal(o.Children)
}
