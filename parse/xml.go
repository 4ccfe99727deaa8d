package parse

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/structdiff/treenode"
)

// BuildTreeXML reads path and decodes it as XML into the XMLElementNode
// shape: attributes become a FixedKeyMappingNode, children become a
// ListNode mixing nested XMLElementNode and text-content StringNode
// entries.
func BuildTreeXML(path string) (treenode.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newParseError(path, err)
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	root, err := decodeXMLElement(dec, nil)
	if err != nil {
		return nil, newParseError(path, err)
	}
	if root == nil {
		return nil, newParseError(path, fmt.Errorf("empty document"))
	}

	return root, nil
}

// decodeXMLElement consumes tokens through the end of one element. If start
// is nil, it first skips forward to the document's root start tag.
func decodeXMLElement(dec *xml.Decoder, start *xml.StartElement) (*treenode.XMLElementNode, error) {
	if start == nil {
		for {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			if se, ok := tok.(xml.StartElement); ok {
				start = &se

				break
			}
		}
	}

	attrs := make([]*treenode.KeyValuePairNode, 0, len(start.Attr))
	for _, a := range start.Attr {
		p, err := treenode.NewKeyValuePairNode(treenode.NewStringNode(a.Name.Local, false), treenode.NewStringNode(a.Value, true))
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, p)
	}
	attrNode, err := treenode.NewFixedKeyMappingNode(attrs)
	if err != nil {
		return nil, err
	}

	var children []treenode.Node
	var textBuf strings.Builder
	flushText := func() {
		text := strings.TrimSpace(textBuf.String())
		if text != "" {
			children = append(children, treenode.NewStringNode(text, false))
		}
		textBuf.Reset()
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			flushText()
			start := t
			child, err := decodeXMLElement(dec, &start)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		case xml.CharData:
			textBuf.Write(t)
		case xml.EndElement:
			flushText()
			childrenNode, err := treenode.NewListNode(children)
			if err != nil {
				return nil, err
			}

			return treenode.NewXMLElementNode(start.Name.Local, attrNode, childrenNode)
		}
	}
}
