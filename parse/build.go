package parse

import (
	"fmt"

	"github.com/katalvlaran/structdiff/treenode"
)

// BuildTree dispatches to the constructor for format.
func BuildTree(path string, format Format) (treenode.Node, error) {
	switch format {
	case FormatJSON:
		return BuildTreeJSON(path)
	case FormatYAML:
		return BuildTreeYAML(path)
	case FormatXML:
		return BuildTreeXML(path)
	case FormatCSV:
		return BuildTreeCSV(path)
	default:
		return nil, newParseError(path, fmt.Errorf("%w: format tag %d", ErrUnknownFormat, format))
	}
}

// BuildTreeAuto infers the format from path's extension and builds the tree.
func BuildTreeAuto(path string) (treenode.Node, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, newParseError(path, err)
	}

	return BuildTree(path, format)
}
