package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/structdiff/treenode"
)

// BuildTreeJSON reads path and decodes it as JSON, using json.Number so
// whole-number values become IntegerNode rather than FloatNode.
func BuildTreeJSON(path string) (treenode.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newParseError(path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, newParseError(path, fmt.Errorf("invalid json: %w", err))
	}

	n, err := fromGeneric(v)
	if err != nil {
		return nil, newParseError(path, err)
	}

	return n, nil
}
