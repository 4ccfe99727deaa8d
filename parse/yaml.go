package parse

import (
	"os"

	"github.com/katalvlaran/structdiff/treenode"
	"gopkg.in/yaml.v3"
)

// BuildTreeYAML reads path and decodes it as YAML. yaml.v3 decodes mappings
// as map[string]interface{} directly (unlike yaml.v2's
// map[interface{}]interface{}), so fromGeneric handles it the same way it
// handles decoded JSON objects.
func BuildTreeYAML(path string) (treenode.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newParseError(path, err)
	}

	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, newParseError(path, err)
	}

	n, err := fromGeneric(v)
	if err != nil {
		return nil, newParseError(path, err)
	}

	return n, nil
}
