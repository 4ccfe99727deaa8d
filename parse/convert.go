package parse

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/structdiff/treenode"
)

// fromGeneric converts a decoded JSON/YAML value (nil, bool, string,
// float64/json.Number, []interface{}, map[string]interface{}) into the
// uniform tree model. Mapping keys are sorted before construction so that
// repeated parses of the same document produce the same child order —
// MappingNode's own Equal/matching is order-independent, but a stable
// build order keeps SubEdits output reproducible.
func fromGeneric(v interface{}) (treenode.Node, error) {
	switch val := v.(type) {
	case nil:
		return treenode.NewNullNode(), nil
	case bool:
		return treenode.NewBoolNode(val), nil
	case string:
		return treenode.NewStringNode(val, true), nil
	case int:
		return treenode.NewIntegerNode(int64(val)), nil
	case int64:
		return treenode.NewIntegerNode(val), nil
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return treenode.NewIntegerNode(int64(val)), nil
		}

		return treenode.NewFloatNode(val), nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return treenode.NewIntegerNode(i), nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("parse: invalid number %q: %w", val.String(), err)
		}

		return treenode.NewFloatNode(f), nil
	case []interface{}:
		children := make([]treenode.Node, len(val))
		for i, c := range val {
			cn, err := fromGeneric(c)
			if err != nil {
				return nil, err
			}
			children[i] = cn
		}

		return treenode.NewListNode(children)
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pairs := make([]*treenode.KeyValuePairNode, 0, len(keys))
		for _, k := range keys {
			vn, err := fromGeneric(val[k])
			if err != nil {
				return nil, err
			}
			p, err := treenode.NewKeyValuePairNode(treenode.NewStringNode(k, true), vn)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, p)
		}

		return treenode.NewMappingNode(pairs)
	default:
		return nil, fmt.Errorf("parse: unsupported decoded value type %T", v)
	}
}
