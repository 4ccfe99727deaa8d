package randtree

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/structdiff/treenode"
)

// Mutate returns a tree structurally related to n: recursively, each leaf
// has opts.MutateProb of being replaced by a fresh random value of the
// same kind, and each container has the same probability of gaining or
// losing one child. The result is meant to pair with n in a diff property
// test — related enough that most of the structure still lines up, random
// enough to exercise every edit kind (Match/Remove/Insert) sometimes.
func Mutate(rng *rand.Rand, n treenode.Node, opts Options) treenode.Node {
	return mutateNode(rng, n, opts.normalize(), 0)
}

func mutateNode(rng *rand.Rand, n treenode.Node, opts Options, depth int) treenode.Node {
	switch v := n.(type) {
	case *treenode.IntegerNode:
		if rollMutate(rng, opts) {
			return treenode.NewIntegerNode(rng.Int63n(201) - 100)
		}

		return treenode.NewIntegerNode(v.Value)
	case *treenode.FloatNode:
		if rollMutate(rng, opts) {
			return treenode.NewFloatNode(rng.Float64()*200 - 100)
		}

		return treenode.NewFloatNode(v.Value)
	case *treenode.BoolNode:
		if rollMutate(rng, opts) {
			return treenode.NewBoolNode(!v.Value)
		}

		return treenode.NewBoolNode(v.Value)
	case *treenode.NullNode:
		return treenode.NewNullNode()
	case *treenode.StringNode:
		if rollMutate(rng, opts) {
			return treenode.NewStringNode(randomWord(rng), v.Quoted)
		}

		return treenode.NewStringNode(v.Value, v.Quoted)
	case *treenode.ListNode:
		return mustList(mutateChildren(rng, v.Children, opts, depth))
	case *treenode.MultiSetNode:
		return mustMultiSet(mutateChildren(rng, v.Children, opts, depth))
	case *treenode.MappingNode:
		return mutateMapping(rng, v, opts, depth)
	default:
		// XMLElementNode and FixedKeyMappingNode fixtures aren't generated
		// by New, so Mutate never needs to handle them.
		return n
	}
}

// rollMutate reports whether this node should change, biased by
// opts.MutateProb.
func rollMutate(rng *rand.Rand, opts Options) bool {
	return rng.Float64() < opts.MutateProb
}

// mutateChildren recursively mutates each child, then with opts.MutateProb
// drops the last child or appends a fresh one (bounded by MaxChildren).
func mutateChildren(rng *rand.Rand, children []treenode.Node, opts Options, depth int) []treenode.Node {
	out := make([]treenode.Node, 0, len(children)+1)
	for _, c := range children {
		out = append(out, mutateNode(rng, c, opts, depth+1))
	}
	if len(out) > 1 && rollMutate(rng, opts) {
		out = out[:len(out)-1]
	}
	if len(out) < opts.MaxChildren && rollMutate(rng, opts) {
		out = append(out, newNode(rng, opts, depth+1))
	}

	return out
}

func mutateMapping(rng *rand.Rand, m *treenode.MappingNode, opts Options, depth int) treenode.Node {
	out := make([]*treenode.KeyValuePairNode, 0, len(m.Pairs)+1)
	for _, p := range m.Pairs {
		value := mutateNode(rng, p.Value, opts, depth+1)
		out = append(out, mustKeyValuePair(p.Key, value))
	}
	if len(out) > 1 && rollMutate(rng, opts) {
		out = out[:len(out)-1]
	}
	if len(out) < opts.MaxChildren && rollMutate(rng, opts) {
		key := treenode.NewStringNode(fmt.Sprintf("k%d", len(out)+1000), true)
		out = append(out, mustKeyValuePair(key, newNode(rng, opts, depth+1)))
	}

	return mustMapping(out)
}

func mustList(children []treenode.Node) *treenode.ListNode {
	n, err := treenode.NewListNode(children)
	if err != nil {
		panic(fmt.Errorf("randtree: %w", err))
	}

	return n
}

func mustMultiSet(children []treenode.Node) *treenode.MultiSetNode {
	n, err := treenode.NewMultiSetNode(children)
	if err != nil {
		panic(fmt.Errorf("randtree: %w", err))
	}

	return n
}

func mustKeyValuePair(key, value treenode.Node) *treenode.KeyValuePairNode {
	p, err := treenode.NewKeyValuePairNode(key, value)
	if err != nil {
		panic(fmt.Errorf("randtree: %w", err))
	}

	return p
}

func mustMapping(pairs []*treenode.KeyValuePairNode) *treenode.MappingNode {
	m, err := treenode.NewMappingNode(pairs)
	if err != nil {
		panic(fmt.Errorf("randtree: %w", err))
	}

	return m
}
