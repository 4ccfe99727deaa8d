package randtree

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/structdiff/treenode"
)

// leafKindCount is how many of the switch arms in newNode are leaves;
// container arms start right after it.
const leafKindCount = 5
const totalKindCount = 8

var wordAlphabet = []rune("abcdefghijklmnopqrstuvwxyz")

// New returns a random tree no deeper than opts.MaxDepth, entirely driven
// by rng.
func New(rng *rand.Rand, opts Options) treenode.Node {
	return newNode(rng, opts.normalize(), 0)
}

func newNode(rng *rand.Rand, opts Options, depth int) treenode.Node {
	choices := leafKindCount
	if depth < opts.MaxDepth {
		choices = totalKindCount
	}

	switch rng.Intn(choices) {
	case 0:
		return treenode.NewIntegerNode(rng.Int63n(201) - 100)
	case 1:
		return treenode.NewFloatNode(rng.Float64()*200 - 100)
	case 2:
		return treenode.NewBoolNode(rng.Intn(2) == 0)
	case 3:
		return treenode.NewNullNode()
	case 4:
		return treenode.NewStringNode(randomWord(rng), true)
	case 5:
		return newChildren(rng, opts, depth, containerList)
	case 6:
		return newChildren(rng, opts, depth, containerMultiSet)
	default:
		return newMapping(rng, opts, depth)
	}
}

type containerShape int

const (
	containerList containerShape = iota
	containerMultiSet
)

func newChildren(rng *rand.Rand, opts Options, depth int, shape containerShape) treenode.Node {
	n := rng.Intn(opts.MaxChildren) + 1
	children := make([]treenode.Node, n)
	for i := range children {
		children[i] = newNode(rng, opts, depth+1)
	}

	if shape == containerList {
		return mustList(children)
	}

	return mustMultiSet(children)
}

func newMapping(rng *rand.Rand, opts Options, depth int) treenode.Node {
	n := rng.Intn(opts.MaxChildren) + 1
	pairs := make([]*treenode.KeyValuePairNode, n)
	for i := range pairs {
		key := treenode.NewStringNode(fmt.Sprintf("k%d", i), true)
		pairs[i] = mustKeyValuePair(key, newNode(rng, opts, depth+1))
	}

	// keys are k0..k(n-1), always pairwise distinct.
	return mustMapping(pairs)
}

func randomWord(rng *rand.Rand) string {
	n := rng.Intn(6) + 1
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = wordAlphabet[rng.Intn(len(wordAlphabet))]
	}

	return string(runes)
}
