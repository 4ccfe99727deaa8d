package randtree

// Options bounds the shape of a generated tree.
type Options struct {
	// MaxDepth caps how many container levels deep a tree can nest; depth
	// 0 always produces a leaf.
	MaxDepth int

	// MaxChildren caps how many children a ListNode/MultiSetNode/
	// MappingNode gets (at least 1).
	MaxChildren int

	// MutateProb is the per-node probability Mutate replaces a leaf's
	// value or drops/adds a child, in [0, 1].
	MutateProb float64
}

// DefaultOptions returns a small, shallow shape: enough variety for a unit
// test, not a stress test.
func DefaultOptions() Options {
	return Options{MaxDepth: 3, MaxChildren: 4, MutateProb: 0.3}
}

// normalize clamps out-of-range fields rather than erroring — a test
// helper has no caller worth failing loudly at.
func (o Options) normalize() Options {
	if o.MaxDepth < 0 {
		o.MaxDepth = 0
	}
	if o.MaxChildren < 1 {
		o.MaxChildren = 1
	}
	if o.MutateProb < 0 {
		o.MutateProb = 0
	}
	if o.MutateProb > 1 {
		o.MutateProb = 1
	}

	return o
}
