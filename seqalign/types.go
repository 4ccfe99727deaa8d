package seqalign

import "errors"

// ErrLengthMismatchDisallowed names the case where Options.Enabled is false
// and the two sequences differ in length. No code path in this package
// returns it: the positional fallback pairs the common prefix by index and
// emits Remove/Insert edits for the longer sequence's leftover tail.
var ErrLengthMismatchDisallowed = errors.New("seqalign: trivial fallback requires equal-length sequences")

// Options configures sequence alignment.
type Options struct {
	// Enabled runs full branch-and-bound alignment when true. When false
	// (the CLI's --no-list-edit-distance flag), same-index elements are
	// paired positionally instead, which is cheap but blind to insertions
	// or removals that shift alignment.
	Enabled bool
}

// DefaultOptions enables full alignment.
func DefaultOptions() Options {
	return Options{Enabled: true}
}
