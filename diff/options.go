package diff

import (
	"github.com/katalvlaran/structdiff/seqalign"
	"github.com/katalvlaran/structdiff/setmatch"
)

// Options composes every sub-package's Options, mirroring tsp.Options
// composing its MatchingAlgo/BoundAlgo selections.
type Options struct {
	Seqalign seqalign.Options

	// AllowKeyEdits controls MappingNode matching (the CLI's
	// --no-key-edits flag sets this to false). FixedKeyMappingNode always
	// forbids key edits regardless of this setting.
	AllowKeyEdits bool
}

// DefaultOptions returns the permissive default: list alignment and
// mapping key edits both enabled.
func DefaultOptions() Options {
	return Options{
		Seqalign:      seqalign.DefaultOptions(),
		AllowKeyEdits: true,
	}
}

func (o Options) setmatchOptions() setmatch.Options {
	return setmatch.Options{AllowKeyEdits: o.AllowKeyEdits}
}
