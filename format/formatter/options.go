package formatter

// Options controls rendering choices that don't change what was found,
// only how compactly it's shown (the CLI's --join-lists/--join-dict-items
// flags).
type Options struct {
	// JoinLists collapses a ListEdit/MultiSetEdit whose every element is
	// unchanged onto a single comma-joined line instead of one element
	// per line.
	JoinLists bool

	// JoinDictItems does the same for a MappingEdit whose every entry is
	// unchanged.
	JoinDictItems bool
}

// DefaultOptions returns the verbose default: every container renders one
// sub-edit per line regardless of whether it changed.
func DefaultOptions() Options {
	return Options{}
}
