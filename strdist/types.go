package strdist

import "errors"

// Sentinel errors for Options misuse.
var (
	// ErrEditsNeedFullMatrix indicates ReturnEdits was requested without
	// MemoryMode FullMatrix. Back-tracing a character-level script needs
	// every row of the distance matrix, not just the last one or two.
	ErrEditsNeedFullMatrix = errors.New("strdist: ReturnEdits requires MemoryMode FullMatrix")
)

// MemoryMode controls how much of the distance matrix StringEdit retains,
// mirroring package dtw's MemoryMode contract (FullMatrix vs. a rolling
// window) applied to a 2-D edit-distance table instead of a 1-D warping
// signal.
type MemoryMode int

const (
	// FullMatrix retains every row computed so far, enabling SubEdits to
	// back-trace a character-level script once the edit is complete.
	FullMatrix MemoryMode = iota

	// RollingRow retains only the most recently completed row. Distance
	// (Bounds) is still exact once complete, but SubEdits is unavailable.
	RollingRow
)

// String renders the mode name.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case RollingRow:
		return "RollingRow"
	default:
		return "unknown"
	}
}

// Options configures a StringEdit.
type Options struct {
	// MemoryMode selects how much of the DP table is retained.
	MemoryMode MemoryMode

	// ReturnEdits requests a character-level edit script via SubEdits once
	// the StringEdit is complete. Requires MemoryMode FullMatrix.
	ReturnEdits bool
}

// DefaultOptions returns FullMatrix retention with ReturnEdits enabled,
// matching how package diff's driver uses StringEdit: the formatter always
// wants a character-level script for rendering.
func DefaultOptions() Options {
	return Options{MemoryMode: FullMatrix, ReturnEdits: true}
}

// Validate reports whether the option combination is usable.
func (o Options) Validate() error {
	if o.ReturnEdits && o.MemoryMode != FullMatrix {
		return ErrEditsNeedFullMatrix
	}

	return nil
}
