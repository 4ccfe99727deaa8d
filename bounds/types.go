package bounds

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for Range/Bounded misuse.
var (
	// ErrInvalidRange indicates lo > hi was requested.
	ErrInvalidRange = errors.New("bounds: lo must be <= hi")

	// ErrBoundsWidened indicates a Bounded implementation returned a range
	// that is not a subset of the range it previously reported. This is an
	// Invariant-class failure: it means the caller's pruning decisions may
	// already be unsound, so the search aborts rather than continuing.
	ErrBoundsWidened = errors.New("bounds: tighten_bounds widened the range")
)

// Infinite is used by invalidated edits: both endpoints are set to it so
// that comparisons against any other range always lose.
const Infinite = math.MaxInt64 / 4

// Range is a closed integer interval [Lo, Hi] bounding some not-yet-known
// cost. Lo <= Hi always holds for a value constructed via NewRange.
type Range struct {
	Lo, Hi int64
}

// NewRange constructs a Range, returning ErrInvalidRange if lo > hi.
func NewRange(lo, hi int64) (Range, error) {
	if lo > hi {
		return Range{}, fmt.Errorf("bounds: %w (lo=%d, hi=%d)", ErrInvalidRange, lo, hi)
	}

	return Range{Lo: lo, Hi: hi}, nil
}

// Exact returns a definitive Range whose Lo and Hi both equal v.
func Exact(v int64) Range {
	return Range{Lo: v, Hi: v}
}

// InfiniteRange returns the range used by invalidated/cancelled edits: it
// compares worse than any finite range and dominates nothing.
func InfiniteRange() Range {
	return Range{Lo: Infinite, Hi: Infinite}
}

// Definitive reports whether the range pins down a single value (Lo == Hi).
func (r Range) Definitive() bool {
	return r.Lo == r.Hi
}

// Add returns the element-wise sum of two ranges: (a.Lo+b.Lo, a.Hi+b.Hi).
func (r Range) Add(other Range) Range {
	return Range{Lo: r.Lo + other.Lo, Hi: r.Hi + other.Hi}
}

// Equal reports structural equality of the two ranges.
func (r Range) Equal(other Range) bool {
	return r.Lo == other.Lo && r.Hi == other.Hi
}

// Less is the lexicographic order on (Lo, Hi), used to rank candidate
// edits by best-case-then-worst-case cost.
func (r Range) Less(other Range) bool {
	if r.Lo != other.Lo {
		return r.Lo < other.Lo
	}

	return r.Hi < other.Hi
}

// Dominates reports whether r is strictly preferable to other in every
// outcome: r's worst case is no worse than other's best case.
//
//	A dominates B  iff  A.Hi <= B.Lo
func (r Range) Dominates(other Range) bool {
	return r.Hi <= other.Lo
}

// Contains reports whether other is a subset of r (other.Lo >= r.Lo and
// other.Hi <= r.Hi). Used to validate the "bounds only narrow" invariant.
func (r Range) Contains(other Range) bool {
	return r.Lo <= other.Lo && other.Hi <= r.Hi
}

// String renders the range as "[lo, hi]", or "[lo]" when definitive.
func (r Range) String() string {
	if r.Definitive() {
		return fmt.Sprintf("[%d]", r.Lo)
	}

	return fmt.Sprintf("[%d, %d]", r.Lo, r.Hi)
}

// UpperBound returns Hi, meaningful once the range is Definitive — the
// caller-facing "cost".
func (r Range) UpperBound() int64 {
	return r.Hi
}

// Bounded is the capability implemented by every edit and by intermediate
// computations that only expose an interval on their eventual result.
//
//   - Bounds must be monotone: successive calls return ranges that are
//     subsets of previously returned ranges (see Range.Contains).
//   - TightenBounds performs one unit of incremental work and reports
//     whether the range narrowed. Once it returns false, subsequent calls
//     must also return false, and Bounds must be Definitive.
//   - IsComplete reports whether every internal sub-computation has
//     finished; it implies no further tightening is possible.
//
// Implementations must never widen their reported range; doing so is an
// Invariant-class bug (see ErrBoundsWidened) and callers MAY validate this
// with AssertMonotone during testing.
type Bounded interface {
	Bounds() Range
	TightenBounds() bool
	IsComplete() bool
}

// AssertMonotone re-checks the "bounds only narrow" invariant given the
// previously observed range and a freshly observed one. It is a test/debug
// helper, not part of the hot path; callers typically wire it into
// property-based tests rather than production tightening loops.
func AssertMonotone(previous, current Range) error {
	if !previous.Contains(current) {
		return fmt.Errorf("bounds: %w: previous=%s current=%s", ErrBoundsWidened, previous, current)
	}

	return nil
}

// TightenUntilDefinitive repeatedly calls b.TightenBounds until it returns
// false or the bounds become Definitive, returning the final Range. This is
// the generic shape of the diff driver's loop, reusable by any Bounded
// value.
func TightenUntilDefinitive(b Bounded) Range {
	for !b.Bounds().Definitive() {
		if !b.TightenBounds() {
			break
		}
	}

	return b.Bounds()
}
