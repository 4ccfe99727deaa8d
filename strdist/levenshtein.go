package strdist

import (
	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/edit"
	"github.com/katalvlaran/structdiff/treenode"
)

// StringEdit bounds the character-level Levenshtein distance between two
// StringNode leaves, filling the DP table one row per TightenBounds call. It implements edit.Edit directly rather than via
// edit.CompoundEdit: its Bounds is the DP distance itself, not the sum of
// the character-level script SubEdits later exposes for rendering — the
// two are related but not arithmetically equal once a mismatched run is
// rendered as a Remove/Insert pair instead of a single substitution.
type StringEdit struct {
	from, to *treenode.StringNode
	s, t     []rune
	opts     Options

	matrix     [][]int64 // retained rows; nil unless FullMatrix
	lastRow    []int64   // most recently completed row, always kept
	rowsFilled int       // rows of the (m+1)-row table completed so far
	lo0, hi0   int64     // bounds extremes, fixed at construction

	valid    bool
	subEdits []edit.Edit // memoized backtrace, computed on first SubEdits call
}

// NewStringEdit constructs a StringEdit over from and to. opts is
// validated; an invalid combination returns an error rather than panicking
// later.
func NewStringEdit(from, to *treenode.StringNode, opts Options) (*StringEdit, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	s := []rune(from.Value)
	t := []rune(to.Value)
	m, n := len(s), len(t)

	row0 := make([]int64, n+1)
	for j := range row0 {
		row0[j] = int64(j)
	}

	e := &StringEdit{
		from: from, to: to, s: s, t: t, opts: opts,
		lastRow:    row0,
		rowsFilled: 1,
		lo0:        absInt64(int64(m - n)),
		hi0:        maxInt64(int64(m), int64(n)),
		valid:      true,
	}
	if opts.MemoryMode == FullMatrix {
		e.matrix = make([][]int64, m+1)
		e.matrix[0] = row0
	}

	return e, nil
}

// Kind implements edit.Edit.
func (e *StringEdit) Kind() edit.EditKind { return edit.StringEditKind }

// FromNode implements edit.Edit.
func (e *StringEdit) FromNode() treenode.Node { return e.from }

// ToNode implements edit.Edit.
func (e *StringEdit) ToNode() treenode.Node { return e.to }

// Valid implements edit.Edit.
func (e *StringEdit) Valid() bool { return e.valid }

// SetValid implements edit.Edit.
func (e *StringEdit) SetValid(v bool) { e.valid = v }

// SubEdits implements edit.Edit: a character-level Match/Remove/Insert
// script, available once the edit is complete and opts.ReturnEdits is set.
// Returns nil otherwise (including while incomplete), matching the
// terminal-edit convention of "nil means nothing more to recurse into yet".
func (e *StringEdit) SubEdits() []edit.Edit {
	if !e.opts.ReturnEdits || !e.IsComplete() {
		return nil
	}
	if e.subEdits == nil {
		e.subEdits = e.backtrace()
	}

	return e.subEdits
}

// totalRows is the number of rows in the (m+1)-row DP table.
func (e *StringEdit) totalRows() int { return len(e.s) + 1 }

// IsComplete implements bounds.Bounded.
func (e *StringEdit) IsComplete() bool { return e.rowsFilled == e.totalRows() }

// Bounds implements bounds.Bounded. While incomplete, it narrows using the
// DP table's 1-Lipschitz property: completing one more row can change the
// target cell (the eventual distance) by at most 1 in either direction, so
// [cur-remaining, cur+remaining] intersected with the trivial [lo0, hi0]
// bound is always a valid, and strictly narrowing, range.
func (e *StringEdit) Bounds() bounds.Range {
	if !e.valid {
		return bounds.InfiniteRange()
	}

	n := len(e.t)
	cur := e.lastRow[n]
	if e.IsComplete() {
		return bounds.Exact(cur)
	}

	remaining := int64(e.totalRows() - e.rowsFilled)
	lo := maxInt64(e.lo0, cur-remaining)
	hi := minInt64(e.hi0, cur+remaining)
	if lo < 0 {
		lo = 0
	}

	return bounds.Range{Lo: lo, Hi: hi}
}

// TightenBounds implements bounds.Bounded: computes the next row of the DP
// table.
func (e *StringEdit) TightenBounds() bool {
	if !e.valid || e.IsComplete() {
		return false
	}

	i := e.rowsFilled // row being computed, 1-indexed into e.s
	n := len(e.t)
	newRow := make([]int64, n+1)
	newRow[0] = int64(i)
	for j := 1; j <= n; j++ {
		var subCost int64
		if e.s[i-1] != e.t[j-1] {
			subCost = 1
		}
		del := e.lastRow[j] + 1
		ins := newRow[j-1] + 1
		sub := e.lastRow[j-1] + subCost
		newRow[j] = min3(del, ins, sub)
	}

	if e.matrix != nil {
		e.matrix[i] = newRow
	}
	e.lastRow = newRow
	e.rowsFilled++

	return true
}

// moveKind tags one backtrace step.
type moveKind int

const (
	moveMatch moveKind = iota
	moveSub
	moveDel
	moveIns
)

type move struct {
	kind   moveKind
	si, ti int // 1-based indices into s/t of the involved character(s)
}

// backtrace walks the completed matrix from (m, n) to (0, 0), at each cell
// preferring, in order: a free diagonal match, a diagonal substitution, a
// deletion, then an insertion: diagonal matches are always taken first,
// and within a maximal run of non-match moves every Remove is emitted
// before any Insert rather than interleaving remove/insert pairs position
// by position.
func (e *StringEdit) backtrace() []edit.Edit {
	i, j := len(e.s), len(e.t)
	moves := make([]move, 0, i+j)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && e.s[i-1] == e.t[j-1] && e.matrix[i][j] == e.matrix[i-1][j-1]:
			moves = append(moves, move{moveMatch, i, j})
			i--
			j--
		case i > 0 && j > 0 && e.matrix[i][j] == e.matrix[i-1][j-1]+1:
			moves = append(moves, move{moveSub, i, j})
			i--
			j--
		case i > 0 && e.matrix[i][j] == e.matrix[i-1][j]+1:
			moves = append(moves, move{moveDel, i, j})
			i--
		default:
			moves = append(moves, move{moveIns, i, j})
			j--
		}
	}
	for l, r := 0, len(moves)-1; l < r; l, r = l+1, r-1 {
		moves[l], moves[r] = moves[r], moves[l]
	}

	out := make([]edit.Edit, 0, len(moves))
	var pendingRemoves, pendingInserts []edit.Edit
	flush := func() {
		out = append(out, pendingRemoves...)
		out = append(out, pendingInserts...)
		pendingRemoves = pendingRemoves[:0]
		pendingInserts = pendingInserts[:0]
	}
	for _, mv := range moves {
		switch mv.kind {
		case moveMatch:
			flush()
			out = append(out, edit.NewMatch(
				e.charNode(e.s[mv.si-1], e.from.Quoted),
				e.charNode(e.t[mv.ti-1], e.to.Quoted),
				0,
			))
		case moveSub:
			pendingRemoves = append(pendingRemoves, edit.NewRemove(e.charNode(e.s[mv.si-1], e.from.Quoted)))
			pendingInserts = append(pendingInserts, edit.NewInsert(e.charNode(e.t[mv.ti-1], e.to.Quoted)))
		case moveDel:
			pendingRemoves = append(pendingRemoves, edit.NewRemove(e.charNode(e.s[mv.si-1], e.from.Quoted)))
		case moveIns:
			pendingInserts = append(pendingInserts, edit.NewInsert(e.charNode(e.t[mv.ti-1], e.to.Quoted)))
		}
	}
	flush()

	return out
}

func (e *StringEdit) charNode(r rune, quoted bool) *treenode.StringNode {
	return treenode.NewStringNode(string(r), quoted)
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

func min3(a, b, c int64) int64 {
	return minInt64(a, minInt64(b, c))
}
