package seqalign

import (
	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/edit"
	"github.com/katalvlaran/structdiff/treenode"
)

// CostFunc produces the edit for matching a against b; injected rather
// than imported to avoid a cycle with the top-level dispatcher (package
// diff imports seqalign, so seqalign cannot import diff back).
type CostFunc func(a, b treenode.Node) edit.Edit

// exactCell is a Bounded value whose cost is already known (used for the
// grid's row-0/column-0 boundary, where the cost of aligning a prefix
// against an empty sequence is just a running sum of TotalSize).
type exactCell struct{ v int64 }

func (c exactCell) Bounds() bounds.Range  { return bounds.Exact(c.v) }
func (c exactCell) TightenBounds() bool   { return false }
func (c exactCell) IsComplete() bool      { return true }

// sumBound adds two Bounded values, tightening whichever is first
// non-definitive — the same rule edit.CompoundEdit applies to its
// sub-edits, generalized to arbitrary bounds.Bounded operands.
type sumBound struct {
	a, b bounds.Bounded
}

func (s *sumBound) Bounds() bounds.Range {
	return s.a.Bounds().Add(s.b.Bounds())
}

func (s *sumBound) TightenBounds() bool {
	if !s.a.Bounds().Definitive() {
		return s.a.TightenBounds()
	}
	if !s.b.Bounds().Definitive() {
		return s.b.TightenBounds()
	}

	return false
}

func (s *sumBound) IsComplete() bool {
	return s.a.IsComplete() && s.b.IsComplete()
}

// minBound picks the cheapest of several candidate continuations. Its
// range is the elementwise minimum of its options' ranges: the best
// achievable worst case is the smallest Hi among them, and the best
// conceivable value is the smallest Lo among them. TightenBounds narrows
// whichever non-definitive option currently has the smallest Hi (the most
// promising branch, mirroring bbEngine's "branch in ascending edge weight
// order"); an option whose Lo is no better than another's already-known Hi
// is dominated and skipped.
type minBound struct {
	options []bounds.Bounded
}

func (m *minBound) Bounds() bounds.Range {
	best := m.options[0].Bounds()
	for _, o := range m.options[1:] {
		r := o.Bounds()
		if r.Lo < best.Lo {
			best.Lo = r.Lo
		}
		if r.Hi < best.Hi {
			best.Hi = r.Hi
		}
	}

	return best
}

func (m *minBound) IsComplete() bool {
	best := m.Bounds()
	for _, o := range m.options {
		r := o.Bounds()
		if o.IsComplete() && r.Hi <= best.Lo {
			return true
		}
	}
	for _, o := range m.options {
		if !o.IsComplete() {
			return false
		}
	}

	return true
}

func (m *minBound) TightenBounds() bool {
	if m.IsComplete() {
		return false
	}
	// Pick the non-definitive, non-dominated option with the smallest Hi.
	best := m.Bounds()
	bestIdx := -1
	var bestHi int64
	for i, o := range m.options {
		r := o.Bounds()
		if r.Definitive() {
			continue
		}
		if r.Lo >= best.Hi && best.Lo < best.Hi {
			continue // dominated: some other option's worst case already beats this one's best case
		}
		if bestIdx == -1 || r.Hi < bestHi {
			bestIdx = i
			bestHi = r.Hi
		}
	}
	if bestIdx == -1 {
		return false
	}

	return m.options[bestIdx].TightenBounds()
}

// choice identifies which of the three grid moves a cell ultimately took,
// used only during backtrace.
type choice int

const (
	choiceDiag choice = iota
	choiceUp
	choiceLeft
)

// cell is one (i, j) grid entry: its Bounded cost plus enough bookkeeping
// to reconstruct the winning move once complete.
type cell struct {
	bounds.Bounded
	i, j      int
	matchEdit edit.Edit // only set for interior (i>0 && j>0) cells
}

// ListEdit bounds the cost of aligning two ordered child sequences,
// produced by Align.
type ListEdit struct {
	from, to             treenode.Node
	aChildren, bChildren []treenode.Node
	grid                 [][]*cell
	positional           bool
	m, n                 int
	valid                bool
	subEdits             []edit.Edit
}

// Align builds a ListEdit over aChildren/bChildren (in order), using
// costFn to price matching any aChildren[i] against bChildren[j]. from
// and to are the owning container nodes, recorded for Edit.FromNode/ToNode.
func Align(from, to treenode.Node, aChildren, bChildren []treenode.Node, costFn CostFunc, opts Options) *ListEdit {
	m, n := len(aChildren), len(bChildren)
	le := &ListEdit{
		from: from, to: to, m: m, n: n, valid: true,
		aChildren: aChildren, bChildren: bChildren,
	}

	if !opts.Enabled {
		le.positional = true
		le.grid = [][]*cell{{buildPositionalCell(aChildren, bChildren, costFn)}}

		return le
	}

	grid := make([][]*cell, m+1)
	for i := 0; i <= m; i++ {
		grid[i] = make([]*cell, n+1)
	}
	grid[0][0] = &cell{Bounded: exactCell{0}, i: 0, j: 0}
	for i := 1; i <= m; i++ {
		prev := grid[i-1][0]
		grid[i][0] = &cell{
			Bounded: &sumBound{a: prev, b: edit.NewRemove(aChildren[i-1])},
			i:       i,
		}
	}
	for j := 1; j <= n; j++ {
		prev := grid[0][j-1]
		grid[0][j] = &cell{
			Bounded: &sumBound{a: prev, b: edit.NewInsert(bChildren[j-1])},
			j:       j,
		}
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			match := costFn(aChildren[i-1], bChildren[j-1])
			diag := &sumBound{a: grid[i-1][j-1], b: match}
			up := &sumBound{a: grid[i-1][j], b: edit.NewRemove(aChildren[i-1])}
			left := &sumBound{a: grid[i][j-1], b: edit.NewInsert(bChildren[j-1])}
			grid[i][j] = &cell{
				Bounded:   &minBound{options: []bounds.Bounded{diag, up, left}},
				i:         i,
				j:         j,
				matchEdit: match,
			}
		}
	}
	le.grid = grid

	return le
}

// buildPositionalCell implements the degraded, alignment-free fallback:
// pair elements index by index, then Remove or Insert whatever trailing
// tail the shorter sequence lacks.
func buildPositionalCell(a, b []treenode.Node, costFn CostFunc) *cell {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	edits := make([]edit.Edit, 0, n+absInt(len(a)-len(b)))
	for i := 0; i < n; i++ {
		edits = append(edits, costFn(a[i], b[i]))
	}
	for i := n; i < len(a); i++ {
		edits = append(edits, edit.NewRemove(a[i]))
	}
	for j := n; j < len(b); j++ {
		edits = append(edits, edit.NewInsert(b[j]))
	}

	return &cell{Bounded: &positionalSum{edits: edits}}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// positionalSum sums a fixed list of edits, tightening the first
// non-definitive one — the degraded-mode equivalent of CompoundEdit.
type positionalSum struct{ edits []edit.Edit }

func (p *positionalSum) Bounds() bounds.Range {
	total := bounds.Exact(0)
	for _, e := range p.edits {
		total = total.Add(e.Bounds())
	}

	return total
}

func (p *positionalSum) TightenBounds() bool {
	for _, e := range p.edits {
		if !e.Bounds().Definitive() {
			return e.TightenBounds()
		}
	}

	return false
}

func (p *positionalSum) IsComplete() bool {
	for _, e := range p.edits {
		if !e.IsComplete() {
			return false
		}
	}

	return true
}

// Kind implements edit.Edit.
func (l *ListEdit) Kind() edit.EditKind { return edit.ListEditKind }

// FromNode implements edit.Edit.
func (l *ListEdit) FromNode() treenode.Node { return l.from }

// ToNode implements edit.Edit.
func (l *ListEdit) ToNode() treenode.Node { return l.to }

// Valid implements edit.Edit.
func (l *ListEdit) Valid() bool { return l.valid }

// SetValid implements edit.Edit.
func (l *ListEdit) SetValid(v bool) { l.valid = v }

func (l *ListEdit) finalCell() *cell {
	if l.positional {
		return l.grid[0][0]
	}

	return l.grid[l.m][l.n]
}

// Bounds implements bounds.Bounded.
func (l *ListEdit) Bounds() bounds.Range {
	if !l.valid {
		return bounds.InfiniteRange()
	}

	return l.finalCell().Bounds()
}

// TightenBounds implements bounds.Bounded.
func (l *ListEdit) TightenBounds() bool {
	if !l.valid {
		return false
	}

	return l.finalCell().TightenBounds()
}

// IsComplete implements bounds.Bounded.
func (l *ListEdit) IsComplete() bool { return l.finalCell().IsComplete() }

// SubEdits implements edit.Edit: the ordered list of per-element edits
// realizing the minimum-cost alignment, available once complete.
func (l *ListEdit) SubEdits() []edit.Edit {
	if !l.IsComplete() {
		return nil
	}
	if l.subEdits == nil {
		l.subEdits = l.backtrace()
	}

	return l.subEdits
}

func (l *ListEdit) backtrace() []edit.Edit {
	if l.positional {
		positional := l.finalCell().Bounded.(*positionalSum)

		return append([]edit.Edit(nil), positional.edits...)
	}

	var out []edit.Edit
	i, j := l.m, l.n
	for i > 0 || j > 0 {
		switch {
		case j == 0:
			out = append([]edit.Edit{edit.NewRemove(l.aChildren[i-1])}, out...)
			i--
		case i == 0:
			out = append([]edit.Edit{edit.NewInsert(l.bChildren[j-1])}, out...)
			j--
		default:
			c := l.grid[i][j]
			switch l.winningMove(c) {
			case choiceDiag:
				out = append([]edit.Edit{c.matchEdit}, out...)
				i--
				j--
			case choiceUp:
				out = append([]edit.Edit{edit.NewRemove(l.aChildren[i-1])}, out...)
				i--
			case choiceLeft:
				out = append([]edit.Edit{edit.NewInsert(l.bChildren[j-1])}, out...)
				j--
			}
		}
	}

	return out
}

// winningMove reports which of the three candidate moves produced c's
// final (definitive) value. Ties prefer diag (keeps matched runs
// contiguous, the list-level analogue of strdist's match-adjacency rule),
// then left over up: the backtrace walks from the last cell to the first,
// so taking the Insert first leaves the Remove ahead of it in the script.
func (l *ListEdit) winningMove(c *cell) choice {
	mb := c.Bounded.(*minBound)
	want := mb.Bounds().Hi
	order := []choice{choiceDiag, choiceUp, choiceLeft}
	for _, idx := range []int{0, 2, 1} {
		opt := mb.options[idx]
		if opt.Bounds().Hi == want && opt.Bounds().Definitive() {
			return order[idx]
		}
	}

	return choiceDiag
}
