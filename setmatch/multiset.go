package setmatch

import (
	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/edit"
	"github.com/katalvlaran/structdiff/treenode"
)

// MultiSetEdit diffs the unordered children of two MultiSetNode values via
// an exact minimum-cost bipartite match (package doc). It implements
// edit.Edit.
type MultiSetEdit struct {
	from, to treenode.Node
	a, b     []treenode.Node

	// pairs[i][j] is costFn(a[i], b[j]), priced once up front. Every entry
	// must be Definitive before the assignment can be solved exactly: the
	// solver needs a real scalar cost matrix, not a bound on one.
	pairs [][]edit.Edit

	solved   bool
	resolved []edit.Edit

	valid bool
}

// NewMultiSetEdit prices every (a[i], b[j]) pairing via costFn. from and to
// are the enclosing MultiSetNode values, carried only for FromNode/ToNode.
func NewMultiSetEdit(from, to treenode.Node, a, b []treenode.Node, costFn CostFunc) *MultiSetEdit {
	m := &MultiSetEdit{
		from:  from,
		to:    to,
		a:     a,
		b:     b,
		pairs: make([][]edit.Edit, len(a)),
		valid: true,
	}
	for i := range a {
		m.pairs[i] = make([]edit.Edit, len(b))
		for j := range b {
			m.pairs[i][j] = costFn(a[i], b[j])
		}
	}
	if len(a) == 0 && len(b) == 0 {
		m.solved = true
	}

	return m
}

// Kind implements edit.Edit.
func (m *MultiSetEdit) Kind() edit.EditKind { return edit.MultiSetEditKind }

// FromNode implements edit.Edit.
func (m *MultiSetEdit) FromNode() treenode.Node { return m.from }

// ToNode implements edit.Edit.
func (m *MultiSetEdit) ToNode() treenode.Node { return m.to }

// Valid implements edit.Edit.
func (m *MultiSetEdit) Valid() bool { return m.valid }

// SetValid implements edit.Edit.
func (m *MultiSetEdit) SetValid(v bool) { m.valid = v }

// SubEdits returns the resolved sub-edits once the assignment is solved:
// for each source element in source-index order, its matched pair or its
// Remove, then leftover Inserts. MultiSetNode has no canonical order of its own, so
// this is as good as any.
func (m *MultiSetEdit) SubEdits() []edit.Edit { return m.resolved }

// Bounds implements bounds.Bounded. Before the assignment is solved, Lo is
// the classic assignment-relaxation lower bound — the sum, over every
// a[i], of its cheapest possible outcome (matched to some b[j], or removed
// outright), ignoring that two rows can't share a column — and Hi is the
// trivial remove-everything-then-insert-everything upper bound; both only
// narrow as the priced pairs' own bounds narrow. Once solved, Bounds is the
// exact sum of the resolved sub-edits.
func (m *MultiSetEdit) Bounds() bounds.Range {
	if !m.valid {
		return bounds.InfiniteRange()
	}
	if m.solved {
		total := bounds.Exact(0)
		for _, r := range m.resolved {
			total = total.Add(r.Bounds())
		}

		return total
	}

	var lo int64
	for i := range m.a {
		rowLo := m.a[i].TotalSize()
		for j := range m.b {
			if pl := m.pairs[i][j].Bounds().Lo; pl < rowLo {
				rowLo = pl
			}
		}
		lo += rowLo
	}

	var hi int64
	for _, n := range m.a {
		hi += n.TotalSize()
	}
	for _, n := range m.b {
		hi += n.TotalSize()
	}
	if lo > hi {
		lo = hi
	}

	return bounds.Range{Lo: lo, Hi: hi}
}

// TightenBounds performs one unit of work. While any priced pairing's cost
// is not yet Definitive, it tightens the first one found — the assignment
// solver needs exact costs, not bounds on them. Once every pairing is
// priced exactly, it solves the assignment in one shot (the same
// compute-once shape edit.Match's TightenBounds uses for a fact that is
// already fully known), then tightens whichever resolved sub-edit isn't
// yet complete.
func (m *MultiSetEdit) TightenBounds() bool {
	if !m.valid {
		return false
	}
	if m.solved {
		for _, r := range m.resolved {
			if !r.Bounds().Definitive() {
				return r.TightenBounds()
			}
		}

		return false
	}

	for i := range m.pairs {
		for j := range m.pairs[i] {
			if !m.pairs[i][j].Bounds().Definitive() {
				return m.pairs[i][j].TightenBounds()
			}
		}
	}

	m.solve()

	return true
}

// solve computes the exact minimum-cost assignment once every candidate
// pairing's cost is known exactly. It pads the n×m real cost matrix into a
// square (n+m)×(n+m) matrix — n extra columns standing in for "remove
// a[i]", m extra rows standing in for "insert b[j]", zero cost between two
// padding cells — the standard reduction of rectangular assignment-with-
// reject to square assignment, then runs solveAssignment on it.
func (m *MultiSetEdit) solve() {
	n, bn := len(m.a), len(m.b)
	if n == 0 && bn == 0 {
		m.solved = true

		return
	}

	size := n + bn
	cost := make([][]int64, size)
	for i := range cost {
		cost[i] = make([]int64, size)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < bn; j++ {
			cost[i][j] = m.pairs[i][j].Bounds().UpperBound()
		}
		for j := bn; j < size; j++ {
			cost[i][j] = m.a[i].TotalSize()
		}
	}
	for i := n; i < size; i++ {
		for j := 0; j < bn; j++ {
			cost[i][j] = m.b[j].TotalSize()
		}
		// cost[i][j] for j>=bn is left at its zero value: padding-to-padding.
	}

	colForRow := solveAssignment(cost)

	resolved := make([]edit.Edit, 0, n+bn)
	for i := 0; i < n; i++ {
		if j := colForRow[i]; j < bn {
			resolved = append(resolved, m.pairs[i][j])
		} else {
			resolved = append(resolved, edit.NewRemove(m.a[i]))
		}
	}
	for i := n; i < size; i++ {
		if j := colForRow[i]; j < bn {
			resolved = append(resolved, edit.NewInsert(m.b[j]))
		}
	}

	m.resolved = resolved
	m.solved = true
}

// IsComplete implements bounds.Bounded.
func (m *MultiSetEdit) IsComplete() bool {
	if !m.solved {
		return false
	}
	for _, r := range m.resolved {
		if !r.IsComplete() {
			return false
		}
	}

	return true
}
