package setmatch

import (
	"github.com/katalvlaran/structdiff/bounds"
	"github.com/katalvlaran/structdiff/edit"
	"github.com/katalvlaran/structdiff/treenode"
)

// MappingEdit diffs the entries of two MappingNode (or FixedKeyMappingNode)
// values. Entries whose keys compare exactly equal are paired first,
// unconditionally; whatever remains is settled either by an exact
// minimum-cost bipartite match over cross-key pairings
// (Options.AllowKeyEdits) or, for FixedKeyMappingNode, by Remove/Insert of
// the whole leftover entry.
type MappingEdit struct {
	from, to treenode.Node
	a, b     []*treenode.KeyValuePairNode

	exact []edit.Edit // exact-key KeyValuePairEdits, settled at construction

	// remA/remB are the original indices left over after the exact-key
	// pass; pairs[i][j] prices remA[i] against remB[j] and must be
	// Definitive before the assignment can be solved exactly.
	remA, remB []int
	pairs      [][]edit.Edit
	allowEdits bool

	solved   bool
	resolved []edit.Edit

	valid bool
}

// NewMappingEdit builds the exact-key pass eagerly. When opts.AllowKeyEdits,
// it then prices every remaining cross-key pairing for a later exact
// assignment solve; otherwise the remainder is settled immediately as
// whole-entry Remove/Insert pairs (FixedKeyMappingNode never allows a key
// to be edited into a different one).
func NewMappingEdit(
	from, to treenode.Node,
	a, b []*treenode.KeyValuePairNode,
	costFn CostFunc,
	opts Options,
) *MappingEdit {
	m := &MappingEdit{
		from:       from,
		to:         to,
		a:          a,
		b:          b,
		allowEdits: opts.AllowKeyEdits,
		valid:      true,
	}

	matchedA := make([]bool, len(a))
	matchedB := make([]bool, len(b))
	for i := range a {
		for j := range b {
			if matchedA[i] || matchedB[j] {
				continue
			}
			if !a[i].Key.Equal(b[j].Key) {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			keyEdit := edit.NewMatch(a[i].Key, b[j].Key, 0)
			m.exact = append(m.exact, NewKeyValuePairEdit(a[i], b[j], keyEdit, costFn(a[i].Value, b[j].Value)))
		}
	}

	for i, matched := range matchedA {
		if !matched {
			m.remA = append(m.remA, i)
		}
	}
	for j, matched := range matchedB {
		if !matched {
			m.remB = append(m.remB, j)
		}
	}

	if !opts.AllowKeyEdits {
		resolved := make([]edit.Edit, 0, len(m.exact)+len(m.remA)+len(m.remB))
		resolved = append(resolved, m.exact...)
		for _, i := range m.remA {
			resolved = append(resolved, edit.NewRemove(a[i]))
		}
		for _, j := range m.remB {
			resolved = append(resolved, edit.NewInsert(b[j]))
		}
		m.resolved = resolved
		m.solved = true

		return m
	}

	m.pairs = make([][]edit.Edit, len(m.remA))
	for pi, i := range m.remA {
		m.pairs[pi] = make([]edit.Edit, len(m.remB))
		for pj, j := range m.remB {
			keyEdit := costFn(a[i].Key, b[j].Key)
			valueEdit := costFn(a[i].Value, b[j].Value)
			m.pairs[pi][pj] = NewKeyValuePairEdit(a[i], b[j], keyEdit, valueEdit)
		}
	}
	if len(m.remA) == 0 && len(m.remB) == 0 {
		m.resolved = m.exact
		m.solved = true
	}

	return m
}

// Kind implements edit.Edit.
func (m *MappingEdit) Kind() edit.EditKind { return edit.MappingEditKind }

// FromNode implements edit.Edit.
func (m *MappingEdit) FromNode() treenode.Node { return m.from }

// ToNode implements edit.Edit.
func (m *MappingEdit) ToNode() treenode.Node { return m.to }

// Valid implements edit.Edit.
func (m *MappingEdit) Valid() bool { return m.valid }

// SetValid implements edit.Edit.
func (m *MappingEdit) SetValid(v bool) { m.valid = v }

// SubEdits returns the resolved sub-edits: exact-key KeyValuePairEdits
// first, then — once the cross-key assignment is solved — matched
// cross-key KeyValuePairEdits and leftover whole-entry Removes/Inserts.
func (m *MappingEdit) SubEdits() []edit.Edit { return m.resolved }

// Bounds implements bounds.Bounded. Before the cross-key assignment is
// solved, Lo adds the exact-key sum to the assignment-relaxation lower
// bound over the remaining entries (the sum of each remaining a-entry's
// cheapest possible outcome, matched or removed); Hi adds the exact-key sum
// to the trivial remove-everything-then-insert-everything bound on what's
// left. Once solved, Bounds is the exact sum of the resolved sub-edits.
func (m *MappingEdit) Bounds() bounds.Range {
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

	exact := bounds.Exact(0)
	for _, r := range m.exact {
		exact = exact.Add(r.Bounds())
	}

	var lo int64
	for pi, i := range m.remA {
		rowLo := m.a[i].TotalSize()
		for pj := range m.remB {
			if pl := m.pairs[pi][pj].Bounds().Lo; pl < rowLo {
				rowLo = pl
			}
		}
		lo += rowLo
	}

	var hi int64
	for _, i := range m.remA {
		hi += m.a[i].TotalSize()
	}
	for _, j := range m.remB {
		hi += m.b[j].TotalSize()
	}
	if lo > hi {
		lo = hi
	}

	return bounds.Range{Lo: exact.Lo + lo, Hi: exact.Hi + hi}
}

// TightenBounds performs one unit of work: first settling every exact-key
// sub-edit's own tightening, then — if a cross-key assignment remains to be
// solved — tightening the first non-Definitive priced pairing, then
// solving the assignment once every pairing's cost is known exactly (the
// same compute-once shape edit.Match's TightenBounds uses), then tightening
// whichever resolved sub-edit isn't yet complete.
func (m *MappingEdit) TightenBounds() bool {
	if !m.valid {
		return false
	}

	for _, r := range m.exact {
		if !r.Bounds().Definitive() {
			return r.TightenBounds()
		}
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

// solve computes the exact minimum-cost assignment over the remaining
// cross-key candidates once every pairing's cost is known exactly, using
// the same square-padding reduction as MultiSetEdit.solve: extra columns
// stand in for "remove remA[i]", extra rows for "insert remB[j]".
func (m *MappingEdit) solve() {
	n, bn := len(m.remA), len(m.remB)
	if n == 0 && bn == 0 {
		m.resolved = m.exact
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
			cost[i][j] = m.a[m.remA[i]].TotalSize()
		}
	}
	for i := n; i < size; i++ {
		for j := 0; j < bn; j++ {
			cost[i][j] = m.b[m.remB[j]].TotalSize()
		}
	}

	colForRow := solveAssignment(cost)

	resolved := make([]edit.Edit, 0, len(m.exact)+n+bn)
	resolved = append(resolved, m.exact...)
	for i := 0; i < n; i++ {
		if j := colForRow[i]; j < bn {
			resolved = append(resolved, m.pairs[i][j])
		} else {
			resolved = append(resolved, edit.NewRemove(m.a[m.remA[i]]))
		}
	}
	for i := n; i < size; i++ {
		if j := colForRow[i]; j < bn {
			resolved = append(resolved, edit.NewInsert(m.b[m.remB[j]]))
		}
	}

	m.resolved = resolved
	m.solved = true
}

// IsComplete implements bounds.Bounded.
func (m *MappingEdit) IsComplete() bool {
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
