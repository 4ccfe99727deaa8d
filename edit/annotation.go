package edit

import (
	"sync"

	"github.com/katalvlaran/structdiff/treenode"
)

// Annotation records, for a single Node, the outcome of diffing it: a
// plain side-table value rather than a runtime-constructed parallel class.
type Annotation struct {
	// Removed is true if this node was removed in its entirety.
	Removed bool

	// Inserted lists nodes inserted adjacent to this one (used when a
	// container records newly-inserted children).
	Inserted []treenode.Node

	// MatchedTo is the node this one was matched against, if any.
	MatchedTo treenode.Node

	// EditList is the ordered list of edits that apply to this node, in
	// the order AppendEdit was called for it.
	EditList []Edit
}

// AnnotationTable is a side table from Node identity to Annotation, filled
// by its caller; package diff and the formatter do not read or write it. Node is
// implemented by pointer receivers (package treenode), so identity
// comparison via Go's built-in map equality is exactly pointer identity —
// no separate identity key is needed.
//
// Mirrors core.Graph's thread-safe-by-default RWMutex convention: diffing
// itself is single-threaded, but a shared table is cheap to protect and
// callers in package cmd/structdiff may reuse one table across goroutines
// inspecting results concurrently.
type AnnotationTable struct {
	mu      sync.RWMutex
	entries map[treenode.Node]*Annotation
}

// NewAnnotationTable constructs an empty AnnotationTable.
func NewAnnotationTable() *AnnotationTable {
	return &AnnotationTable{entries: make(map[treenode.Node]*Annotation)}
}

// Get returns the Annotation for n, creating an empty one on first access.
func (t *AnnotationTable) Get(n treenode.Node) *Annotation {
	t.mu.RLock()
	a, ok := t.entries[n]
	t.mu.RUnlock()
	if ok {
		return a
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if a, ok = t.entries[n]; ok {
		return a
	}
	a = &Annotation{}
	t.entries[n] = a

	return a
}

// Peek returns the Annotation for n without creating one, and whether it
// existed.
func (t *AnnotationTable) Peek(n treenode.Node) (*Annotation, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	a, ok := t.entries[n]

	return a, ok
}

// MarkRemoved flags n as removed.
func (t *AnnotationTable) MarkRemoved(n treenode.Node) {
	t.Get(n).Removed = true
}

// MarkInserted records child as inserted adjacent to parent.
func (t *AnnotationTable) MarkInserted(parent treenode.Node, child treenode.Node) {
	a := t.Get(parent)
	a.Inserted = append(a.Inserted, child)
}

// MarkMatched records that n was matched to target.
func (t *AnnotationTable) MarkMatched(n treenode.Node, target treenode.Node) {
	t.Get(n).MatchedTo = target
}

// AppendEdit appends e to the end of n's edit list.
func (t *AnnotationTable) AppendEdit(n treenode.Node, e Edit) {
	a := t.Get(n)
	a.EditList = append(a.EditList, e)
}
