package formatter

import "github.com/katalvlaran/structdiff/edit"

// SequenceFormatter renders a ListEdit or MultiSetEdit's sub-edits as a
// bracketed, one-item-per-line block. The two container kinds share a
// rendering shape: both are a flat list of item-level edits (Match for an
// aligned/matched pair, Remove/Insert for an unpaired element).
func (f *Formatter) SequenceFormatter(e edit.Edit) {
	subs := e.SubEdits()
	if f.opts.JoinLists && len(subs) > 0 && allUnchanged(subs) {
		f.writeJoined("[", "]", subs)

		return
	}
	f.writeBlock("[", "]", subs, f.Format)
}
