package formatter

import "github.com/katalvlaran/structdiff/edit"

// KeyValueFormatter renders either a whole MappingEdit (a brace-delimited
// block of entry-level edits) or a single KeyValuePairEdit (a "key: value"
// line), dispatching on which kind it was actually handed.
func (f *Formatter) KeyValueFormatter(e edit.Edit) {
	if e.Kind() == edit.KeyValuePairEditKind {
		f.formatKeyValuePair(e)

		return
	}
	subs := e.SubEdits()
	if f.opts.JoinDictItems && len(subs) > 0 && allUnchanged(subs) {
		f.writeJoined("{", "}", subs)

		return
	}
	f.writeBlock("{", "}", subs, f.Format)
}

// formatKeyValuePair renders a single matched entry as "key: value",
// recursing into both the key and value sub-edits so a renamed key (when
// key edits are allowed) is styled the same way any other changed leaf is.
func (f *Formatter) formatKeyValuePair(e edit.Edit) {
	subs := e.SubEdits()
	if len(subs) != 2 {
		f.formatCompound(e)

		return
	}
	keyEdit, valueEdit := subs[0], subs[1]

	f.Format(keyEdit)
	f.p.Write(": ")
	f.Format(valueEdit)
}
