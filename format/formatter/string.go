package formatter

import "github.com/katalvlaran/structdiff/edit"

// StringFormatter renders a StringEditKind edit's character-level
// Match/Remove/Insert script inline, inside a single pair of quotes,
// rather than the one-sub-edit-per-line block every other container kind
// uses — a string's edit script reads naturally as a single word with
// some characters struck through and others underlined, not as a list.
//
// SubEdits is nil whenever the underlying StringEdit wasn't built with
// ReturnEdits set (or hasn't finished tightening yet); in that case the
// whole-string Match/Remove/Insert rendering is used instead, matching
// how every other terminal edit already renders without a script.
func (f *Formatter) StringFormatter(e edit.Edit) {
	subs := e.SubEdits()
	if subs == nil {
		f.formatMatch(e)

		return
	}

	f.p.Write("\"")
	for _, s := range subs {
		switch s.Kind() {
		case edit.RemoveKind:
			f.p.WriteStyled(renderRune(s.FromNode()), removedStyle)
		case edit.InsertKind:
			f.p.WriteStyled(renderRune(s.ToNode()), insertedStyle)
		default: // MatchKind: backtrace only emits these for equal runes
			f.p.Write(renderRune(s.FromNode()))
		}
	}
	f.p.Write("\"")
}
