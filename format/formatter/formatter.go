package formatter

import (
	"github.com/fatih/color"
	"github.com/katalvlaran/structdiff/edit"
	"github.com/katalvlaran/structdiff/format/printer"
)

// removedStyle and insertedStyle are the two styles every formatter in
// this package uses to mark deleted and added content. They match the
// red-strikethrough / green-underline convention most diff tools use.
var (
	removedStyle  = printer.Style{FG: color.FgRed, CrossedOut: true}
	insertedStyle = printer.Style{FG: color.FgGreen, Underline: true}
)

// Formatter walks an edit.Edit tree, driving a printer.Printer. Beyond the
// Printer and its rendering Options it holds no state of its own — every
// Format call is self-contained and may be invoked repeatedly or on
// sub-trees directly.
type Formatter struct {
	p    *printer.Printer
	opts Options
}

// New constructs a Formatter writing through p with the given Options.
func New(p *printer.Printer, opts Options) *Formatter {
	return &Formatter{p: p, opts: opts}
}

// Format renders e, dispatching on its Kind. Container kinds recurse into
// SubEdits; terminal kinds write directly.
func (f *Formatter) Format(e edit.Edit) {
	switch e.Kind() {
	case edit.MatchKind:
		f.formatMatch(e)
	case edit.RemoveKind:
		f.p.WriteStyled(renderNode(e.FromNode()), removedStyle)
	case edit.InsertKind:
		f.p.WriteStyled(renderNode(e.ToNode()), insertedStyle)
	case edit.StringEditKind:
		f.StringFormatter(e)
	case edit.ListEditKind, edit.MultiSetEditKind:
		f.SequenceFormatter(e)
	case edit.MappingEditKind, edit.KeyValuePairEditKind:
		f.KeyValueFormatter(e)
	case edit.XMLElementEditKind:
		f.formatXMLElement(e)
	case edit.CompoundKind:
		f.formatCompound(e)
	default:
		f.formatCompound(e)
	}
}

// formatMatch renders a Match: a single unstyled value when from and to
// are equal (the common case, an unchanged leaf), otherwise an
// old-value/new-value pair.
func (f *Formatter) formatMatch(e edit.Edit) {
	from, to := e.FromNode(), e.ToNode()
	if to == nil || from.Equal(to) {
		f.p.Write(renderNode(from))

		return
	}
	f.p.WriteStyled(renderNode(from), removedStyle)
	f.p.Write(" -> ")
	f.p.WriteStyled(renderNode(to), insertedStyle)
}

// formatCompound renders a CompoundEdit (or any other container edit
// falling back to the generic shape) as a brace-delimited, one-sub-edit-
// per-line block.
func (f *Formatter) formatCompound(e edit.Edit) {
	f.writeBlock("{", "}", e.SubEdits(), f.Format)
}

// formatXMLElement renders an XMLElementEdit's three sub-edits (tag,
// attributes, children) as an angle-bracket element.
func (f *Formatter) formatXMLElement(e edit.Edit) {
	subs := e.SubEdits()
	if len(subs) != 3 {
		f.formatCompound(e)

		return
	}
	tagEdit, attrsEdit, childrenEdit := subs[0], subs[1], subs[2]

	f.p.Write("<")
	f.Format(tagEdit)
	f.p.Write(" ")
	f.Format(attrsEdit)
	f.p.Write(">")
	f.p.Indent()
	f.p.Newline()
	f.Format(childrenEdit)
	f.p.Dedent()
	f.p.Newline()
	f.p.Write("</")
	f.Format(tagEdit)
	f.p.Write(">")
}

// writeJoined renders items on a single comma-separated line between open
// and closeTok, the compact counterpart to writeBlock.
func (f *Formatter) writeJoined(open, closeTok string, items []edit.Edit) {
	f.p.Write(open + " ")
	for i, item := range items {
		if i > 0 {
			f.p.Write(", ")
		}
		f.Format(item)
	}
	f.p.Write(" " + closeTok)
}

// allUnchanged reports whether every edit in subs leaves its node
// structurally equal — the condition under which --join-lists and
// --join-dict-items collapse a container onto one line. A KeyValuePairEdit
// counts as unchanged only if both its key and value sub-edits do, since
// it never reports MatchKind itself even when key and value both matched
// exactly.
func allUnchanged(subs []edit.Edit) bool {
	for _, s := range subs {
		switch s.Kind() {
		case edit.MatchKind:
			from, to := s.FromNode(), s.ToNode()
			if to != nil && !from.Equal(to) {
				return false
			}
		case edit.KeyValuePairEditKind:
			if !allUnchanged(s.SubEdits()) {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// writeBlock is the shared bracketed-block renderer used by
// formatCompound, SequenceFormatter, and KeyValueFormatter's MappingEdit
// case: open, one rendered item per indented line, close.
func (f *Formatter) writeBlock(open, closeTok string, items []edit.Edit, render func(edit.Edit)) {
	if len(items) == 0 {
		f.p.Write(open + closeTok)

		return
	}
	f.p.Write(open)
	f.p.Indent()
	for _, item := range items {
		f.p.Newline()
		render(item)
	}
	f.p.Dedent()
	f.p.Newline()
	f.p.Write(closeTok)
}
