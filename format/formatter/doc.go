// Package formatter visits an edit tree and drives a format/printer.Printer.
// Dispatch is an explicit table keyed by edit.EditKind rather than runtime
// type reflection, with StringFormatter, SequenceFormatter, and
// KeyValueFormatter as named sub-routines a caller can invoke directly for
// a sub-tree, composed the way package core splits vertex/edge concerns
// into separate files.
package formatter
