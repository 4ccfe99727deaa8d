// Package edit defines the Edit primitives: Match, Remove, Insert, and
// CompoundEdit, plus the EditKind tag used by every specialised compound
// (StringEdit in package strdist, ListEdit in package seqalign,
// MultiSetEdit/MappingEdit/KeyValuePairEdit in package setmatch,
// XMLElementEdit in package diff) for the formatter's dispatch table.
//
// Every Edit embeds bounds.Bounded: its cost is only ever known as a
// narrowing Range until TightenBounds has driven it to a single value.
// A Valid flag lets an outer search mark an edit as dominated; an invalid
// edit reports bounds.InfiniteRange() so it always loses comparisons.
//
// Annotation and AnnotationTable implement an edited-tree decorator as a
// side table keyed by Node identity rather than by subclassing a parallel
// tree.
package edit
