// Package bounds defines Range, the closed integer interval used throughout
// structdiff to represent a cost that is known only approximately, and
// Bounded, the capability every edit and every incremental sub-computation
// implements to narrow that interval on demand.
//
// Nothing in this package ever computes a full cost eagerly: Range only
// ever narrows (never widens) across successive calls, and Bounded is the
// contract that makes that guarantee checkable in isolation from the
// larger search.
package bounds
