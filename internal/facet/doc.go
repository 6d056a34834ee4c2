// Package facet implements the pathway filter engine: an immutable
// [Selection] value holding the chosen facet values, and [Match], a pure
// function computing which records satisfy it.
//
// Matching is ORed within a facet group and ANDed across groups. Groups with
// nothing selected impose no constraint, so the empty selection matches every
// record. Each active group becomes a [Clause]; a [Chain] evaluates them in
// order and stops at the first clause a record fails.
package facet
