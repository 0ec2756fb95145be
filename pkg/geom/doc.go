// Package geom provides the geometric model used to infer visual rows from
// laid-out boxes.
//
// # Overview
//
// Every laid-out element is reduced to a [Line]: an ordered sequence of
// [Point] values, one per vertical edge of the element. A Point is a caret
// sink: a horizontal offset N plus the vertical [Interval] the edge covers.
// Merging Lines of horizontally adjacent elements produces a row, which is
// still a Line, only longer and possibly jagged.
//
// # Predicates
//
// The package answers three questions about two Lines:
//
//   - [IsRight] / [IsLeft] / [IsAside]: are they horizontally disjoint?
//   - [PointCompareLine]: is a point above or below a Line at its offset?
//   - [IsAbove]: is one Line visually above the other?
//
// [IsAbove] scans points one at a time instead of running a single
// geometric test. The first point of one Line that falls within the
// horizontal span of the other decides the result. This tolerates partial
// horizontal overlap and jagged merged rows.
//
// # Degeneracies
//
// Empty Lines are inert: every predicate treats them as incomparable.
// Zero-length segments and coincident vertical centers yield
// [Incomparable] rather than an error.
//
// # Distance
//
// Candidate merges are ranked with a [DistanceFunc]. Two strategies exist,
// [EndpointDistance] and [SampledDistance]; both return +Inf when the two
// points share no vertical interval, which marks a pair as not mergeable.
package geom
