// Package nav answers directional caret queries ("what is above, below,
// before or after this element") over a tree of laid-out elements.
//
// # Contract
//
// Callers supply their elements through the [Element] interface: a bounding
// box in a shared coordinate space and the direct spatial children to
// navigate between. Elements are used as map keys, so implementations must
// be comparable (pointers are the usual choice).
//
// The remembered column for vertical moves, carryX, is caller-owned state
// exposed through [CarryStore]. A [Navigator] only reads it. [Focus] is a
// ready-made caller that sets it on every vertical move and clears it on
// horizontal moves.
//
// # Per-query rebuild
//
// Every query rebuilds Lines from the current bounds, runs [grid.Sort] and
// inspects the resulting rows. Nothing is cached between queries, so layout
// changes are picked up immediately.
//
// # Absent results
//
// "No such neighbor" is reported as (nil, false), never as an error. An
// element that is not among its parent's children is treated the same way.
package nav
