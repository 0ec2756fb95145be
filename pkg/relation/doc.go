// Package relation provides the "is visually above" graph that orders
// Lines while they are merged into rows.
//
// # Overview
//
// A [Graph] stores opaque values in an arena and addresses them by [Handle],
// the value's arena index. Identity is the handle, never the value: two
// values that compare equal are still distinct nodes. Edges point from the
// upper value to the lower one.
//
// Storage is a gonum [simple.DirectedGraph] keyed by handle, so edge
// insertion is O(1) and reachability is a plain graph walk.
//
// # Building
//
// [Build] evaluates the relation for every ordered pair of distinct values
// and adds an edge a→b whenever above(a, b) holds. This is O(n²) relation
// evaluations, which is fine for the number of elements visible on a
// screen.
//
// # Merging
//
// [Graph.Merge] fuses two nodes into a freshly allocated node. The new node
// inherits the in- and out-edges of both, the two old nodes are removed, and
// the relation is re-evaluated between the merged value and every remaining
// node, because the merged value has a different geometric extent than
// either piece. A merge of two nodes that are already connected by a path in
// either direction is rejected with [ErrMergeRejected]; re-derived edges
// that would close a cycle are skipped. The graph is therefore acyclic as
// long as the initial relation is.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. They are meant to be
// built, merged and discarded within a single navigation query.
//
// [simple.DirectedGraph]: https://pkg.go.dev/gonum.org/v1/gonum/graph/simple#DirectedGraph
package relation
