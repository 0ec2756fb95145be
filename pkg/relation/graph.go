package relation

import (
	"errors"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

var (
	// ErrUnknownNode is returned by [Graph.Merge] when a handle does not
	// refer to a live node, or when both handles are the same node.
	ErrUnknownNode = errors.New("unknown relation node")

	// ErrMergeRejected is returned by [Graph.Merge] when the two nodes are
	// already connected by a path in either direction. Merging them would
	// create a cycle.
	ErrMergeRejected = errors.New("nodes are ordered; merge rejected")

	// ErrGraphHasCycle is returned by [Graph.Validate] when the edges form a
	// directed cycle.
	ErrGraphHasCycle = errors.New("relation graph contains a cycle")
)

// Handle identifies a node. Handles are arena indices: the n-th value ever
// added (including merged values) has handle n. Handles of merged-away
// nodes are never reused.
type Handle int64

// Func decides whether a is above b.
type Func[T any] func(a, b T) bool

// Graph is a directed graph of "is above" edges over arena-owned values.
// The zero value is not usable; create one with [New] or [Build].
type Graph[T any] struct {
	g      *simple.DirectedGraph
	values []T
	alive  []bool
	above  Func[T]
}

// New returns an empty graph that uses above to derive edges for merged
// nodes.
func New[T any](above Func[T]) *Graph[T] {
	return &Graph[T]{g: simple.NewDirectedGraph(), above: above}
}

// Build returns a graph holding values, where values[i] has handle i, with
// an edge a→b for every ordered pair of distinct values where above holds.
func Build[T any](values []T, above Func[T]) *Graph[T] {
	r := New(above)
	for _, v := range values {
		r.Add(v)
	}
	for i := range values {
		for j := range values {
			if i != j && above(values[i], values[j]) {
				r.addEdge(Handle(i), Handle(j))
			}
		}
	}
	return r
}

// Add allocates a new node holding v and returns its handle. No edges are
// derived; use Build for that.
func (r *Graph[T]) Add(v T) Handle {
	h := Handle(len(r.values))
	r.values = append(r.values, v)
	r.alive = append(r.alive, true)
	r.g.AddNode(simple.Node(h))
	return h
}

func (r *Graph[T]) addEdge(from, to Handle) {
	if from == to {
		return
	}
	r.g.SetEdge(r.g.NewEdge(simple.Node(from), simple.Node(to)))
}

// Has reports whether h refers to a live node.
func (r *Graph[T]) Has(h Handle) bool {
	return h >= 0 && int(h) < len(r.alive) && r.alive[h]
}

// Value returns the value stored at h. ok is false for dead or unknown
// handles.
func (r *Graph[T]) Value(h Handle) (v T, ok bool) {
	if !r.Has(h) {
		return v, false
	}
	return r.values[h], true
}

// Len returns the number of live nodes.
func (r *Graph[T]) Len() int { return r.g.Nodes().Len() }

// Handles returns the live handles in ascending order.
func (r *Graph[T]) Handles() []Handle {
	var hs []Handle
	for h, ok := range r.alive {
		if ok {
			hs = append(hs, Handle(h))
		}
	}
	return hs
}

// OutNeighbors returns the nodes directly below h, in ascending order.
func (r *Graph[T]) OutNeighbors(h Handle) []Handle {
	return sortedHandles(r.g.From(int64(h)))
}

// InNeighbors returns the nodes directly above h, in ascending order.
func (r *Graph[T]) InNeighbors(h Handle) []Handle {
	return sortedHandles(r.g.To(int64(h)))
}

func sortedHandles(it graph.Nodes) []Handle {
	var hs []Handle
	for it.Next() {
		hs = append(hs, Handle(it.Node().ID()))
	}
	slices.Sort(hs)
	return hs
}

// HasEdge reports whether the edge from→to exists.
func (r *Graph[T]) HasEdge(from, to Handle) bool {
	return r.g.HasEdgeFromTo(int64(from), int64(to))
}

// Edges returns every edge as a (from, to) pair, sorted by from then to.
func (r *Graph[T]) Edges() [][2]Handle {
	var edges [][2]Handle
	for _, from := range r.Handles() {
		for _, to := range r.OutNeighbors(from) {
			edges = append(edges, [2]Handle{from, to})
		}
	}
	return edges
}

// Reachable reports whether a directed path of at least one edge leads from
// a to b. Reachable(x, x) is true only if x lies on a cycle.
func (r *Graph[T]) Reachable(a, b Handle) bool {
	if !r.Has(a) || !r.Has(b) {
		return false
	}
	found := false
	r.walk(a, func(h Handle) bool {
		found = h == b
		return found
	})
	return found
}

// ReachableEitherDirection reports whether a and b are ordered, i.e. a
// path exists from a to b or from b to a.
func (r *Graph[T]) ReachableEitherDirection(a, b Handle) bool {
	return r.Reachable(a, b) || r.Reachable(b, a)
}

// Descendants returns the number of distinct nodes reachable from h,
// excluding h itself.
func (r *Graph[T]) Descendants(h Handle) int {
	if !r.Has(h) {
		return 0
	}
	n := 0
	r.walk(h, func(d Handle) bool {
		if d != h {
			n++
		}
		return false
	})
	return n
}

// walk visits every node reachable from start by at least one edge, each
// once, until visit returns true.
func (r *Graph[T]) walk(start Handle, visit func(Handle) bool) {
	seen := map[int64]bool{}
	stack := []int64{int64(start)}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for it := r.g.From(id); it.Next(); {
			next := it.Node().ID()
			if seen[next] {
				continue
			}
			seen[next] = true
			if visit(Handle(next)) {
				return
			}
			stack = append(stack, next)
		}
	}
}

// Merge replaces a and b with a new node holding merged and returns its
// handle.
//
// The new node inherits every edge into or out of a or b. Afterwards the
// relation is evaluated between merged and each remaining node and the
// resulting edges are added, unless an edge would close a cycle.
//
// Merge returns ErrUnknownNode if a or b is not live or a == b, and
// ErrMergeRejected, leaving the graph untouched, if a and b are ordered.
func (r *Graph[T]) Merge(a, b Handle, merged T) (Handle, error) {
	if a == b || !r.Has(a) || !r.Has(b) {
		return -1, ErrUnknownNode
	}
	if r.ReachableEitherDirection(a, b) {
		return -1, ErrMergeRejected
	}

	var ins, outs []Handle
	for _, old := range [2]Handle{a, b} {
		ins = append(ins, r.InNeighbors(old)...)
		outs = append(outs, r.OutNeighbors(old)...)
	}

	h := r.Add(merged)
	for _, in := range ins {
		r.addEdge(in, h)
	}
	for _, out := range outs {
		r.addEdge(h, out)
	}

	for _, old := range [2]Handle{a, b} {
		r.g.RemoveNode(int64(old))
		r.alive[old] = false
	}

	for _, other := range r.Handles() {
		if other == h {
			continue
		}
		ov := r.values[other]
		if r.above(merged, ov) && !r.HasEdge(h, other) && !r.Reachable(other, h) {
			r.addEdge(h, other)
		}
		if r.above(ov, merged) && !r.HasEdge(other, h) && !r.Reachable(h, other) {
			r.addEdge(other, h)
		}
	}
	return h, nil
}

// Validate returns ErrGraphHasCycle if the edges contain a directed cycle.
func (r *Graph[T]) Validate() error {
	if _, err := topo.Sort(r.g); err != nil {
		return ErrGraphHasCycle
	}
	return nil
}
