package nav

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/navgrid/pkg/geom"
	"github.com/matzehuels/navgrid/pkg/grid"
	"github.com/matzehuels/navgrid/pkg/observability"
)

// Options configures a [Navigator].
type Options struct {
	// Distance ranks merge candidates. Nil selects geom.EndpointDistance.
	Distance geom.DistanceFunc

	// Carry stores remembered columns. Nil selects a fresh MapCarry.
	Carry CarryStore

	// Logger receives debug output. Nil is silent.
	Logger *log.Logger
}

// Navigator answers directional queries among the children of an element.
// It holds no per-query state; every call rebuilds the grid.
type Navigator struct {
	distance geom.DistanceFunc
	carry    CarryStore
	logger   *log.Logger
}

// New creates a Navigator.
func New(opts Options) *Navigator {
	if opts.Carry == nil {
		opts.Carry = &MapCarry{}
	}
	return &Navigator{distance: opts.Distance, carry: opts.Carry, logger: opts.Logger}
}

// Carry returns the store used for remembered columns.
func (n *Navigator) Carry() CarryStore { return n.carry }

// Grid builds the row grid of elements.
func (n *Navigator) Grid(elements []Element) *grid.Grid {
	start := time.Now()
	lines := make([]geom.Line, 0, len(elements))
	for _, e := range elements {
		lines = append(lines, geom.LineFromBox(e.Bounds(), e))
	}
	g := grid.Sort(lines, grid.Options{Distance: n.distance, Logger: n.logger})
	s := g.Stats()
	observability.Grid().OnGridBuilt(s.Lines, g.Len(), s.Merges, time.Since(start))
	return g
}

// Lines returns the rows of elements top to bottom, each a left-to-right
// sequence of edge points. It exists for inspection and debugging.
func (n *Navigator) Lines(elements []Element) [][]geom.Point {
	return n.Grid(elements).Rows()
}

// anchor is the column a vertical move from e aims for: the remembered
// column if one is set, otherwise e's left edge.
func (n *Navigator) anchor(e Element) float64 {
	if x, ok := n.carry.CarryX(e); ok {
		return x
	}
	return e.Bounds().Left
}

// ChildAbove returns the child of parent in the row above child that is
// horizontally closest to child's anchor. When child is in the top row and
// root is set, the leading element of child's own row is returned instead.
func (n *Navigator) ChildAbove(parent, child Element, root bool) (Element, bool) {
	return n.childVertical(parent, child, n.anchor(child), Up, root)
}

// ChildBelow returns the child of parent in the row below child that is
// horizontally closest to child's anchor. When child is in the bottom row
// and root is set, the trailing element of child's own row is returned
// instead.
func (n *Navigator) ChildBelow(parent, child Element, root bool) (Element, bool) {
	return n.childVertical(parent, child, n.anchor(child), Down, root)
}

func (n *Navigator) childVertical(parent, child Element, x float64, d Direction, root bool) (Element, bool) {
	delta := 1
	if d == Up {
		delta = -1
	}
	g := n.Grid(parent.Children())
	e, ok := element(vertical(g, child, x, delta, root))
	return n.report(d, e, ok)
}

// ChildBefore returns the child of parent preceding child in reading order,
// wrapping to the end of the previous row.
func (n *Navigator) ChildBefore(parent, child Element) (Element, bool) {
	g := n.Grid(parent.Children())
	e, ok := element(step(g, child, -1))
	return n.report(Left, e, ok)
}

// ChildAfter returns the child of parent following child in reading order,
// wrapping to the start of the next row.
func (n *Navigator) ChildAfter(parent, child Element) (Element, bool) {
	g := n.Grid(parent.Children())
	e, ok := element(step(g, child, 1))
	return n.report(Right, e, ok)
}

// Neighbor dispatches to the query for direction d. root only affects
// vertical directions.
func (n *Navigator) Neighbor(parent, child Element, d Direction, root bool) (Element, bool) {
	switch d {
	case Up:
		return n.ChildAbove(parent, child, root)
	case Down:
		return n.ChildBelow(parent, child, root)
	case Left:
		return n.ChildBefore(parent, child)
	case Right:
		return n.ChildAfter(parent, child)
	}
	return nil, false
}

// BelowInFirstLine returns the element of the top row of elements closest
// to column x. It is used to enter a nested grid from above.
func (n *Navigator) BelowInFirstLine(x float64, elements []Element) (Element, bool) {
	return element(nearest(n.Grid(elements).First(), x))
}

// AboveInLastLine returns the element of the bottom row of elements
// closest to column x. It is used to enter a nested grid from below.
func (n *Navigator) AboveInLastLine(x float64, elements []Element) (Element, bool) {
	return element(nearest(n.Grid(elements).Last(), x))
}

// FirstInOrder returns the first element of elements in reading order.
func (n *Navigator) FirstInOrder(elements []Element) (Element, bool) {
	row := n.Grid(elements).First()
	if len(row) == 0 {
		return nil, false
	}
	return element(row[0].Owner, true)
}

// LastInOrder returns the last element of elements in reading order.
func (n *Navigator) LastInOrder(elements []Element) (Element, bool) {
	row := n.Grid(elements).Last()
	if len(row) == 0 {
		return nil, false
	}
	return element(row[len(row)-1].Owner, true)
}

func (n *Navigator) report(d Direction, e Element, ok bool) (Element, bool) {
	observability.Nav().OnNavigate(d.String(), ok)
	if n.logger != nil {
		n.logger.Debug("navigate", "direction", d, "found", ok)
	}
	return e, ok
}

func element(owner any, ok bool) (Element, bool) {
	if !ok {
		return nil, false
	}
	e, ok := owner.(Element)
	return e, ok
}

// step moves delta elements through the row-major point sequence. Every
// element owns two adjacent points, so one element is two points.
func step(g *grid.Grid, owner any, delta int) (any, bool) {
	i, ok := g.FlatIndex(owner)
	if !ok {
		return nil, false
	}
	flat := g.Flatten()
	j := i + 2*delta
	if j < 0 || j >= len(flat) {
		return nil, false
	}
	return flat[j].Owner, true
}

// vertical picks the point closest to x in the row delta rows away from
// owner's row. If that row does not exist and root is set, it falls back to
// the trailing (delta > 0) or leading (delta < 0) point of owner's row.
func vertical(g *grid.Grid, owner any, x float64, delta int, root bool) (any, bool) {
	pos, ok := g.Locate(owner)
	if !ok {
		return nil, false
	}
	if row := g.Row(pos.Row + delta); len(row) > 0 {
		return nearest(row, x)
	}
	if !root {
		return nil, false
	}
	cur := g.Row(pos.Row)
	if delta > 0 {
		return cur[len(cur)-1].Owner, true
	}
	return cur[0].Owner, true
}

// nearest returns the owner of the first point of row horizontally closest
// to x.
func nearest(row geom.Line, x float64) (any, bool) {
	if len(row) == 0 {
		return nil, false
	}
	best, bestDist := 0, math.Inf(1)
	for i, p := range row {
		if d := math.Abs(p.N - x); d < bestDist {
			best, bestDist = i, d
		}
	}
	return row[best].Owner, true
}
