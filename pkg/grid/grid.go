package grid

import (
	"github.com/matzehuels/navgrid/pkg/geom"
	"github.com/matzehuels/navgrid/pkg/relation"
)

// Position locates a point in a Grid.
type Position struct {
	Row int // row index, 0 is the top row
	Col int // point index within the row
}

// Grid is the output of [Sort]: rows top to bottom, each a left-to-right
// sequence of points. A Grid is read-only once built.
type Grid struct {
	rows    []geom.Line
	grades  []int
	handles []relation.Handle
	graph   *relation.Graph[geom.Line]
	index   map[any]Position
	stats   Stats
}

func newGrid(g *relation.Graph[geom.Line], order []relation.Handle, grades map[relation.Handle]int, stats Stats) *Grid {
	out := &Grid{
		rows:    make([]geom.Line, len(order)),
		grades:  make([]int, len(order)),
		handles: order,
		graph:   g,
		index:   make(map[any]Position),
		stats:   stats,
	}
	for r, h := range order {
		line, _ := g.Value(h)
		out.rows[r] = line
		out.grades[r] = grades[h]
		for c, p := range line {
			if !geom.Hashable(p.Owner) {
				continue
			}
			if _, seen := out.index[p.Owner]; !seen {
				out.index[p.Owner] = Position{Row: r, Col: c}
			}
		}
	}
	return out
}

// Len returns the number of rows.
func (g *Grid) Len() int { return len(g.rows) }

// Row returns row i, or nil if i is out of range. The returned Line must
// not be modified.
func (g *Grid) Row(i int) geom.Line {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	return g.rows[i]
}

// Rows returns a copy of all rows top to bottom.
func (g *Grid) Rows() [][]geom.Point {
	out := make([][]geom.Point, len(g.rows))
	for i, r := range g.rows {
		out[i] = r.Clone()
	}
	return out
}

// First returns the top row, or nil for an empty grid.
func (g *Grid) First() geom.Line { return g.Row(0) }

// Last returns the bottom row, or nil for an empty grid.
func (g *Grid) Last() geom.Line { return g.Row(len(g.rows) - 1) }

// Grade returns the number of rows below row i in the relation graph.
func (g *Grid) Grade(i int) int {
	if i < 0 || i >= len(g.grades) {
		return 0
	}
	return g.grades[i]
}

// Locate returns the position of the first point owned by owner. Owners
// that cannot be hashed are found by scanning the rows.
func (g *Grid) Locate(owner any) (Position, bool) {
	if owner == nil {
		return Position{}, false
	}
	if geom.Hashable(owner) {
		p, ok := g.index[owner]
		return p, ok
	}
	for r, row := range g.rows {
		for c, p := range row {
			if geom.SameOwner(p.Owner, owner) {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

// Flatten returns all points in row-major order.
func (g *Grid) Flatten() []geom.Point {
	var out []geom.Point
	for _, r := range g.rows {
		out = append(out, r...)
	}
	return out
}

// FlatIndex returns the index of owner's first point in [Grid.Flatten].
func (g *Grid) FlatIndex(owner any) (int, bool) {
	pos, ok := g.Locate(owner)
	if !ok {
		return 0, false
	}
	i := pos.Col
	for r := 0; r < pos.Row; r++ {
		i += len(g.rows[r])
	}
	return i, true
}

// Edges returns the "is above" edges between rows as (upper, lower) row
// index pairs.
func (g *Grid) Edges() [][2]int {
	if g.graph == nil {
		return nil
	}
	rowOf := make(map[relation.Handle]int, len(g.handles))
	for i, h := range g.handles {
		rowOf[h] = i
	}
	var out [][2]int
	for _, e := range g.graph.Edges() {
		out = append(out, [2]int{rowOf[e[0]], rowOf[e[1]]})
	}
	return out
}

// Stats returns counters from the Sort run that built the grid.
func (g *Grid) Stats() Stats { return g.stats }
