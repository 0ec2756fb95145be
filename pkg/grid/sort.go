package grid

import (
	"cmp"
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/navgrid/pkg/geom"
	"github.com/matzehuels/navgrid/pkg/relation"
)

// Options configures [Sort].
type Options struct {
	// Distance ranks candidate pairs. Nil selects geom.EndpointDistance.
	Distance geom.DistanceFunc

	// Logger receives debug output about merge decisions. Nil is silent.
	Logger *log.Logger
}

// Stats summarizes one Sort run.
type Stats struct {
	Lines      int // non-empty input Lines
	Candidates int // ranked candidate pairs
	Merges     int // accepted merges
	Skipped    int // candidates skipped because an end was already used
	Rejected   int // candidates rejected because their rows were ordered
}

type candidate struct {
	left, right relation.Handle
	distance    float64
}

// Sort merges lines into rows and orders the rows top to bottom.
// The input slice and its Lines are not modified.
func Sort(lines []geom.Line, opts Options) *Grid {
	dist := opts.Distance
	if dist == nil {
		dist = geom.EndpointDistance
	}

	var input []geom.Line
	for _, l := range lines {
		if len(l) > 0 {
			input = append(input, l.Clone())
		}
	}
	stats := Stats{Lines: len(input)}
	if len(input) == 0 {
		return &Grid{stats: stats}
	}

	g := relation.Build(input, geom.IsAbove)
	cands := candidates(g, input, dist)
	stats.Candidates = len(cands)

	var (
		uf          = newUnionFind(len(input))
		trailUsed   = make([]bool, len(input))
		leadUsed    = make([]bool, len(input))
		firstMember = make(map[relation.Handle]int, len(input))
	)
	for i := range input {
		firstMember[relation.Handle(i)] = i
	}

	for _, c := range cands {
		if trailUsed[c.left] || leadUsed[c.right] {
			stats.Skipped++
			continue
		}
		a, b := uf.find(c.left), uf.find(c.right)
		if a == b || g.ReachableEitherDirection(a, b) {
			stats.Rejected++
			continue
		}
		la, _ := g.Value(a)
		lb, _ := g.Value(b)
		h, err := g.Merge(a, b, geom.Concat(la, lb))
		if err != nil {
			stats.Rejected++
			continue
		}
		uf.absorb(a, b, h)
		trailUsed[c.left] = true
		leadUsed[c.right] = true
		firstMember[h] = min(firstMember[a], firstMember[b])
		stats.Merges++
		if opts.Logger != nil {
			opts.Logger.Debug("merged lines", "left", c.left, "right", c.right, "row", h, "distance", c.distance)
		}
	}

	survivors := g.Handles()
	slices.SortStableFunc(survivors, func(x, y relation.Handle) int {
		return cmp.Compare(firstMember[x], firstMember[y])
	})
	grades := make(map[relation.Handle]int, len(survivors))
	for _, h := range survivors {
		grades[h] = g.Descendants(h)
	}
	slices.SortStableFunc(survivors, func(x, y relation.Handle) int {
		return cmp.Compare(grades[y], grades[x])
	})

	if opts.Logger != nil {
		opts.Logger.Debug("sorted rows", "lines", stats.Lines, "candidates", stats.Candidates,
			"merges", stats.Merges, "rejected", stats.Rejected, "rows", len(survivors))
	}
	return newGrid(g, survivors, grades, stats)
}

// candidates returns the unordered, horizontally adjacent pairs ranked by
// distance. Enumeration order breaks distance ties.
func candidates(g *relation.Graph[geom.Line], lines []geom.Line, dist geom.DistanceFunc) []candidate {
	var out []candidate
	for i := range lines {
		for j := range lines {
			if i == j || !geom.IsRight(lines[i], lines[j]) {
				continue
			}
			a, b := relation.Handle(i), relation.Handle(j)
			if g.ReachableEitherDirection(a, b) {
				continue
			}
			d := geom.LineDistance(dist, lines[i], lines[j])
			if math.IsInf(d, 1) || math.IsNaN(d) {
				continue
			}
			out = append(out, candidate{left: a, right: b, distance: d})
		}
	}
	slices.SortStableFunc(out, func(x, y candidate) int {
		return cmp.Compare(x.distance, y.distance)
	})
	return out
}
