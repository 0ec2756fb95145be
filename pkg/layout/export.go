package layout

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/navgrid/pkg/errors"
	"github.com/matzehuels/navgrid/pkg/grid"
)

// Snapshot is a grid captured as plain data.
type Snapshot struct {
	Rows  []Row    `json:"rows" yaml:"rows"`
	Edges [][2]int `json:"edges" yaml:"edges"`
	Stats Stats    `json:"stats" yaml:"stats"`
}

// Row is one row of a snapshot, top to bottom.
type Row struct {
	Index    int      `json:"index" yaml:"index"`
	Grade    int      `json:"grade" yaml:"grade"`
	Elements []string `json:"elements" yaml:"elements"`
	Points   []Point  `json:"points" yaml:"points"`
}

// Point is one edge point of a row.
type Point struct {
	N       float64 `json:"n" yaml:"n"`
	Top     float64 `json:"top" yaml:"top"`
	Bottom  float64 `json:"bottom" yaml:"bottom"`
	Element string  `json:"element" yaml:"element"`
}

// Stats mirrors [grid.Stats].
type Stats struct {
	Lines      int `json:"lines" yaml:"lines"`
	Candidates int `json:"candidates" yaml:"candidates"`
	Merges     int `json:"merges" yaml:"merges"`
	Skipped    int `json:"skipped" yaml:"skipped"`
	Rejected   int `json:"rejected" yaml:"rejected"`
}

// NewSnapshot captures g. Owners that are document nodes are named by id;
// any other owner is formatted with fmt.
func NewSnapshot(g *grid.Grid) Snapshot {
	s := g.Stats()
	snap := Snapshot{
		Rows:  make([]Row, g.Len()),
		Edges: g.Edges(),
		Stats: Stats{
			Lines:      s.Lines,
			Candidates: s.Candidates,
			Merges:     s.Merges,
			Skipped:    s.Skipped,
			Rejected:   s.Rejected,
		},
	}
	if snap.Edges == nil {
		snap.Edges = [][2]int{}
	}

	for i := range snap.Rows {
		line := g.Row(i)
		row := Row{Index: i, Grade: g.Grade(i), Points: make([]Point, len(line))}
		for _, o := range line.Owners() {
			row.Elements = append(row.Elements, OwnerID(o))
		}
		for j, p := range line {
			row.Points[j] = Point{
				N:       p.N,
				Top:     p.Interval.Top,
				Bottom:  p.Interval.Bottom,
				Element: OwnerID(p.Owner),
			}
		}
		snap.Rows[i] = row
	}
	return snap
}

// OwnerID names a point owner.
func OwnerID(owner any) string {
	if n, ok := owner.(*Node); ok {
		return n.ID
	}
	return fmt.Sprint(owner)
}

// Output formats accepted by [WriteSnapshot].
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// WriteSnapshot encodes s to w as indented JSON or as YAML.
func WriteSnapshot(w io.Writer, s Snapshot, format string) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q (want json or yaml)", format)
	}
	return nil
}
