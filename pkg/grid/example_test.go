package grid_test

import (
	"fmt"

	"github.com/matzehuels/navgrid/pkg/geom"
	"github.com/matzehuels/navgrid/pkg/grid"
)

func ExampleSort() {
	lines := []geom.Line{
		geom.LineFromBox(geom.BoxFromRect(20, 0, 10, 10), "B"),
		geom.LineFromBox(geom.BoxFromRect(5, 20, 10, 10), "C"),
		geom.LineFromBox(geom.BoxFromRect(0, 0, 10, 10), "A"),
	}

	g := grid.Sort(lines, grid.Options{})
	for i := 0; i < g.Len(); i++ {
		fmt.Println(i, g.Grade(i), g.Row(i).Owners())
	}
	fmt.Printf("%+v\n", g.Stats())
	// Output:
	// 0 1 [A B]
	// 1 0 [C]
	// {Lines:3 Candidates:1 Merges:1 Skipped:0 Rejected:0}
}
