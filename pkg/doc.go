// Package pkg provides the core libraries for navgrid caret navigation.
//
// # Overview
//
// navgrid groups the boxes of a laid-out document into visual rows so that a
// caret can move up, down, left and right the way a reader expects, even
// when the boxes are jagged, differently sized or nested. The pkg directory
// is organized bottom-up:
//
//  1. [geom] - Lines, points and the predicates that compare them
//  2. [relation] - The "is above" relation between lines
//  3. [grid] - The merge-and-sort engine that turns lines into rows
//  4. [nav] - Directional queries and a focus tracker over element trees
//  5. [layout] - Layout documents (JSON/YAML) and grid snapshots
//
// # Architecture
//
// Every query runs the same pipeline from scratch:
//
//	Element tree (bounding boxes)
//	         ↓
//	    [geom] package (one two-point line per element)
//	         ↓
//	    [relation] package (pairwise "is above" edges)
//	         ↓
//	    [grid] package (merge lines by distance, sort rows)
//	         ↓
//	    [nav] package (pick the neighbor in a direction)
//
// # Quick Start
//
// Load a document and ask for a neighbor:
//
//	import (
//	    "github.com/matzehuels/navgrid/pkg/layout"
//	    "github.com/matzehuels/navgrid/pkg/nav"
//	)
//
//	doc, _ := layout.Import("page.yaml")
//	n := nav.New(nav.Options{})
//	a, _ := doc.Lookup("A")
//	parent, _ := doc.Parent("A")
//	below, ok := n.ChildBelow(parent, a, false)
//
// # Main Packages
//
// [geom] - Boxes, intervals, points and lines. A line is a left-to-right
// sequence of points that each carry a vertical extent. Predicates decide
// whether one line is above another, whether two lines overlap
// horizontally, and how far apart two lines are. Two distance strategies
// are provided: endpoint and sampled.
//
// [relation] - A directed graph over lines backed by gonum. It answers
// reachability and topological-order questions and supports merging two
// nodes into one.
//
// [grid] - The engine. Candidate pairs are ranked by distance and merged
// when neither is above the other; the remaining lines are sorted into
// rows top to bottom. A [grid.Grid] answers row, position and reading-order
// questions.
//
// [nav] - [nav.Navigator] answers child above/below/before/after queries
// with a caller-owned remembered column (carryX). [nav.Focus] walks an
// element tree, bubbling out of and entering nested containers.
//
// [layout] - Document import with goccy/go-json and yaml.v3, id
// validation, and snapshot export.
//
// ## Supporting Packages
//
// [render/dot] - Graphviz diagrams of the row relation.
//
// [render] - Format conversion (SVG to PDF/PNG) via rsvg-convert.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks for grid builds, navigation moves and HTTP
// requests.
//
// [buildinfo] - Version information stamped at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/grid/...               # Specific package
//	go test -run Example ./...           # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/navgrid/pkg/geom
// [relation]: https://pkg.go.dev/github.com/matzehuels/navgrid/pkg/relation
// [grid]: https://pkg.go.dev/github.com/matzehuels/navgrid/pkg/grid
// [grid.Grid]: https://pkg.go.dev/github.com/matzehuels/navgrid/pkg/grid#Grid
// [nav]: https://pkg.go.dev/github.com/matzehuels/navgrid/pkg/nav
// [nav.Navigator]: https://pkg.go.dev/github.com/matzehuels/navgrid/pkg/nav#Navigator
// [nav.Focus]: https://pkg.go.dev/github.com/matzehuels/navgrid/pkg/nav#Focus
// [layout]: https://pkg.go.dev/github.com/matzehuels/navgrid/pkg/layout
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/navgrid/pkg/render/dot
// [render]: https://pkg.go.dev/github.com/matzehuels/navgrid/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/navgrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/navgrid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/navgrid/pkg/buildinfo
package pkg
