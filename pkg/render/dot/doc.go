// Package dot renders a row grid as a Graphviz diagram.
//
// Each row becomes one record-shaped node listing its elements left to
// right; each "is above" edge between rows becomes an arrow pointing
// downward. Rows keep their top-to-bottom order as Graphviz ranks, so the
// drawing reads like the page it was built from.
//
//	g := nav.New(nav.Options{}).Grid(elements)
//	src := dot.ToDOT(g, dot.Options{Detailed: true})
//	svg, err := dot.RenderSVG(src)
package dot
