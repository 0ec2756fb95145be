// Package render provides visual output for row grids.
//
// # Overview
//
// This package contains generic format conversion (SVG to PDF/PNG). The
// [dot] subpackage turns a grid's rows and their "is above" relation into a
// Graphviz diagram.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	src := dot.ToDOT(g, dot.Options{})
//	svg, err := dot.RenderSVG(src)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [dot]: github.com/matzehuels/navgrid/pkg/render/dot
package render
