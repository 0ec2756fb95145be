// Package layout reads laid-out element trees from JSON or YAML documents
// and writes row grids back out for inspection.
//
// # Document Format
//
// A document has a single root element. Every element carries its box in a
// shared coordinate space (y grows downward) and its spatial children:
//
//	{
//	  "root": {
//	    "id": "page", "x": 0, "y": 0, "width": 30, "height": 30,
//	    "children": [
//	      {"id": "A", "x": 0,  "y": 0,  "width": 10, "height": 10},
//	      {"id": "B", "x": 20, "y": 0,  "width": 10, "height": 10},
//	      {"id": "C", "x": 5,  "y": 20, "width": 10, "height": 10}
//	    ]
//	  }
//	}
//
// The same structure is accepted as YAML. Elements without an id are given
// a random UUID so that every element can be addressed. Ids must be unique
// within a document; width and height must not be negative.
//
// # Import
//
// Use [Import] to read a document from a file path (the extension selects
// the codec), or [ReadJSON] and [ReadYAML] to read from any io.Reader.
// Documents decoded by other means must be passed through
// [Document.Prepare] before use.
//
// # Export
//
// [NewSnapshot] captures a [grid.Grid] built over document nodes as plain
// data, and [WriteSnapshot] encodes it as JSON or YAML.
//
// [grid.Grid]: github.com/matzehuels/navgrid/pkg/grid.Grid
package layout
