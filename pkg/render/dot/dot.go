package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/navgrid/pkg/grid"
)

// Options configures grid diagram rendering.
type Options struct {
	// Detailed adds each row's grade and point count to its label.
	Detailed bool

	// Name labels a point owner. Nil formats owners with fmt.
	Name func(owner any) string
}

// ToDOT converts a grid to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(g *grid.Grid, opts Options) string {
	name := opts.Name
	if name == nil {
		name = func(owner any) string { return fmt.Sprint(owner) }
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=record, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for i := 0; i < g.Len(); i++ {
		fmt.Fprintf(&buf, "  %s [label=%q];\n", rowID(i), fmtLabel(g, i, name, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %s -> %s;\n", rowID(e[0]), rowID(e[1]))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func rowID(i int) string { return "row" + strconv.Itoa(i) }

var recordEscaper = strings.NewReplacer(`|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`)

func fmtLabel(g *grid.Grid, i int, name func(any) string, detailed bool) string {
	owners := g.Row(i).Owners()
	fields := make([]string, len(owners))
	for j, o := range owners {
		fields[j] = recordEscaper.Replace(name(o))
	}
	label := strings.Join(fields, " | ")
	if !detailed {
		return label
	}
	return fmt.Sprintf("{row %d  grade %d  points %d | {%s}}", i, g.Grade(i), len(g.Row(i)), label)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with render.ToPDF or render.ToPNG.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the drawing scales from a
// zero origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
