package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/navgrid/pkg/errors"
	"github.com/matzehuels/navgrid/pkg/layout"
	"github.com/matzehuels/navgrid/pkg/render"
	"github.com/matzehuels/navgrid/pkg/render/dot"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	parent   string // container whose children are ordered
	output   string // output file; the extension selects the format
	detailed bool   // include grades and point counts in row labels
}

// graphCommand creates the graph command for rendering the row relation.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [layout]",
		Short: "Render the relation between rows",
		Long: `Render the "is above" relation between rows.

Each node of the diagram is one row of the container's children, labeled
with the ids of its elements. An edge from one row to another means the
first row is directly above the second.

Without -o the DOT source is printed to stdout. With -o the extension of
the output file selects the format: .dot, .svg, .pdf or .png. PDF and PNG
output require rsvg-convert (librsvg).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.parent, "parent", "p", "", "id of the container whose children are ordered (default: root)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file: .dot, .svg, .pdf or .png (stdout DOT if empty)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show row grade and point count")

	return cmd
}

// runGraph builds the grid and writes it as DOT or a rendered image.
func (c *CLI) runGraph(ctx context.Context, w io.Writer, input string, opts graphOpts) error {
	ext := strings.ToLower(filepath.Ext(opts.output))
	switch ext {
	case "", ".dot", ".svg", ".pdf", ".png":
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported output extension %q (want .dot, .svg, .pdf or .png)", ext)
	}
	if (ext == ".pdf" || ext == ".png") && !render.Available() {
		return errors.New(errors.ErrCodeUnsupported, "%s output requires rsvg-convert (librsvg)", strings.TrimPrefix(ext, "."))
	}

	_, container, err := loadDocument(input, opts.parent)
	if err != nil {
		return err
	}
	navigator, err := c.newNavigator(nil)
	if err != nil {
		return err
	}

	g := navigator.Grid(container.Children())
	src := dot.ToDOT(g, dot.Options{Detailed: opts.detailed, Name: layout.OwnerID})

	if opts.output == "" {
		_, err := io.WriteString(w, src)
		return err
	}

	data := []byte(src)
	if ext != ".dot" {
		spinner := newRenderSpinner(ctx, c.status, strings.TrimPrefix(ext, "."), g.Len())
		spinner.Start()
		data, err = renderGraph(src, ext, spinner.Stage)
		if err != nil {
			spinner.Fail()
			return err
		}
		spinner.Stop()
	}

	if err := writeFile(data, opts.output); err != nil {
		return err
	}
	printSuccess("Rendered %d rows", g.Len())
	printFile(opts.output)
	return nil
}

// renderGraph converts DOT source to the format named by ext. stage is
// told when rendering moves from layout to conversion.
func renderGraph(src, ext string, stage func(format string, args ...any)) ([]byte, error) {
	format := strings.TrimPrefix(ext, ".")
	svg, err := dot.RenderSVG(src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}

	var data []byte
	switch ext {
	case ".svg":
		return svg, nil
	case ".pdf":
		stage("converting %d KB of svg to pdf", len(svg)/1024)
		data, err = render.ToPDF(svg)
	case ".png":
		stage("converting %d KB of svg to png at 2x", len(svg)/1024)
		data, err = render.ToPNG(svg, 2.0)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return data, nil
}

// writeFile writes data to path, creating parent directories as needed.
func writeFile(data []byte, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
