package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/navgrid/pkg/errors"
	"github.com/matzehuels/navgrid/pkg/layout"
)

const formatTable = "table"

// rowsCommand creates the rows command for printing the row grid of a
// container's children.
func (c *CLI) rowsCommand() *cobra.Command {
	var (
		parent string
		format string
	)

	cmd := &cobra.Command{
		Use:   "rows [layout]",
		Short: "Print the rows of a container's children",
		Long: `Print the rows of a container's children.

The rows command reads a layout document (JSON or YAML), groups the children
of the selected container into visual rows and prints them top to bottom.
Without --parent the children of the document root are used.

Output is a table by default; use --format json or --format yaml to get the
full grid including edge points and merge statistics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRows(cmd.OutOrStdout(), args[0], parent, format)
		},
	}

	cmd.Flags().StringVarP(&parent, "parent", "p", "", "id of the container whose children are ordered (default: root)")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json, yaml")

	return cmd
}

// runRows builds the grid and writes it in the requested format.
func (c *CLI) runRows(w io.Writer, input, parent, format string) error {
	switch format {
	case formatTable, layout.FormatJSON, layout.FormatYAML:
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want table, json or yaml)", format)
	}

	doc, container, err := loadDocument(input, parent)
	if err != nil {
		return err
	}
	navigator, err := c.newNavigator(nil)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	snap := layout.NewSnapshot(navigator.Grid(container.Children()))
	c.Logger.Debug("rows", "container", container.ID, "rows", len(snap.Rows))

	if format != formatTable {
		return layout.WriteSnapshot(w, snap, format)
	}

	if len(snap.Rows) == 0 {
		fmt.Fprintln(w, StyleDim.Render(container.Name()+" has no children"))
		return nil
	}
	writeStyled(w, StyleTitle.Render(container.Name()))
	writeStyled(w, rowsTable(snap, nodeName(doc), ""))
	writeStyled(w, formatStats(snap.Stats, len(snap.Rows)))
	prog.done(fmt.Sprintf("Ordered %d elements", snap.Stats.Lines))
	return nil
}

// nodeName maps an element id to its display name.
func nodeName(doc *layout.Document) func(id string) string {
	return func(id string) string {
		if n, ok := doc.Find(id); ok {
			return n.Name()
		}
		return id
	}
}
