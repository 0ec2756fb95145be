package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/navgrid/pkg/errors"
	"github.com/matzehuels/navgrid/pkg/layout"
	"github.com/matzehuels/navgrid/pkg/nav"
)

// navOpts holds the command-line flags for the nav command.
type navOpts struct {
	from   string  // id of the element the caret is on
	dir    string  // up, down, left or right (or vi keys)
	carryX float64 // remembered column for vertical moves
	carry  bool    // carryX was given
	root   bool    // fall back to the row's edge at the boundary
}

// navCommand creates the nav command for single directional queries.
func (c *CLI) navCommand() *cobra.Command {
	var opts navOpts

	cmd := &cobra.Command{
		Use:   "nav [layout]",
		Short: "Find the neighbor of an element in one direction",
		Long: `Find the neighbor of an element in one direction.

The nav command answers one caret question among the siblings of --from:
which element is above, below, before or after it. Vertical moves aim for
the element's left edge, or for --carry-x when given.

With --root, moving down from the bottom row returns the last element of
the current row (and moving up from the top row the first one), the way a
caret jumps to the end of the last line of a document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.carry = cmd.Flags().Changed("carry-x")
			return c.runNav(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "id of the current element (required)")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "down", "direction: up, down, left, right (or k, j, h, l)")
	cmd.Flags().Float64Var(&opts.carryX, "carry-x", 0, "remembered column for up and down moves")
	cmd.Flags().BoolVar(&opts.root, "root", false, "treat the parent as the document root")

	return cmd
}

// runNav performs one neighbor query and prints the target id.
func (c *CLI) runNav(w io.Writer, input string, opts navOpts) error {
	if err := requireID("from", opts.from); err != nil {
		return err
	}
	if err := errors.ValidateDirection(opts.dir); err != nil {
		return err
	}
	dir, err := nav.ParseDirection(opts.dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDirection, err, "parse direction")
	}

	doc, err := layout.Import(input)
	if err != nil {
		return err
	}
	from, err := doc.Lookup(opts.from)
	if err != nil {
		return err
	}
	parent, ok := doc.Parent(opts.from)
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "%q is the document root and has no siblings", opts.from)
	}

	carry := &nav.MapCarry{}
	if opts.carry {
		carry.SetCarryX(from, opts.carryX)
	}
	navigator, err := c.newNavigator(carry)
	if err != nil {
		return err
	}

	target, found := navigator.Neighbor(parent, from, dir, opts.root)
	if !found {
		c.Logger.Debug("no neighbor", "from", opts.from, "direction", dir)
		fmt.Fprintln(w, StyleDim.Render("no element "+dir.String()+" of "+opts.from))
		return nil
	}
	fmt.Fprintln(w, layout.OwnerID(target))
	return nil
}
