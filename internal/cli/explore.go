package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/navgrid/pkg/errors"
	"github.com/matzehuels/navgrid/pkg/layout"
	"github.com/matzehuels/navgrid/pkg/nav"
)

// exploreCommand creates the explore command for interactive navigation.
func (c *CLI) exploreCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "explore [layout]",
		Short: "Move a caret through a layout with the arrow keys",
		Long: `Move a caret through a layout with the arrow keys.

The explore command opens an interactive view of a layout document. The
caret starts on the first element in reading order (or on --from) and moves
with the arrow keys or h, j, k, l. Up and down keep their column across
rows of different widths; left and right walk reading order. Moves that
leave a container continue in its parent, and moves that land on a
container enter it.

On exit the id of the focused element is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := layout.Import(args[0])
			if err != nil {
				return err
			}
			m, err := c.newExploreModel(doc, from)
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(ExploreModel); ok && fm.Current() != nil {
				fmt.Fprintln(cmd.OutOrStdout(), fm.Current().ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "id of the element to focus first")

	return cmd
}

// newExploreModel creates the explorer model. Its navigator has no logger
// while the interactive view owns the terminal.
func (c *CLI) newExploreModel(doc *layout.Document, from string) (ExploreModel, error) {
	dist, err := c.cfg.DistanceFunc()
	if err != nil {
		return ExploreModel{}, err
	}
	m := NewExploreModel(doc, nav.New(nav.Options{Distance: dist}))
	if m.Current() == nil {
		return ExploreModel{}, errors.New(errors.ErrCodeInvalidLayout, "document %q has no elements", doc.Root.ID)
	}
	if from != "" {
		node, err := doc.Lookup(from)
		if err != nil {
			return ExploreModel{}, err
		}
		if !m.Focus.Set(node) {
			return ExploreModel{}, errors.New(errors.ErrCodeInvalidInput, "%q is the document root", from)
		}
	}
	return m, nil
}
