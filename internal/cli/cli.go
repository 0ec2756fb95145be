// Package cli implements the navgrid command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/navgrid/internal/config"
	"github.com/matzehuels/navgrid/pkg/buildinfo"
	"github.com/matzehuels/navgrid/pkg/errors"
	"github.com/matzehuels/navgrid/pkg/layout"
	"github.com/matzehuels/navgrid/pkg/nav"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "navgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// status receives transient progress lines such as the render spinner.
	status io.Writer

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		status: w,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "navgrid orders laid-out elements into rows for caret navigation",
		Long:         `navgrid groups the boxes of a laid-out document into visual rows and answers "what is above, below, before or after this element" the way a caret moves through a page.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ~/.config/navgrid/navgrid.toml)")

	// Register all subcommands
	root.AddCommand(c.rowsCommand())
	root.AddCommand(c.navCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration file. Its log level applies unless
// debug logging was already requested with --verbose.
func (c *CLI) loadConfig() error {
	cfg, path, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	if c.Logger.GetLevel() != log.DebugLevel {
		if lvl, err := cfg.Level(); err == nil {
			c.Logger.SetLevel(lvl)
		}
	}
	return nil
}

// =============================================================================
// Navigation Helpers
// =============================================================================

// newNavigator creates a Navigator with the configured distance strategy.
func (c *CLI) newNavigator(carry nav.CarryStore) (*nav.Navigator, error) {
	dist, err := c.cfg.DistanceFunc()
	if err != nil {
		return nil, err
	}
	return nav.New(nav.Options{Distance: dist, Carry: carry, Logger: c.Logger}), nil
}

// loadDocument imports a layout file and selects the container whose
// children are navigated. An empty parent selects the root.
func loadDocument(path, parent string) (*layout.Document, *layout.Node, error) {
	doc, err := layout.Import(path)
	if err != nil {
		return nil, nil, err
	}
	container, err := doc.Container(parent)
	if err != nil {
		return nil, nil, err
	}
	return doc, container, nil
}

// requireID validates an element id flag.
func requireID(flag, id string) error {
	if id == "" {
		return errors.New(errors.ErrCodeInvalidInput, "--%s is required", flag)
	}
	return errors.ValidateElementID(id)
}
