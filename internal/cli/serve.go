package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/navgrid/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP inspection API",
		Long: `Run the HTTP inspection API.

The server answers the same questions as the rows and nav commands for
layout documents posted as JSON:

  GET  /healthz
  POST /v1/rows       {"layout": {...}, "parent": "id"}
  POST /v1/navigate   {"layout": {...}, "from": "id", "direction": "down"}

The listen address and request timeout default to the [server] section of
the config file. The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			timeout, err := c.cfg.Server.RequestTimeout()
			if err != nil {
				return err
			}
			dist, err := c.cfg.DistanceFunc()
			if err != nil {
				return err
			}

			srv := server.New(server.Options{
				Addr:     addr,
				Distance: dist,
				Timeout:  timeout,
				Logger:   c.Logger,
			})
			c.Logger.Info("listening", "addr", addr, "distance", c.cfg.Distance)
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
