// Package cli implements the navgrid command-line interface.
//
// This package provides commands for inspecting how a laid-out document is
// grouped into rows, asking directional navigation questions, rendering
// the row relation, exploring a document interactively and serving the
// engine over HTTP. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - rows: Print the rows of a container's children
//   - nav: Find the neighbor of an element in one direction
//   - graph: Render the "is above" relation between rows as DOT, SVG, PDF or PNG
//   - explore: Move a caret through a document with the arrow keys
//   - serve: Run the HTTP inspection API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes every merge decision of the row engine. Loggers are passed
// through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/navgrid/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/navgrid/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Rendered 3 rows (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// gridLogHooks reports grid builds at debug level.
type gridLogHooks struct {
	logger *log.Logger
}

func (h gridLogHooks) OnGridBuilt(lines, rows, merges int, d time.Duration) {
	h.logger.Debug("grid built", "lines", lines, "rows", rows, "merges", merges, "took", d.Round(time.Microsecond))
}

// GridHooks returns observability hooks that log grid builds through the
// CLI's logger. main registers them with observability.SetGridHooks.
func (c *CLI) GridHooks() observability.GridHooks {
	return gridLogHooks{logger: c.Logger}
}
