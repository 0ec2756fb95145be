// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about grid construction, navigation moves, and HTTP requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which keeps the navigation
// core free of any observability framework.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGridHooks(&myGridHooks{})
//	    observability.SetNavHooks(&myNavHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Grid().OnGridBuilt(lines, rows, merges, time.Since(start))
//	observability.Nav().OnNavigate("down", found)
//
// Grid and navigation hooks take no context: the navigation pipeline is
// synchronous and runs to completion inside a single key handler.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Grid Hooks
// =============================================================================

// GridHooks receives events from the merge-and-sort engine.
type GridHooks interface {
	// OnGridBuilt records one grid construction: the number of input lines,
	// the resulting rows, the merges performed and the elapsed time.
	OnGridBuilt(lines, rows, merges int, duration time.Duration)
}

// =============================================================================
// Navigation Hooks
// =============================================================================

// NavHooks receives events from directional queries.
type NavHooks interface {
	// OnNavigate records a directional query and whether a neighbor was found.
	OnNavigate(direction string, found bool)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP inspection server.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response to a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGridHooks is a no-op implementation of GridHooks.
type NoopGridHooks struct{}

func (NoopGridHooks) OnGridBuilt(int, int, int, time.Duration) {}

// NoopNavHooks is a no-op implementation of NavHooks.
type NoopNavHooks struct{}

func (NoopNavHooks) OnNavigate(string, bool) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                     {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gridHooks GridHooks = NoopGridHooks{}
	navHooks  NavHooks  = NoopNavHooks{}
	httpHooks HTTPHooks = NoopHTTPHooks{}
	hooksMu   sync.RWMutex
)

// SetGridHooks registers custom grid hooks.
// This should be called once at application startup before any navigation.
func SetGridHooks(h GridHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gridHooks = h
	}
}

// SetNavHooks registers custom navigation hooks.
// This should be called once at application startup before any navigation.
func SetNavHooks(h NavHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		navHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving requests.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Grid returns the registered grid hooks.
func Grid() GridHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gridHooks
}

// Nav returns the registered navigation hooks.
func Nav() NavHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return navHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gridHooks = NoopGridHooks{}
	navHooks = NoopNavHooks{}
	httpHooks = NoopHTTPHooks{}
}
