package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Grid hooks
	g := NoopGridHooks{}
	g.OnGridBuilt(5, 2, 3, time.Millisecond)

	// Navigation hooks
	n := NoopNavHooks{}
	n.OnNavigate("down", true)
	n.OnNavigate("left", false)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/rows")
	h.OnResponse(ctx, "POST", "/v1/rows", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Grid().(NoopGridHooks); !ok {
		t.Error("Grid() should return NoopGridHooks by default")
	}
	if _, ok := Nav().(NoopNavHooks); !ok {
		t.Error("Nav() should return NoopNavHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customGrid := &testGridHooks{}
	SetGridHooks(customGrid)
	if Grid() != customGrid {
		t.Error("SetGridHooks should set custom hooks")
	}

	customNav := &testNavHooks{}
	SetNavHooks(customNav)
	if Nav() != customNav {
		t.Error("SetNavHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Grid().(NoopGridHooks); !ok {
		t.Error("Reset() should restore NoopGridHooks")
	}
	if _, ok := Nav().(NoopNavHooks); !ok {
		t.Error("Reset() should restore NoopNavHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testNavHooks{}
	SetNavHooks(custom)

	// Setting nil should be ignored
	SetNavHooks(nil)

	if Nav() != custom {
		t.Error("SetNavHooks(nil) should be ignored")
	}
}

func TestRegisteredHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	g := &testGridHooks{}
	n := &testNavHooks{}
	SetGridHooks(g)
	SetNavHooks(n)

	Grid().OnGridBuilt(4, 2, 2, time.Millisecond)
	Nav().OnNavigate("up", true)
	Nav().OnNavigate("up", false)

	if g.builds != 1 || g.rows != 2 {
		t.Errorf("grid hooks: builds=%d rows=%d, want 1 and 2", g.builds, g.rows)
	}
	if n.found != 1 || n.missed != 1 {
		t.Errorf("nav hooks: found=%d missed=%d, want 1 and 1", n.found, n.missed)
	}
}

// Test implementations
type testGridHooks struct {
	NoopGridHooks
	builds, rows int
}

func (h *testGridHooks) OnGridBuilt(_, rows, _ int, _ time.Duration) {
	h.builds++
	h.rows = rows
}

type testNavHooks struct {
	NoopNavHooks
	found, missed int
}

func (h *testNavHooks) OnNavigate(_ string, found bool) {
	if found {
		h.found++
	} else {
		h.missed++
	}
}

type testHTTPHooks struct{ NoopHTTPHooks }
