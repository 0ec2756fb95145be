package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/navgrid/pkg/observability"
)

const page = `{
  "root": {
    "id": "page", "width": 30, "height": 30,
    "children": [
      {"id": "A", "x": 0,  "y": 0,  "width": 10, "height": 10},
      {"id": "B", "x": 20, "y": 0,  "width": 10, "height": 10},
      {"id": "C", "x": 5,  "y": 20, "width": 10, "height": 10}
    ]
  }
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := New(Options{Logger: log.New(io.Discard), Timeout: time.Second})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// post sends body and decodes the envelope, keeping Data raw.
func post(t *testing.T, ts *httptest.Server, path, body string) (int, Response, json.RawMessage) {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var env struct {
		Response
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, env.Response, env.Data
}

func navigateBody(from, dir string, extra string) string {
	return `{"layout": ` + page + `, "from": "` + from + `", "direction": "` + dir + `"` + extra + `}`
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRows(t *testing.T) {
	ts := newTestServer(t)
	status, env, data := post(t, ts, "/v1/rows", `{"layout": `+page+`}`)
	if status != http.StatusOK || env.Status != "success" {
		t.Fatalf("status = %d, env = %+v", status, env)
	}

	var snap struct {
		Rows []struct {
			Elements []string `json:"elements"`
		} `json:"rows"`
		Edges [][2]int `json:"edges"`
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatal(err)
	}
	var got [][]string
	for _, r := range snap.Rows {
		got = append(got, r.Elements)
	}
	if diff := cmp.Diff([][]string{{"A", "B"}, {"C"}}, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][2]int{{0, 1}}, snap.Edges); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestRowsOfLeafIsEmpty(t *testing.T) {
	ts := newTestServer(t)
	status, _, data := post(t, ts, "/v1/rows", `{"layout": `+page+`, "parent": "A"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !bytes.Contains(data, []byte(`"rows":[]`)) {
		t.Errorf("data = %s, want empty rows", data)
	}
}

func TestNavigate(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
		want *string
		dir  string
	}{
		{"after A", navigateBody("A", "right", ""), strPtr("B"), "right"},
		{"before B", navigateBody("B", "before", ""), strPtr("A"), "left"},
		{"below A", navigateBody("A", "down", ""), strPtr("C"), "down"},
		{"above C", navigateBody("C", "up", ""), strPtr("A"), "up"},
		{"above C with carry", navigateBody("C", "k", `, "carry_x": 28`), strPtr("B"), "up"},
		{"below last row", navigateBody("C", "down", ""), nil, "down"},
		{"below last row at root", navigateBody("C", "down", `, "root": true`), strPtr("C"), "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env, data := post(t, ts, "/v1/navigate", tt.body)
			if status != http.StatusOK {
				t.Fatalf("status = %d, env = %+v", status, env)
			}
			var got NavigateResponse
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got.Target); diff != "" {
				t.Errorf("target mismatch (-want +got):\n%s", diff)
			}
			if got.Direction != tt.dir {
				t.Errorf("direction = %q, want %q", got.Direction, tt.dir)
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func TestErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"malformed body", "/v1/rows", `{`, http.StatusBadRequest, "INVALID_FORMAT"},
		{"unknown field", "/v1/rows", `{"layout": ` + page + `, "zoom": 2}`, http.StatusBadRequest, "INVALID_FORMAT"},
		{"missing root", "/v1/rows", `{"layout": {}}`, http.StatusBadRequest, "INVALID_LAYOUT"},
		{"unknown parent", "/v1/rows", `{"layout": ` + page + `, "parent": "Z"}`, http.StatusNotFound, "ELEMENT_NOT_FOUND"},
		{"bad direction", "/v1/navigate", navigateBody("A", "north", ""), http.StatusBadRequest, "INVALID_DIRECTION"},
		{"unknown element", "/v1/navigate", navigateBody("Z", "up", ""), http.StatusNotFound, "ELEMENT_NOT_FOUND"},
		{"root element", "/v1/navigate", navigateBody("page", "up", ""), http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown route", "/v2/rows", `{}`, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env, _ := post(t, ts, tt.path, tt.body)
			if status != tt.status || env.Code != tt.code || env.Status != "error" {
				t.Errorf("got %d %+v, want %d %s", status, env, tt.status, tt.code)
			}
			if env.Error == "" {
				t.Error("error message should not be empty")
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/rows")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestHTTPHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	h := &recordingHooks{}
	observability.SetHTTPHooks(h)

	ts := newTestServer(t)
	post(t, ts, "/v1/rows", `{"layout": `+page+`}`)
	post(t, ts, "/v1/rows", `{`)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.requests != 2 {
		t.Errorf("requests = %d, want 2", h.requests)
	}
	if diff := cmp.Diff([]int{200, 400}, h.statuses); diff != "" {
		t.Errorf("statuses mismatch (-want +got):\n%s", diff)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s := New(Options{Addr: "127.0.0.1:0", Logger: log.New(io.Discard)})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

type recordingHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	requests int
	statuses []int
}

func (h *recordingHooks) OnRequest(context.Context, string, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests++
}

func (h *recordingHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}
