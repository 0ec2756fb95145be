package layout

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/matzehuels/navgrid/pkg/errors"
	"github.com/matzehuels/navgrid/pkg/nav"
)

const sampleJSON = `{
  "root": {
    "id": "page", "width": 30, "height": 30,
    "children": [
      {"id": "A", "x": 0,  "y": 0,  "width": 10, "height": 10, "label": "alpha"},
      {"id": "B", "x": 20, "y": 0,  "width": 10, "height": 10},
      {"id": "C", "x": 5,  "y": 20, "width": 10, "height": 10}
    ]
  }
}`

const sampleYAML = `
root:
  id: page
  width: 30
  height: 30
  children:
    - {id: A, x: 0, y: 0, width: 10, height: 10, label: alpha}
    - {id: B, x: 20, y: 0, width: 10, height: 10}
    - {id: C, x: 5, y: 20, width: 10, height: 10}
`

func TestReadJSON(t *testing.T) {
	d, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if d.Len() != 4 {
		t.Errorf("Len() = %d, want 4", d.Len())
	}

	a, ok := d.Find("A")
	if !ok {
		t.Fatal("Find(A) failed")
	}
	if a.Name() != "alpha" {
		t.Errorf("Name() = %q, want alpha", a.Name())
	}
	if b := a.Bounds(); b.Left != 0 || b.Right != 10 || b.Bottom != 10 {
		t.Errorf("Bounds() = %+v", b)
	}
	if p, ok := d.Parent("A"); !ok || p != d.Root {
		t.Errorf("Parent(A) = %v, %v", p, ok)
	}
	if _, ok := d.Parent("page"); ok {
		t.Error("root should have no parent")
	}
}

func TestReadYAMLMatchesJSON(t *testing.T) {
	fromJSON, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}
	fromYAML, err := ReadYAML(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(fromJSON.Root, fromYAML.Root); diff != "" {
		t.Errorf("documents differ (-json +yaml):\n%s", diff)
	}
}

func TestMissingIDsGetUUIDs(t *testing.T) {
	d, err := ReadJSON(strings.NewReader(`{"root": {"children": [{"width": 1, "height": 1}]}}`))
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []*Node{d.Root, d.Root.Nodes[0]} {
		if _, err := uuid.Parse(n.ID); err != nil {
			t.Errorf("id %q is not a UUID: %v", n.ID, err)
		}
	}
	if d.Root.ID == d.Root.Nodes[0].ID {
		t.Error("generated ids should differ")
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		read func(string) error
		in   string
		code errors.Code
	}{
		{"malformed json", readJSON, `{"root": `, errors.ErrCodeInvalidFormat},
		{"unknown field", readJSON, `{"root": {"id": "a", "colour": "red"}}`, errors.ErrCodeInvalidFormat},
		{"no root", readJSON, `{}`, errors.ErrCodeInvalidLayout},
		{"duplicate id", readJSON, `{"root": {"id": "a", "children": [{"id": "a"}]}}`, errors.ErrCodeInvalidLayout},
		{"negative width", readJSON, `{"root": {"id": "a", "width": -1}}`, errors.ErrCodeInvalidLayout},
		{"null child", readJSON, `{"root": {"id": "a", "children": [null]}}`, errors.ErrCodeInvalidLayout},
		{"empty yaml", readYAML, ``, errors.ErrCodeInvalidFormat},
		{"bad yaml", readYAML, "root: [", errors.ErrCodeInvalidFormat},
		{"bad id", readYAML, "root: {id: \" padded\"}", errors.ErrCodeInvalidLayout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func readJSON(s string) error {
	_, err := ReadJSON(strings.NewReader(s))
	return err
}

func readYAML(s string) error {
	_, err := ReadYAML(strings.NewReader(s))
	return err
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	for _, path := range []string{
		write("page.json", sampleJSON),
		write("page.yaml", sampleYAML),
		write("page.YML", sampleYAML),
	} {
		d, err := Import(path)
		if err != nil {
			t.Errorf("Import(%s): %v", filepath.Base(path), err)
			continue
		}
		if _, ok := d.Find("C"); !ok {
			t.Errorf("Import(%s): missing element C", filepath.Base(path))
		}
	}

	if _, err := Import(write("page.txt", sampleJSON)); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("txt: err = %v, want UNSUPPORTED", err)
	}
	if _, err := Import(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing: err = %v, want FILE_NOT_FOUND", err)
	}
	if _, err := Import(write("broken.json", "{")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("broken: err = %v, want INVALID_FORMAT", err)
	}
}

func TestContainerAndLookup(t *testing.T) {
	d, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}

	if c, err := d.Container(""); err != nil || c != d.Root {
		t.Errorf("Container(\"\") = %v, %v", c, err)
	}
	if c, err := d.Container("A"); err != nil || c.ID != "A" {
		t.Errorf("Container(A) = %v, %v", c, err)
	}
	if _, err := d.Lookup("Z"); !errors.Is(err, errors.ErrCodeElementNotFound) {
		t.Errorf("Lookup(Z) err = %v", err)
	}
}

func TestNodesNavigate(t *testing.T) {
	d, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}
	a, _ := d.Find("A")
	c, _ := d.Find("C")

	n := nav.New(nav.Options{})
	got, ok := n.ChildBelow(d.Root, a, false)
	if !ok || got != nav.Element(c) {
		t.Errorf("below(A) = %v, %v, want C", got, ok)
	}
}

func TestSnapshot(t *testing.T) {
	d, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}
	snap := NewSnapshot(nav.New(nav.Options{}).Grid(d.Root.Children()))

	var elements [][]string
	for _, r := range snap.Rows {
		elements = append(elements, r.Elements)
	}
	if diff := cmp.Diff([][]string{{"A", "B"}, {"C"}}, elements); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][2]int{{0, 1}}, snap.Edges); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
	if snap.Rows[0].Grade != 1 || len(snap.Rows[0].Points) != 4 {
		t.Errorf("row 0 = %+v", snap.Rows[0])
	}
	if snap.Stats.Lines != 3 || snap.Stats.Merges != 1 {
		t.Errorf("Stats = %+v", snap.Stats)
	}

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, snap, FormatJSON); err != nil {
		t.Fatal(err)
	}
	var decoded Snapshot
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if diff := cmp.Diff(snap, decoded); diff != "" {
		t.Errorf("JSON output mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := WriteSnapshot(&buf, snap, FormatYAML); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "elements:") {
		t.Errorf("YAML output missing rows:\n%s", buf.String())
	}

	if err := WriteSnapshot(&buf, snap, "xml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("xml: err = %v", err)
	}
}

func TestOwnerID(t *testing.T) {
	if got := OwnerID(&Node{ID: "x"}); got != "x" {
		t.Errorf("OwnerID(node) = %q", got)
	}
	if got := OwnerID(42); got != "42" {
		t.Errorf("OwnerID(42) = %q", got)
	}
}

func TestExampleLayouts(t *testing.T) {
	tests := []struct {
		file      string
		container string
		want      [][]string
	}{
		{"page.json", "", [][]string{{"title"}, {"left", "right"}, {"footer"}}},
		{"paragraph.yaml", "", [][]string{{"the", "image", "shows", "a", "cat"}, {"sitting", "still"}}},
		{"nested.yaml", "", [][]string{{"heading"}, {"table"}, {"closing"}}},
		{"nested.yaml", "table", [][]string{{"c11", "c12"}, {"c21", "c22"}}},
	}
	for _, tt := range tests {
		t.Run(tt.file+"/"+tt.container, func(t *testing.T) {
			d, err := Import(filepath.Join("..", "..", "examples", "layouts", tt.file))
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			c, err := d.Container(tt.container)
			if err != nil {
				t.Fatal(err)
			}
			snap := NewSnapshot(nav.New(nav.Options{}).Grid(c.Children()))

			var got [][]string
			for _, r := range snap.Rows {
				got = append(got, r.Elements)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
