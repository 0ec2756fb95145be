package layout

import (
	"github.com/google/uuid"

	"github.com/matzehuels/navgrid/pkg/errors"
	"github.com/matzehuels/navgrid/pkg/geom"
	"github.com/matzehuels/navgrid/pkg/nav"
)

// Node is one laid-out element. It implements [nav.Element].
type Node struct {
	ID     string  `json:"id,omitempty" yaml:"id,omitempty"`
	Label  string  `json:"label,omitempty" yaml:"label,omitempty"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Nodes  []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Bounds returns the node's box.
func (n *Node) Bounds() geom.Box { return geom.BoxFromRect(n.X, n.Y, n.Width, n.Height) }

// Children returns the node's children as navigation elements.
func (n *Node) Children() []nav.Element {
	out := make([]nav.Element, len(n.Nodes))
	for i, c := range n.Nodes {
		out[i] = c
	}
	return out
}

// Name returns the label, falling back to the id.
func (n *Node) Name() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Document is a tree of laid-out elements.
type Document struct {
	Root *Node `json:"root" yaml:"root"`

	index   map[string]*Node
	parents map[*Node]*Node
}

// Prepare assigns ids to anonymous nodes, validates ids and geometry and
// indexes the tree. Readers in this package call it; call it again after
// modifying the tree.
func (d *Document) Prepare() error {
	if d.Root == nil {
		return errors.New(errors.ErrCodeInvalidLayout, "document has no root element")
	}

	d.index = make(map[string]*Node)
	d.parents = make(map[*Node]*Node)

	var visit func(n, parent *Node) error
	visit = func(n, parent *Node) error {
		if n == nil {
			return errors.New(errors.ErrCodeInvalidLayout, "null element under %q", parent.ID)
		}
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		if err := errors.ValidateElementID(n.ID); err != nil {
			return err
		}
		if err := errors.ValidateBox(n.ID, n.X, n.Y, n.Width, n.Height); err != nil {
			return err
		}
		if _, dup := d.index[n.ID]; dup {
			return errors.New(errors.ErrCodeInvalidLayout, "duplicate element id %q", n.ID)
		}
		d.index[n.ID] = n
		if parent != nil {
			d.parents[n] = parent
		}
		for _, c := range n.Nodes {
			if err := visit(c, n); err != nil {
				return err
			}
		}
		return nil
	}
	return visit(d.Root, nil)
}

// Find returns the node with the given id.
func (d *Document) Find(id string) (*Node, bool) {
	n, ok := d.index[id]
	return n, ok
}

// Parent returns the parent of the node with the given id. ok is false for
// the root and for unknown ids.
func (d *Document) Parent(id string) (*Node, bool) {
	n, ok := d.index[id]
	if !ok {
		return nil, false
	}
	p, ok := d.parents[n]
	return p, ok
}

// Lookup is like Find but returns an ELEMENT_NOT_FOUND error for unknown ids.
func (d *Document) Lookup(id string) (*Node, error) {
	if n, ok := d.Find(id); ok {
		return n, nil
	}
	return nil, errors.New(errors.ErrCodeElementNotFound, "no element with id %q", id)
}

// Container returns the node whose children form a grid: the root when id
// is empty, otherwise the node with that id.
func (d *Document) Container(id string) (*Node, error) {
	if id == "" {
		return d.Root, nil
	}
	return d.Lookup(id)
}

// Len returns the number of nodes, root included.
func (d *Document) Len() int { return len(d.index) }
