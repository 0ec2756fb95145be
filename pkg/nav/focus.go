package nav

import "github.com/matzehuels/navgrid/pkg/geom"

// Focus tracks the focused leaf of an element tree and moves it in the four
// caret directions.
//
// A move is first tried among the siblings of the focused element. If that
// level has no neighbor in the requested direction, the move bubbles up to
// the parent and is retried there. Landing on an element with children
// enters it: vertical moves enter the nearest element of its first or last
// row, horizontal moves enter its first or last element in reading order.
//
// Vertical moves remember their column in the Navigator's CarryStore so
// that repeated up and down moves stay in the same visual column.
// Horizontal moves and focus changes clear it.
type Focus struct {
	nav     *Navigator
	root    Element
	parents elementMap[Element]
	current Element
}

// NewFocus creates a Focus over the tree rooted at root and focuses its
// first leaf in reading order. The root itself is never focused.
func NewFocus(n *Navigator, root Element) *Focus {
	f := &Focus{nav: n, root: root}
	f.Reindex()
	if len(root.Children()) > 0 {
		f.current = f.enterFirst(root)
	}
	return f
}

// Reindex rebuilds the parent index. Call it after the tree's structure
// changes.
func (f *Focus) Reindex() {
	f.parents = elementMap[Element]{}
	var walk func(e Element)
	walk = func(e Element) {
		for _, c := range e.Children() {
			f.parents.set(c, e)
			walk(c)
		}
	}
	walk(f.root)
}

// Current returns the focused element, or nil when the tree is empty.
func (f *Focus) Current() Element { return f.current }

// Root returns the root of the tree.
func (f *Focus) Root() Element { return f.root }

// Parent returns the parent of e. ok is false for the root and for
// elements outside the tree.
func (f *Focus) Parent(e Element) (Element, bool) {
	return f.parents.get(e)
}

// Path returns the elements from the root's child down to the focused
// element.
func (f *Focus) Path() []Element {
	var path []Element
	for e := f.current; e != nil && !geom.SameOwner(e, f.root); {
		path = append([]Element{e}, path...)
		p, ok := f.parents.get(e)
		if !ok {
			break
		}
		e = p
	}
	return path
}

// Set focuses e, or its first leaf if e has children. It reports false if
// e is not part of the tree.
func (f *Focus) Set(e Element) bool {
	if _, ok := f.parents.get(e); !ok {
		return false
	}
	if f.current != nil {
		f.nav.Carry().ClearCarryX(f.current)
	}
	f.current = f.enterFirst(e)
	return true
}

// Move moves the focus one step in direction d and reports whether the
// focused element changed.
func (f *Focus) Move(d Direction) bool {
	from := f.current
	if from == nil {
		return false
	}

	carry := f.nav.Carry()
	var (
		target Element
		ok     bool
	)
	if d.Vertical() {
		x := f.nav.anchor(from)
		if target, ok = f.vertical(from, d, x); !ok {
			return false
		}
		carry.ClearCarryX(from)
		carry.SetCarryX(target, x)
	} else {
		if target, ok = f.horizontal(from, d); !ok {
			return false
		}
		carry.ClearCarryX(from)
	}

	f.current = target
	return !geom.SameOwner(target, from)
}

func (f *Focus) vertical(from Element, d Direction, x float64) (Element, bool) {
	for node := from; !geom.SameOwner(node, f.root); {
		parent, ok := f.parents.get(node)
		if !ok {
			return nil, false
		}
		if t, ok := f.nav.childVertical(parent, node, x, d, false); ok {
			return f.enterVertical(t, d, x), true
		}
		if geom.SameOwner(parent, f.root) {
			t, ok := f.nav.childVertical(parent, node, x, d, true)
			if !ok {
				return nil, false
			}
			if d == Down {
				return f.enterLast(t), true
			}
			return f.enterFirst(t), true
		}
		node = parent
	}
	return nil, false
}

func (f *Focus) horizontal(from Element, d Direction) (Element, bool) {
	for node := from; !geom.SameOwner(node, f.root); {
		parent, ok := f.parents.get(node)
		if !ok {
			return nil, false
		}
		if d == Right {
			if t, ok := f.nav.ChildAfter(parent, node); ok {
				return f.enterFirst(t), true
			}
		} else if t, ok := f.nav.ChildBefore(parent, node); ok {
			return f.enterLast(t), true
		}
		node = parent
	}
	return nil, false
}

func (f *Focus) enterVertical(e Element, d Direction, x float64) Element {
	for {
		children := e.Children()
		var (
			next Element
			ok   bool
		)
		if d == Down {
			next, ok = f.nav.BelowInFirstLine(x, children)
		} else {
			next, ok = f.nav.AboveInLastLine(x, children)
		}
		if !ok {
			return e
		}
		e = next
	}
}

func (f *Focus) enterFirst(e Element) Element {
	for {
		next, ok := f.nav.FirstInOrder(e.Children())
		if !ok {
			return e
		}
		e = next
	}
}

func (f *Focus) enterLast(e Element) Element {
	for {
		next, ok := f.nav.LastInOrder(e.Children())
		if !ok {
			return e
		}
		e = next
	}
}
