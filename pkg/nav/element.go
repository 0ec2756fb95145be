package nav

import (
	"fmt"
	"strings"

	"github.com/matzehuels/navgrid/pkg/geom"
)

// Element is a laid-out element as seen by the navigation layer.
//
// Elements are matched by ==. Implementations whose dynamic type is not
// comparable, such as value types holding a children slice, are matched
// by deep equality instead, so two such values with equal contents are
// the same element.
type Element interface {
	// Bounds returns the element's box in the shared coordinate space.
	Bounds() geom.Box
	// Children returns the direct children to navigate between, in
	// document order.
	Children() []Element
}

// CarryStore holds the per-element remembered column.
type CarryStore interface {
	CarryX(e Element) (float64, bool)
	SetCarryX(e Element, x float64)
	ClearCarryX(e Element)
}

// MapCarry is a CarryStore backed by a map. The zero value is ready to use.
// It is not safe for concurrent use.
type MapCarry struct {
	m elementMap[float64]
}

// CarryX returns the remembered column of e.
func (c *MapCarry) CarryX(e Element) (float64, bool) { return c.m.get(e) }

// SetCarryX remembers x as the column of e.
func (c *MapCarry) SetCarryX(e Element, x float64) { c.m.set(e, x) }

// ClearCarryX forgets the column of e.
func (c *MapCarry) ClearCarryX(e Element) { c.m.remove(e) }

// elementMap maps elements to values. Hashable elements live in a map,
// the rest in a slice searched with geom.SameOwner. The zero value is
// empty and ready to use.
type elementMap[V any] struct {
	m    map[Element]V
	rest []elementEntry[V]
}

type elementEntry[V any] struct {
	e Element
	v V
}

func (em *elementMap[V]) get(e Element) (V, bool) {
	if geom.Hashable(e) {
		v, ok := em.m[e]
		return v, ok
	}
	if i := em.find(e); i >= 0 {
		return em.rest[i].v, true
	}
	var zero V
	return zero, false
}

func (em *elementMap[V]) set(e Element, v V) {
	if e == nil {
		return
	}
	if geom.Hashable(e) {
		if em.m == nil {
			em.m = make(map[Element]V)
		}
		em.m[e] = v
		return
	}
	if i := em.find(e); i >= 0 {
		em.rest[i].v = v
		return
	}
	em.rest = append(em.rest, elementEntry[V]{e: e, v: v})
}

func (em *elementMap[V]) remove(e Element) {
	if geom.Hashable(e) {
		delete(em.m, e)
		return
	}
	if i := em.find(e); i >= 0 {
		em.rest = append(em.rest[:i], em.rest[i+1:]...)
	}
}

func (em *elementMap[V]) find(e Element) int {
	if e == nil {
		return -1
	}
	for i, entry := range em.rest {
		if geom.SameOwner(entry.e, e) {
			return i
		}
	}
	return -1
}

// Direction is a caret movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{Up: "up", Down: "down", Left: "left", Right: "right"}

// String returns the lowercase direction name.
func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool { return d == Up || d == Down }

// ParseDirection parses a direction name. It also accepts the vi keys
// h, j, k and l.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "k", "above":
		return Up, nil
	case "down", "j", "below":
		return Down, nil
	case "left", "h", "before":
		return Left, nil
	case "right", "l", "after":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
