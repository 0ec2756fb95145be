package geom

import (
	"math"
	"reflect"
)

// epsilon absorbs floating-point noise when comparing projected centers.
const epsilon = 1e-9

// Interval is a closed vertical span [Top, Bottom]. Y grows downward.
type Interval struct {
	Top    float64
	Bottom float64
}

// Center returns the vertical midpoint of the interval.
func (i Interval) Center() float64 { return (i.Top + i.Bottom) / 2 }

// Height returns Bottom - Top.
func (i Interval) Height() float64 { return i.Bottom - i.Top }

// Overlaps reports whether the two intervals share a vertical span of
// positive length. A zero-height interval overlaps another interval when it
// lies strictly inside it.
func (i Interval) Overlaps(o Interval) bool {
	return i.Top < o.Bottom && o.Top < i.Bottom
}

// Point is a caret sink: a horizontal offset N and the vertical interval
// covered by the edge at that offset.
//
// Owner is a back-reference to the element that produced the point. It is
// used for lookup only and is never rewritten once set; merging Lines
// concatenates points but keeps their owners.
type Point struct {
	N        float64
	Interval Interval
	Owner    any
}

// Hashable reports whether owner can be used as a map key. Values whose
// dynamic type holds a slice, map or func cannot.
func Hashable(owner any) bool {
	return owner != nil && reflect.ValueOf(owner).Comparable()
}

// SameOwner reports whether a and b are the same owner. Hashable owners
// are compared with ==, others by deep equality.
func SameOwner(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if Hashable(a) && Hashable(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// isPointLeft reports whether p lies strictly left of q.
func isPointLeft(p, q Point) bool { return p.N < q.N }

// isPointBelow compares vertical centers. It returns +1 when p is below q,
// -1 when p is above q and 0 when the centers coincide.
func isPointBelow(p, q Point) int {
	d := p.Interval.Center() - q.Interval.Center()
	switch {
	case math.Abs(d) <= epsilon:
		return 0
	case d > 0:
		return 1
	default:
		return -1
	}
}

// Box is an axis-aligned rectangle in a shared coordinate space.
type Box struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// BoxFromRect builds a Box from an origin and a size.
func BoxFromRect(x, y, width, height float64) Box {
	return Box{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// X returns the left edge.
func (b Box) X() float64 { return b.Left }

// Y returns the top edge.
func (b Box) Y() float64 { return b.Top }

// Width returns Right - Left.
func (b Box) Width() float64 { return b.Right - b.Left }

// Height returns Bottom - Top.
func (b Box) Height() float64 { return b.Bottom - b.Top }

// Vertical returns the vertical interval covered by the box.
func (b Box) Vertical() Interval { return Interval{Top: b.Top, Bottom: b.Bottom} }
