package geom

import "slices"

// Line is an ordered sequence of points with non-decreasing N. A Line with
// no points is valid but inert.
//
// Lines have identity only through the structures that hold them (the
// relation graph addresses them by handle), never through their contents:
// two Lines with identical points are distinct rows.
type Line []Point

// LineFromBox returns the Line of a single element: the sink at its left
// edge followed by the sink at its right edge, both owned by owner.
func LineFromBox(b Box, owner any) Line {
	v := b.Vertical()
	return Line{
		{N: b.Left, Interval: v, Owner: owner},
		{N: b.Right, Interval: v, Owner: owner},
	}
}

// First returns the leading point. ok is false for an empty Line.
func (l Line) First() (p Point, ok bool) {
	if len(l) == 0 {
		return Point{}, false
	}
	return l[0], true
}

// Last returns the trailing point. ok is false for an empty Line.
func (l Line) Last() (p Point, ok bool) {
	if len(l) == 0 {
		return Point{}, false
	}
	return l[len(l)-1], true
}

// Owners returns the distinct owners of the line in left-to-right order.
func (l Line) Owners() []any {
	var owners []any
	for i, p := range l {
		if i > 0 && SameOwner(l[i-1].Owner, p.Owner) {
			continue
		}
		owners = append(owners, p.Owner)
	}
	return owners
}

// Concat returns a new Line holding the points of a followed by those of b.
// Neither input is modified.
func Concat(a, b Line) Line {
	out := make(Line, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Clone returns a copy of l that shares no backing array with it.
func (l Line) Clone() Line { return slices.Clone(l) }
