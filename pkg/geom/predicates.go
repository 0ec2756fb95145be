package geom

// Order is the result of comparing a point against a Line.
type Order int

const (
	// Below means the point lies below the Line.
	Below Order = -1
	// Incomparable means no segment of the Line spans the point, or the
	// projection coincides with it.
	Incomparable Order = 0
	// Above means the point lies above the Line.
	Above Order = 1
)

// String returns "above", "below" or "incomparable".
func (o Order) String() string {
	switch o {
	case Above:
		return "above"
	case Below:
		return "below"
	default:
		return "incomparable"
	}
}

// IsRight reports whether l2 starts strictly right of where l1 ends, i.e.
// l1 can be followed by l2 in a row.
func IsRight(l1, l2 Line) bool {
	last, ok := l1.Last()
	if !ok {
		return false
	}
	first, ok := l2.First()
	if !ok {
		return false
	}
	return isPointLeft(last, first)
}

// IsLeft is the mirror of IsRight.
func IsLeft(l1, l2 Line) bool { return IsRight(l2, l1) }

// IsAside reports whether the two Lines are horizontally disjoint in either
// order.
func IsAside(l1, l2 Line) bool { return IsRight(l1, l2) || IsLeft(l1, l2) }

// PointCompareLine compares p against the first segment of line whose
// horizontal span contains p.N. The segment is interpolated at p.N and the
// vertical centers decide the result. Zero-length segments are skipped.
func PointCompareLine(p Point, line Line) Order {
	for i := 0; i+1 < len(line); i++ {
		a, b := line[i], line[i+1]
		lo, hi := a.N, b.N
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo == hi || p.N < lo || p.N > hi {
			continue
		}
		switch isPointBelow(p, project(a, b, p.N)) {
		case 1:
			return Below
		case -1:
			return Above
		default:
			return Incomparable
		}
	}
	return Incomparable
}

// project interpolates the segment a-b at horizontal offset n. The caller
// guarantees a.N != b.N.
func project(a, b Point, n float64) Point {
	t := (n - a.N) / (b.N - a.N)
	return Point{
		N: n,
		Interval: Interval{
			Top:    a.Interval.Top + t*(b.Interval.Top-a.Interval.Top),
			Bottom: a.Interval.Bottom + t*(b.Interval.Bottom-a.Interval.Bottom),
		},
	}
}

// IsAbove reports whether l1 is visually above l2.
//
// Each point of l1 is compared against l2 and the first comparable point
// decides. If none is comparable the scan is repeated with the points of l2
// against l1. If that is undetermined too, l1 is not above l2.
func IsAbove(l1, l2 Line) bool {
	for _, p := range l1 {
		if o := PointCompareLine(p, l2); o != Incomparable {
			return o == Above
		}
	}
	for _, p := range l2 {
		if o := PointCompareLine(p, l1); o != Incomparable {
			return o == Below
		}
	}
	return false
}
