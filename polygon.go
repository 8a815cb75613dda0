package polyclip

import "math"

// Polygon is an ordered sequence of vertices. The last vertex implicitly
// connects back to the first.
type Polygon []Point

// Winding describes the vertex order of a polygon.
type Winding int

const (
	// Degenerate polygons have zero signed area.
	Degenerate Winding = iota
	// CounterClockwise polygons have a positive shoelace sum (y-up sense).
	CounterClockwise
	// Clockwise polygons have a negative shoelace sum (y-up sense).
	Clockwise
)

// String returns the winding name.
func (w Winding) String() string {
	switch w {
	case CounterClockwise:
		return "counter-clockwise"
	case Clockwise:
		return "clockwise"
	default:
		return "degenerate"
	}
}

// IsDegenerate reports whether the polygon has fewer than 3 vertices.
// Degenerate polygons are never rasterized.
func (p Polygon) IsDegenerate() bool {
	return len(p) < 3
}

// Edge returns the i-th edge, from vertex i-1 to vertex i (wrapping), the
// same pairing the clipper walks.
func (p Polygon) Edge(i int) (from, to Point) {
	n := len(p)
	return p[(i-1+n)%n], p[i%n]
}

// Clone returns a copy of the polygon.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// SignedArea returns half the shoelace sum. Its sign follows [Orientation].
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	var sum float64
	for i := range p {
		j := (i + 1) % len(p)
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return sum / 2
}

// Area returns the absolute shoelace area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Winding returns the vertex order derived from the signed area.
func (p Polygon) Winding() Winding {
	a := p.SignedArea()
	switch {
	case a > 0:
		return CounterClockwise
	case a < 0:
		return Clockwise
	default:
		return Degenerate
	}
}

// IsConvex reports whether every turn of the polygon has the same sign.
// Collinear vertices are ignored. The check is informational: [Clip] does
// not validate its window.
func (p Polygon) IsConvex() bool {
	n := len(p)
	if n < 3 {
		return false
	}
	sign := 0
	for i := range p {
		o := Orientation(p[i], p[(i+1)%n], p[(i+2)%n])
		switch {
		case o > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case o < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return sign != 0
}

// Bounds returns the axis-aligned bounding box of the polygon.
// ok is false for an empty polygon.
func (p Polygon) Bounds() (lo, hi Point, ok bool) {
	if len(p) == 0 {
		return Point{}, Point{}, false
	}
	lo, hi = p[0], p[0]
	for _, v := range p[1:] {
		lo.X = math.Min(lo.X, v.X)
		lo.Y = math.Min(lo.Y, v.Y)
		hi.X = math.Max(hi.X, v.X)
		hi.Y = math.Max(hi.Y, v.Y)
	}
	return lo, hi, true
}
