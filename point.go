package polyclip

import "fmt"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Pixel returns the integer pixel coordinates of p, truncated toward zero.
func (p Point) Pixel() (x, y int) {
	return int(p.X), int(p.Y)
}

// String formats the point with two decimals, e.g. "(170.00, 236.67)".
func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Orientation returns the signed area of the parallelogram spanned by
// a→b and a→c (twice the signed triangle area).
//
// A result >= 0 means c lies on the inside (or on the boundary) of the
// directed edge a→b as used by [Clip].
func Orientation(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Intersect returns the intersection of the infinite lines through p1→p2
// and cp1→cp2. The second result is false when the determinant is exactly
// zero (parallel or coincident lines).
//
// The point is not bounded to either segment: nearly parallel lines can
// produce a point far outside both.
func Intersect(p1, p2, cp1, cp2 Point) (Point, bool) {
	det := (p1.X-p2.X)*(cp1.Y-cp2.Y) - (p1.Y-p2.Y)*(cp1.X-cp2.X)
	if det == 0 {
		return Point{}, false
	}

	t := ((p1.X-cp1.X)*(cp1.Y-cp2.Y) - (p1.Y-cp1.Y)*(cp1.X-cp2.X)) / det
	return p1.Lerp(p2, t), true
}
