package polyclip

import (
	"math"
	"slices"
)

// FillPolygon paints the interior of poly using the even-odd rule.
//
// Each integer scanline y within the polygon's vertical extent (clamped to
// the canvas) is intersected with every edge whose truncated endpoint
// y-values straddle it under the half-open test y1 < y <= y2. The sorted
// crossings are paired (0–1, 2–3, ...) and each pair is filled inclusively;
// an unpaired trailing crossing is ignored. Polygons with fewer than 3
// vertices are not filled.
func FillPolygon(dst Canvas, poly Polygon, c Color) {
	if poly.IsDegenerate() {
		return
	}

	// Clamp before converting: int() of an out-of-range float is
	// implementation-defined.
	lo, hi, _ := poly.Bounds()
	minY := int(max(0, lo.Y))
	maxY := int(min(float64(dst.Height()-1), hi.Y))
	maxX := float64(dst.Width() - 1)

	xs := make([]float64, 0, len(poly))
	for y := minY; y <= maxY; y++ {
		xs = scanlineCrossings(xs[:0], poly, y)
		slices.Sort(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			if xs[i] > maxX || xs[i+1] < 0 {
				continue
			}
			xStart := int(max(0, xs[i]))
			xEnd := int(min(maxX, xs[i+1]))
			for x := xStart; x <= xEnd; x++ {
				dst.SetPixel(x, y, c)
			}
		}
	}
}

// scanlineCrossings appends the x-coordinates where the edges of poly cross
// scanline y.
func scanlineCrossings(xs []float64, poly Polygon, y int) []float64 {
	n := len(poly)
	fy := float64(y)
	for i := range poly {
		p1 := poly[i]
		p2 := poly[(i+1)%n]

		// Truncated toward zero, kept in float space.
		y1, y2 := math.Trunc(p1.Y), math.Trunc(p2.Y)
		if y1 == y2 {
			continue
		}
		if (y1 < fy && fy <= y2) || (y2 < fy && fy <= y1) {
			x := p1.X + (fy-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y)
			xs = append(xs, x)
		}
	}
	return xs
}
