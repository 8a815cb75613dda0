package polyclip

// Canvas is the pixel sink the rasterizers draw into. *Buffer implements it.
//
// SetPixel must ignore coordinates outside [0, Width) × [0, Height).
type Canvas interface {
	Width() int
	Height() int
	SetPixel(x, y int, c Color)
}

// DrawLine plots the segment p1–p2 with Bresenham's integer algorithm.
// Coordinates are truncated to integers and both endpoints are always
// plotted, so a zero-length segment plots a single pixel.
//
// The endpoints are put in a canonical order first, which makes the pixel
// set independent of the direction the segment is given in.
func DrawLine(dst Canvas, p1, p2 Point, c Color) {
	x1, y1 := p1.Pixel()
	x2, y2 := p2.Pixel()
	if x2 < x1 || (x2 == x1 && y2 < y1) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx := absInt(x2 - x1)
	dy := absInt(y2 - y1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dx - dy

	for {
		dst.SetPixel(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// StrokePolygon draws the closed outline of poly, including the edge from
// the last vertex back to the first. Degenerate polygons are skipped.
func StrokePolygon(dst Canvas, poly Polygon, c Color) {
	if poly.IsDegenerate() {
		return
	}
	for i := range poly {
		from, to := poly.Edge(i)
		DrawLine(dst, from, to, c)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
