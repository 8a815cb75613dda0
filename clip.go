package polyclip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Clip errors.
var (
	// ErrDegenerateWindow is returned by ClipChecked when the window has
	// fewer than 3 vertices.
	ErrDegenerateWindow = errors.New("polyclip: clipping window needs at least 3 vertices")
)

// Clip clips subject against window using the Sutherland–Hodgman algorithm.
//
// window must be convex and wound so that its interior is on the
// non-negative side of [Orientation] for each edge; neither property is
// checked. Points on a window edge count as inside. The result keeps the
// traversal order of subject and contains only subject vertices and
// edge intersections. It is empty when subject lies entirely outside.
func Clip(subject, window Polygon) Polygon {
	output := subject.Clone()

	for i := range window {
		if len(output) == 0 {
			break
		}
		cp1, cp2 := window.Edge(i)
		output = clipEdge(output, cp1, cp2)
	}

	log := Logger()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("polygon clipped",
			"subject_vertices", len(subject),
			"window_vertices", len(window),
			"result_vertices", len(output))
		for i, p := range output {
			log.Debug("clipped vertex", "index", i, "point", p.String())
		}
	}

	return output
}

// ClipChecked is Clip with the window precondition turned into an error.
// Convexity is still not verified.
func ClipChecked(subject, window Polygon) (Polygon, error) {
	if window.IsDegenerate() {
		Logger().Warn("degenerate clipping window", "window_vertices", len(window))
		return nil, fmt.Errorf("%w: got %d", ErrDegenerateWindow, len(window))
	}
	return Clip(subject, window), nil
}

// clipEdge clips input against the half-plane left of cp1→cp2.
func clipEdge(input Polygon, cp1, cp2 Point) Polygon {
	output := make(Polygon, 0, len(input)+1)

	for j := range input {
		prev, curr := input.Edge(j)

		currIn := inside(curr, cp1, cp2)
		prevIn := inside(prev, cp1, cp2)

		switch {
		case currIn && !prevIn:
			if p, ok := Intersect(prev, curr, cp1, cp2); ok {
				output = append(output, p)
			}
			output = append(output, curr)
		case currIn:
			output = append(output, curr)
		case prevIn:
			if p, ok := Intersect(prev, curr, cp1, cp2); ok {
				output = append(output, p)
			}
		}
	}

	return output
}

// inside reports whether p is on the boundary-inclusive inner side of cp1→cp2.
func inside(p, cp1, cp2 Point) bool {
	return Orientation(cp1, cp2, p) >= 0
}
