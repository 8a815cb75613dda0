// Package polyclip provides a small 2D rasterization pipeline for Go.
//
// # Overview
//
// polyclip clips polygons against a convex window with the
// Sutherland–Hodgman algorithm and paints the result into an RGB pixel
// buffer using integer line drawing (Bresenham) and even-odd scanline
// filling. The buffer can then be serialized by the imgfmt sub-package
// (PPM, BMP, PNG) or handed to any consumer of [image.Image].
//
// # Quick Start
//
//	import "github.com/gogpu/polyclip"
//
//	buf, err := polyclip.NewBuffer(800, 600)
//	if err != nil {
//		return err
//	}
//
//	subject := polyclip.Polygon{polyclip.Pt(100, 100), polyclip.Pt(400, 50), polyclip.Pt(600, 300)}
//	window := polyclip.Polygon{polyclip.Pt(170, 170), polyclip.Pt(470, 170), polyclip.Pt(470, 470), polyclip.Pt(170, 470)}
//
//	clipped := polyclip.Clip(subject, window)
//	polyclip.FillPolygon(buf, clipped, polyclip.RGB(0, 255, 100))
//	polyclip.StrokePolygon(buf, clipped, polyclip.RGB(255, 255, 0))
//
// # Architecture
//
// The library is organized into:
//   - Geometry: Point, Orientation, Intersect, Polygon
//   - Pixels: Color, Buffer
//   - Algorithms: Clip, DrawLine, StrokePolygon, FillPolygon
//   - Sub-packages: imgfmt (encoders), scene (draw ordering, summary, SVG input)
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Winding is reported in the mathematical (y-up) sense: a polygon with a
// positive shoelace sum is [CounterClockwise], which on screen looks
// clockwise. The clipping window must be wound so that its interior lies
// on the non-negative side of [Orientation] for every edge.
//
// # Ownership
//
// A [Buffer] owns its pixel storage and is not safe for concurrent use.
// There is no package-level buffer: callers create one and pass it to every
// draw and encode call.
package polyclip

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
