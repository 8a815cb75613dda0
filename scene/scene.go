// Package scene composes a subject polygon, a convex clipping window and the
// clipped result into a picture.
//
// A Scene owns no pixels: Render paints into a caller-supplied
// *polyclip.Buffer in a fixed order so that fills never cover outlines.
package scene

import (
	"golang.org/x/text/language"

	"github.com/gogpu/polyclip"
)

// Default canvas size used by the demo scene.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Palette maps each drawing role to a color.
type Palette struct {
	Background    polyclip.Color
	Subject       polyclip.Color
	Clipper       polyclip.Color
	ClippedFill   polyclip.Color
	ClippedBorder polyclip.Color
}

// DefaultPalette returns the demo colors: red subject, white window, green
// fill and yellow border over a dark gray background.
func DefaultPalette() Palette {
	return Palette{
		Background:    polyclip.DarkGray,
		Subject:       polyclip.RGB(255, 50, 50),
		Clipper:       polyclip.RGB(255, 255, 255),
		ClippedFill:   polyclip.RGB(0, 255, 100),
		ClippedBorder: polyclip.RGB(255, 255, 0),
	}
}

// DefaultSubject returns the demo hexagon.
func DefaultSubject() polyclip.Polygon {
	return polyclip.Polygon{
		polyclip.Pt(100, 100), polyclip.Pt(400, 50), polyclip.Pt(600, 300),
		polyclip.Pt(400, 500), polyclip.Pt(100, 400), polyclip.Pt(200, 250),
	}
}

// DefaultWindow returns the demo clipping rectangle.
func DefaultWindow() polyclip.Polygon {
	return polyclip.Polygon{
		polyclip.Pt(170, 170), polyclip.Pt(470, 170),
		polyclip.Pt(470, 470), polyclip.Pt(170, 470),
	}
}

// Scene holds the polygons being clipped and the result of the last Clip.
type Scene struct {
	Subject polyclip.Polygon
	Window  polyclip.Polygon

	// Clipped is empty until Clip succeeds.
	Clipped polyclip.Polygon

	opts options
}

// New creates a scene for subject and window.
func New(subject, window polyclip.Polygon, opts ...Option) *Scene {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scene{
		Subject: subject,
		Window:  window,
		opts:    o,
	}
}

// Default creates the demo scene.
func Default(opts ...Option) *Scene {
	return New(DefaultSubject(), DefaultWindow(), opts...)
}

// Palette returns the scene colors.
func (s *Scene) Palette() Palette {
	return s.opts.palette
}

// NewBuffer allocates a buffer whose background matches the palette.
func (s *Scene) NewBuffer(width, height int) (*polyclip.Buffer, error) {
	return polyclip.NewBuffer(width, height, polyclip.WithBackground(s.opts.palette.Background))
}

// Clip clips Subject against Window and stores the result in Clipped.
// On error Clipped is left empty.
func (s *Scene) Clip() error {
	clipped, err := polyclip.ClipChecked(s.Subject, s.Window)
	if err != nil {
		s.Clipped = nil
		return err
	}
	s.Clipped = clipped

	polyclip.Logger().Info("scene clipped",
		"subject_vertices", len(s.Subject),
		"clipped_vertices", len(s.Clipped))
	return nil
}

// Render paints the scene into buf. The order is fixed: clear to the
// background, fill the clipped region, then outline the subject, the window
// and the clipped region. The summary caption, when enabled, goes last.
func (s *Scene) Render(buf *polyclip.Buffer) {
	pal := s.opts.palette

	buf.Clear(pal.Background)

	if !s.Clipped.IsDegenerate() {
		polyclip.FillPolygon(buf, s.Clipped, pal.ClippedFill)
	}

	polyclip.StrokePolygon(buf, s.Subject, pal.Subject)
	polyclip.StrokePolygon(buf, s.Window, pal.Clipper)

	if !s.Clipped.IsDegenerate() {
		polyclip.StrokePolygon(buf, s.Clipped, pal.ClippedBorder)
	}

	if s.opts.caption {
		drawCaption(buf, summaryLines(s.Info(), language.English), pal.Clipper)
	}
}
