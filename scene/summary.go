package scene

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/polyclip"
)

// Summary message keys. They double as the English text.
const (
	msgSubjectVertices = "Subject vertices: %d"
	msgClippedVertices = "Clipped vertices: %d"
	msgWindowVertices  = "Window vertices: %d"
	msgSubjectArea     = "Subject area: %.1f"
	msgClippedArea     = "Clipped area: %.1f"
	msgWindowConvex    = "Window: convex"
	msgWindowConcave   = "Window: not convex"
)

func init() {
	for key, text := range map[string]string{
		msgSubjectVertices: "Вершин исходного полигона: %d",
		msgClippedVertices: "Вершин после отсечения: %d",
		msgWindowVertices:  "Вершин окна отсечения: %d",
		msgSubjectArea:     "Площадь исходного полигона: %.1f",
		msgClippedArea:     "Площадь результата: %.1f",
		msgWindowConvex:    "Окно: выпуклое",
		msgWindowConcave:   "Окно: невыпуклое",
	} {
		_ = message.SetString(language.Russian, key, text)
	}
}

// Info is the informational summary of a scene.
type Info struct {
	SubjectVertices int
	WindowVertices  int
	ClippedVertices int
	SubjectArea     float64
	ClippedArea     float64
	WindowConvex    bool
	WindowWinding   polyclip.Winding
}

// Info computes the scene summary. Areas use the shoelace formula and are
// for display only.
func (s *Scene) Info() Info {
	return Info{
		SubjectVertices: len(s.Subject),
		WindowVertices:  len(s.Window),
		ClippedVertices: len(s.Clipped),
		SubjectArea:     s.Subject.Area(),
		ClippedArea:     s.Clipped.Area(),
		WindowConvex:    s.Window.IsConvex(),
		WindowWinding:   s.Window.Winding(),
	}
}

// SummaryLines returns the summary in the scene language, one fact per line.
func (s *Scene) SummaryLines() []string {
	return summaryLines(s.Info(), s.opts.language)
}

// Summary returns SummaryLines joined by newlines.
func (s *Scene) Summary() string {
	return strings.Join(s.SummaryLines(), "\n")
}

func summaryLines(info Info, tag language.Tag) []string {
	p := message.NewPrinter(tag)

	convex := msgWindowConcave
	if info.WindowConvex {
		convex = msgWindowConvex
	}

	return []string{
		p.Sprintf(msgSubjectVertices, info.SubjectVertices),
		p.Sprintf(msgClippedVertices, info.ClippedVertices),
		p.Sprintf(msgWindowVertices, info.WindowVertices),
		p.Sprintf(msgSubjectArea, info.SubjectArea),
		p.Sprintf(msgClippedArea, info.ClippedArea),
		p.Sprintf(convex),
	}
}
