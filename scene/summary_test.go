package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/gogpu/polyclip"
)

func TestInfo(t *testing.T) {
	s := Default()
	require.NoError(t, s.Clip())

	info := s.Info()
	assert.Equal(t, 6, info.SubjectVertices)
	assert.Equal(t, 4, info.WindowVertices)
	assert.Equal(t, len(s.Clipped), info.ClippedVertices)
	assert.InDelta(t, 142500, info.SubjectArea, 1e-6)
	assert.Positive(t, info.ClippedArea)
	assert.Less(t, info.ClippedArea, 300.0*300.0)
	assert.True(t, info.WindowConvex)
	assert.Equal(t, polyclip.CounterClockwise, info.WindowWinding)
}

func TestInfoBeforeClip(t *testing.T) {
	info := Default().Info()
	assert.Zero(t, info.ClippedVertices)
	assert.Zero(t, info.ClippedArea)
}

func TestSummaryEnglish(t *testing.T) {
	s := Default()
	require.NoError(t, s.Clip())

	lines := s.SummaryLines()
	require.Len(t, lines, 6)
	assert.Equal(t, "Subject vertices: 6", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Clipped vertices: "))
	assert.Equal(t, "Window vertices: 4", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Subject area: "))
	assert.True(t, strings.HasPrefix(lines[4], "Clipped area: "))
	assert.Equal(t, "Window: convex", lines[5])

	assert.Equal(t, strings.Join(lines, "\n"), s.Summary())
}

func TestSummaryRussian(t *testing.T) {
	s := Default(WithLanguage(language.Russian))

	lines := s.SummaryLines()
	require.Len(t, lines, 6)
	assert.Equal(t, "Вершин исходного полигона: 6", lines[0])
	assert.Equal(t, "Вершин после отсечения: 0", lines[1])
	assert.Equal(t, "Вершин окна отсечения: 4", lines[2])
	assert.Equal(t, "Окно: выпуклое", lines[5])
}

func TestSummaryConcaveWindow(t *testing.T) {
	window := polyclip.Polygon{
		polyclip.Pt(0, 0), polyclip.Pt(10, 0), polyclip.Pt(5, 2), polyclip.Pt(10, 10), polyclip.Pt(0, 10),
	}
	s := New(DefaultSubject(), window)
	lines := s.SummaryLines()
	assert.Equal(t, "Window vertices: 5", lines[2])
	assert.Equal(t, "Window: not convex", lines[5])
}
