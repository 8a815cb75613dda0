package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/polyclip"
)

func TestLoadSVGByID(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
  <polygon id="window" points="10,10 90,10 90,90 10,90"/>
  <polygon id="subject" points="0,0 50,5 40,60"/>
</svg>`

	subject, window, err := LoadSVG(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, polyclip.Polygon{polyclip.Pt(0, 0), polyclip.Pt(50, 5), polyclip.Pt(40, 60)}, subject)
	assert.Equal(t, polyclip.Polygon{
		polyclip.Pt(10, 10), polyclip.Pt(90, 10), polyclip.Pt(90, 90), polyclip.Pt(10, 90),
	}, window)
}

func TestLoadSVGByOrder(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg">
  <polygon points="1 2 3 4 5 6"/>
  <polygon points="0,0, 8,0, 8,8, 0,8"/>
</svg>`

	subject, window, err := LoadSVG(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, polyclip.Polygon{polyclip.Pt(1, 2), polyclip.Pt(3, 4), polyclip.Pt(5, 6)}, subject)
	assert.Len(t, window, 4)
}

func TestLoadSVGErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		noPolys bool
	}{
		{
			name:    "no polygons",
			doc:     `<svg xmlns="http://www.w3.org/2000/svg"><rect width="5" height="5"/></svg>`,
			noPolys: true,
		},
		{
			name:    "single polygon",
			doc:     `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 1,0 1,1"/></svg>`,
			noPolys: true,
		},
		{
			name: "odd coordinates",
			doc:  `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 1"/><polygon points="0,0 1,0 1,1"/></svg>`,
		},
		{
			name: "bad number",
			doc:  `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 1,0 1,1"/><polygon points="a,0 1,0 1,1"/></svg>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LoadSVG(strings.NewReader(tt.doc))
			require.Error(t, err)
			if tt.noPolys {
				assert.ErrorIs(t, err, ErrNoPolygons)
			} else {
				assert.NotErrorIs(t, err, ErrNoPolygons)
			}
		})
	}
}

func TestLoadSVGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.svg")
	doc := `<svg xmlns="http://www.w3.org/2000/svg">
  <polygon id="subject" points="100,100 400,50 600,300 400,500 100,400 200,250"/>
  <polygon id="window" points="170,170 470,170 470,470 170,470"/>
</svg>`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	subject, window, err := LoadSVGFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSubject(), subject)
	assert.Equal(t, DefaultWindow(), window)

	_, _, err = LoadSVGFile(filepath.Join(t.TempDir(), "missing.svg"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSVGFileWrapsOpenError(t *testing.T) {
	_, _, err := LoadSVGFile(filepath.Join(t.TempDir(), "missing.svg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.True(t, strings.HasPrefix(err.Error(), "scene: open svg: "))
}
