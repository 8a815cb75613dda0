package scene

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/polyclip"
)

const (
	captionMargin     = 8
	captionLineHeight = 15
)

// drawCaption writes lines into the bottom-left corner of buf, last line
// closest to the bottom edge. basicfont only has ASCII glyphs.
func drawCaption(buf *polyclip.Buffer, lines []string, c polyclip.Color) {
	if len(lines) == 0 {
		return
	}

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  buf,
		Src:  image.NewUniform(c),
		Face: face,
	}

	descent := face.Metrics().Descent.Ceil()
	y := buf.Height() - captionMargin - descent - (len(lines)-1)*captionLineHeight
	for _, line := range lines {
		d.Dot = fixed.P(captionMargin, y)
		d.DrawString(line)
		y += captionLineHeight
	}
}
