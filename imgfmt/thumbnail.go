package imgfmt

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Thumbnail returns src scaled to fit within maxDim × maxDim, keeping the
// aspect ratio. Images already small enough are copied unscaled.
// Nearest-neighbor sampling keeps one-pixel outlines visible.
func Thumbnail(src Source, maxDim int) *image.NRGBA {
	full := toNRGBA(src)
	w, h := src.Width(), src.Height()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return full
	}

	tw, th := maxDim, maxDim
	if w >= h {
		th = max(1, h*maxDim/w)
	} else {
		tw = max(1, w*maxDim/h)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), full, full.Bounds(), xdraw.Src, nil)
	return dst
}
