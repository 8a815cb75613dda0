package imgfmt

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/polyclip"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file extension is not supported.
	ErrUnsupportedFormat = errors.New("imgfmt: unsupported format")
)

// Source is a readable grid of opaque RGB pixels.
type Source interface {
	Width() int
	Height() int
	RGB(x, y int) (r, g, b uint8)
}

// Format identifies an output file format.
type Format int

const (
	// FormatPPM is the plain-text P3 portable pixmap.
	FormatPPM Format = iota
	// FormatBMP is the 24-bit uncompressed Windows bitmap.
	FormatBMP
	// FormatPNG is the portable network graphic.
	FormatPNG
)

// String returns the canonical file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatBMP:
		return "bmp"
	case FormatPNG:
		return "png"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath returns the format matching the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ppm":
		return FormatPPM, nil
	case ".bmp":
		return FormatBMP, nil
	case ".png":
		return FormatPNG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Encode writes src to w in the given format.
func Encode(w io.Writer, src Source, f Format) error {
	switch f {
	case FormatPPM:
		return EncodePPM(w, src)
	case FormatBMP:
		return EncodeBMP(w, src)
	case FormatPNG:
		return EncodePNG(w, src)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// Save writes src to path, choosing the format from the extension.
// A failed write leaves whatever was already written in place.
func Save(path string, src Source) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imgfmt: create file: %w", err)
	}

	bw := bufio.NewWriter(file)
	if err := Encode(bw, src, f); err != nil {
		_ = file.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("imgfmt: write %s: %w", f, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("imgfmt: close file: %w", err)
	}

	polyclip.Logger().Info("image saved",
		"path", path,
		"format", f.String(),
		"width", src.Width(),
		"height", src.Height())
	return nil
}

// Load reads an image file written by Save (or any PPM P3, BMP or PNG file).
func Load(path string) (image.Image, Format, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, 0, err
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, 0, fmt.Errorf("imgfmt: open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	img, err := Decode(bufio.NewReader(file), f)
	if err != nil {
		return nil, 0, err
	}
	return img, f, nil
}

// Decode reads an image in the given format.
func Decode(r io.Reader, f Format) (image.Image, error) {
	switch f {
	case FormatPPM:
		return DecodePPM(r)
	case FormatBMP:
		img, err := bmp.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("imgfmt: decode BMP: %w", err)
		}
		return img, nil
	case FormatPNG:
		img, err := png.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("imgfmt: decode PNG: %w", err)
		}
		return img, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// toNRGBA copies src into an opaque image.NRGBA.
func toNRGBA(src Source) *image.NRGBA {
	w, h := src.Width(), src.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		row := img.Pix[y*img.Stride:]
		for x := range w {
			r, g, b := src.RGB(x, y)
			row[x*4+0] = r
			row[x*4+1] = g
			row[x*4+2] = b
			row[x*4+3] = 0xff
		}
	}
	return img
}

// EncodePNG encodes src as PNG to the given writer.
func EncodePNG(w io.Writer, src Source) error {
	if err := png.Encode(w, toNRGBA(src)); err != nil {
		return fmt.Errorf("imgfmt: encode PNG: %w", err)
	}
	return nil
}
