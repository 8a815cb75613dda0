package imgfmt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	bmpFileHeaderSize = 14
	bmpInfoHeaderSize = 40
	bmpPixelOffset    = bmpFileHeaderSize + bmpInfoHeaderSize
)

// bmpHeader is the BITMAPFILEHEADER followed by the BITMAPINFOHEADER,
// packed as written on disk (little-endian, no alignment).
type bmpHeader struct {
	Signature       [2]byte
	FileSize        uint32
	Reserved1       uint16
	Reserved2       uint16
	PixelOffset     uint32
	InfoSize        uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// bmpRowPadding returns the zero bytes needed to align a 24-bit row of the
// given width to 4 bytes.
func bmpRowPadding(width int) int {
	return (4 - (width*3)%4) % 4
}

// BMPSize returns the byte length of the BMP file EncodeBMP writes for a
// width × height image.
func BMPSize(width, height int) int {
	return bmpPixelOffset + (3*width+bmpRowPadding(width))*height
}

// EncodeBMP writes src as an uncompressed 24-bit BMP. The height field is
// negative so rows are stored top-down in the same order as src. Each pixel
// is written as B, G, R and each row is zero-padded to a multiple of 4 bytes.
func EncodeBMP(w io.Writer, src Source) error {
	width, height := src.Width(), src.Height()
	padding := bmpRowPadding(width)

	h := bmpHeader{
		Signature:    [2]byte{'B', 'M'},
		FileSize:     uint32(BMPSize(width, height)),
		PixelOffset:  bmpPixelOffset,
		InfoSize:     bmpInfoHeaderSize,
		Width:        int32(width),
		Height:       -int32(height),
		Planes:       1,
		BitsPerPixel: 24,
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("imgfmt: write BMP header: %w", err)
	}

	row := make([]byte, 3*width+padding)
	for y := range height {
		for x := range width {
			r, g, b := src.RGB(x, y)
			row[x*3+0] = b
			row[x*3+1] = g
			row[x*3+2] = r
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("imgfmt: write BMP row %d: %w", y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("imgfmt: write BMP: %w", err)
	}
	return nil
}
