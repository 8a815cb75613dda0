package imgfmt

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
)

// ErrMalformedPPM is returned when PPM input cannot be parsed.
var ErrMalformedPPM = errors.New("imgfmt: malformed PPM")

// EncodePPM writes src as a plain-text P3 pixmap:
//
//	P3
//	<width> <height>
//	255
//
// followed by one line per row, each pixel written as "r g b " in
// top-to-bottom, left-to-right order.
func EncodePPM(w io.Writer, src Source) error {
	width, height := src.Width(), src.Height()

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("imgfmt: write PPM header: %w", err)
	}

	// Longest pixel is "255 255 255 " (12 bytes).
	line := make([]byte, 0, width*12+1)
	for y := range height {
		line = line[:0]
		for x := range width {
			r, g, b := src.RGB(x, y)
			line = strconv.AppendUint(line, uint64(r), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(g), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(b), 10)
			line = append(line, ' ')
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("imgfmt: write PPM row %d: %w", y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("imgfmt: write PPM: %w", err)
	}
	return nil
}

// maxPPMPixels bounds the image DecodePPM will allocate.
const maxPPMPixels = 1 << 26

// DecodePPM reads a plain-text P3 pixmap. Whitespace layout is free-form and
// '#' comments are skipped. Channel values are rescaled to 8 bits when the
// declared maximum is not 255.
func DecodePPM(r io.Reader) (*image.NRGBA, error) {
	s := &ppmScanner{r: bufio.NewReader(r)}

	magic, err := s.token()
	if err != nil {
		return nil, err
	}
	if magic != "P3" {
		return nil, fmt.Errorf("%w: magic %q", ErrMalformedPPM, magic)
	}

	width, err := s.int("width")
	if err != nil {
		return nil, err
	}
	height, err := s.int("height")
	if err != nil {
		return nil, err
	}
	maxVal, err := s.int("max value")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 || maxVal <= 0 || maxVal > 65535 {
		return nil, fmt.Errorf("%w: header %d %d %d", ErrMalformedPPM, width, height, maxVal)
	}
	if width > maxPPMPixels/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrMalformedPPM, width, height, maxPPMPixels)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		off := i * 4
		for c := range 3 {
			v, err := s.int("sample")
			if err != nil {
				return nil, err
			}
			if v < 0 || v > maxVal {
				return nil, fmt.Errorf("%w: sample %d exceeds %d", ErrMalformedPPM, v, maxVal)
			}
			img.Pix[off+c] = uint8(v * 255 / maxVal)
		}
		img.Pix[off+3] = 0xff
	}
	return img, nil
}

// ppmScanner splits PPM text into whitespace separated tokens.
type ppmScanner struct {
	r *bufio.Reader
}

func (s *ppmScanner) token() (string, error) {
	var tok []byte
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			if err == io.EOF {
				return "", fmt.Errorf("%w: unexpected end of data", ErrMalformedPPM)
			}
			return "", fmt.Errorf("imgfmt: read PPM: %w", err)
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := s.r.ReadString('\n'); err != nil && err != io.EOF {
				return "", fmt.Errorf("imgfmt: read PPM: %w", err)
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func (s *ppmScanner) int(what string) (int, error) {
	tok, err := s.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedPPM, what, tok)
	}
	return v, nil
}
