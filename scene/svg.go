package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"

	"github.com/gogpu/polyclip"
)

// SVG errors.
var (
	// ErrNoPolygons is returned when an SVG document does not hold both a
	// subject and a window polygon.
	ErrNoPolygons = errors.New("scene: svg needs a subject and a window polygon")
)

// LoadSVG reads the subject and window from the <polygon> elements of an SVG
// document. Elements with id="subject" and id="window" win; otherwise the
// first polygon is the subject and the second the window.
//
// Only the points attribute is read. Transforms and other shapes are ignored.
func LoadSVG(r io.Reader) (subject, window polyclip.Polygon, err error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: parse svg: %w", err)
	}

	if root == nil {
		return nil, nil, ErrNoPolygons
	}

	elems := root.FindAll("polygon")
	if len(elems) == 0 {
		return nil, nil, ErrNoPolygons
	}

	var subjectEl, windowEl *svgparser.Element
	var rest []*svgparser.Element
	for _, el := range elems {
		switch el.Attributes["id"] {
		case "subject":
			if subjectEl == nil {
				subjectEl = el
				continue
			}
		case "window":
			if windowEl == nil {
				windowEl = el
				continue
			}
		}
		rest = append(rest, el)
	}
	if subjectEl == nil && len(rest) > 0 {
		subjectEl, rest = rest[0], rest[1:]
	}
	if windowEl == nil && len(rest) > 0 {
		windowEl = rest[0]
	}
	if subjectEl == nil || windowEl == nil {
		return nil, nil, fmt.Errorf("%w: found %d", ErrNoPolygons, len(elems))
	}

	if subject, err = parsePoints(subjectEl.Attributes["points"]); err != nil {
		return nil, nil, fmt.Errorf("scene: subject: %w", err)
	}
	if window, err = parsePoints(windowEl.Attributes["points"]); err != nil {
		return nil, nil, fmt.Errorf("scene: window: %w", err)
	}
	return subject, window, nil
}

// LoadSVGFile is LoadSVG on the named file.
func LoadSVGFile(path string) (subject, window polyclip.Polygon, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: open svg: %w", err)
	}
	defer f.Close()

	return LoadSVG(f)
}

// parsePoints parses an SVG points list. Coordinates may be separated by
// commas, whitespace or both.
func parsePoints(s string) (polyclip.Polygon, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates in %q", s)
	}

	poly := make(polyclip.Polygon, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x value %q: %w", fields[i], err)
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y value %q: %w", fields[i+1], err)
		}
		poly = append(poly, polyclip.Pt(x, y))
	}
	return poly, nil
}
