package parse

import (
	"io"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/polyoverlap/advanced"
	"github.com/pkg/errors"
)

// Read every <polygon> element of an SVG document, in document order. This is
// not a full SVG reader: transforms are ignored, and coordinates must be
// integers. The "points" attribute may separate numbers with commas, spaces,
// or both.
func ReadSVG(r io.Reader) ([][]advanced.Point, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	elements := root.FindAll("polygon")
	polygons := make([][]advanced.Point, 0, len(elements))
	for i, el := range elements {
		points, err := parseSVGPoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i+1)
		}
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parseSVGPoints(attr string) ([]advanced.Point, error) {
	numbers := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(numbers)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(numbers))
	}

	points := make([]advanced.Point, 0, len(numbers)/2)
	for i := 0; i < len(numbers); i += 2 {
		point, err := parsePoint(numbers[i], numbers[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i/2+1)
		}
		points = append(points, point)
	}
	if len(points) > 1 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	if len(points) < 3 {
		return nil, errors.Errorf("polygon needs at least 3 vertices, got %d", len(points))
	}
	return points, nil
}
