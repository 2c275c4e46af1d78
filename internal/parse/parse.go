// Package parse turns text and SVG input into vertex lists.
package parse

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/polyoverlap/advanced"
	"github.com/pkg/errors"
)

// Separates vertices on a polygon line
const pointDelimiter = ","

// Longest polygon line ReadPair accepts
const maxLineLength = 64 << 20

// Parse a polygon line such as "0 0,0 4,4 4,4 0": vertices separated by commas,
// each vertex two whitespace separated integers. Empty entries (from a trailing
// comma, say) are skipped. Input that repeats the first vertex at the end to
// close the loop is accepted, and the repeat dropped.
func ParsePolygon(line string) ([]advanced.Point, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, errors.New("empty polygon")
	}

	pointStrings := strings.Split(line, pointDelimiter)
	points := make([]advanced.Point, 0, len(pointStrings))
	for i, pointString := range pointStrings {
		if strings.TrimSpace(pointString) == "" {
			continue
		}
		fields := strings.Fields(pointString)
		if len(fields) != 2 {
			return nil, errors.Errorf("point %d: expected \"x y\", got %q", i+1, pointString)
		}
		point, err := parsePoint(fields[0], fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i+1)
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

// Read two polygons, one per line, from r. Anything after the second line is
// ignored.
func ReadPair(r io.Reader) (a, b []advanced.Point, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	var lines []string
	for len(lines) < 2 && scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "reading polygons")
	}
	if len(lines) < 2 {
		return nil, nil, errors.Errorf("expected 2 polygon lines, got %d", len(lines))
	}

	a, err = ParsePolygon(lines[0])
	if err != nil {
		return nil, nil, errors.Wrap(err, "line 1")
	}
	b, err = ParsePolygon(lines[1])
	if err != nil {
		return nil, nil, errors.Wrap(err, "line 2")
	}
	return a, b, nil
}

func parsePoint(xString, yString string) (advanced.Point, error) {
	x, err := parseCoordinate(xString)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "x")
	}
	y, err := parseCoordinate(yString)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "y")
	}
	return advanced.Point{X: x, Y: y}, nil
}

func parseCoordinate(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Errorf("invalid integer %q", s)
	}
	if v > advanced.MaxCoordinate || v < -advanced.MaxCoordinate {
		return 0, errors.Errorf("%d is outside ±%d", v, advanced.MaxCoordinate)
	}
	return v, nil
}
