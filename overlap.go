// Decide whether two convex polygons with integer vertices overlap.
//
// Polygons overlap when their boundaries touch or cross anywhere, or when one
// lies entirely inside the other. The check runs in time linear in the total
// number of vertices. The vertex order of the input does not matter, as long as
// each polygon is simple and convex.
package polyoverlap

import (
	"github.com/osuushi/polyoverlap/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Polygon = advanced.Polygon
type Result = advanced.Result

// Normalize an open list of vertices into a closed counterclockwise polygon.
func NewPolygon(points []Point) (polygon *Polygon, err error) {
	defer func() {
		recoveredErr := advanced.HandleOverlapPanicRecover(recover())
		if recoveredErr != nil {
			polygon = nil
			err = recoveredErr
		}
	}()
	return advanced.NewPolygon(points), nil
}

// Report whether the polygons with vertices a and b overlap.
//
// An error is returned if either list has fewer than three vertices, has all
// of its vertices on one line, or has a coordinate outside
// ±advanced.MaxCoordinate.
func Overlap(a, b []Point) (bool, error) {
	result, err := Check(a, b)
	return result.Overlap, err
}

// Like Overlap, but also report how the overlap was found.
func Check(a, b []Point) (result Result, err error) {
	polyA, err := NewPolygon(a)
	if err != nil {
		return Result{}, errors.Wrap(err, "first polygon")
	}
	polyB, err := NewPolygon(b)
	if err != nil {
		return Result{}, errors.Wrap(err, "second polygon")
	}
	return (&advanced.Checker{}).Check(polyA, polyB), nil
}
