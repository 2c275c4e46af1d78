package advanced

import (
	"fmt"
	"strings"
)

// Build a closed, counterclockwise polygon from an open list of vertices. The
// input slice is copied, never modified.
//
// Orientation is read from the turn at the first three vertices, which is
// exact for convex input. If those three happen to be collinear, the sign of
// the whole polygon's area is used instead.
//
// Fewer than three vertices, coordinates outside MaxCoordinate, or a polygon
// with no area are contract violations and panic with an OverlapError.
func NewPolygon(points []Point) *Polygon {
	if len(points) < 3 {
		fatalf("polygon needs at least 3 vertices, got %d", len(points))
	}
	for i, p := range points {
		if !inRange(p) {
			fatalf("vertex %d (%d %d) is outside the supported coordinate range ±%d", i, p.X, p.Y, MaxCoordinate)
		}
	}

	closed := make([]Point, len(points), len(points)+1)
	copy(closed, points)
	closed = append(closed, points[0])
	poly := &Polygon{Points: closed}

	area := poly.SignedArea2()
	if area == 0 {
		fatalf("degenerate polygon: all %d vertices are collinear", len(points))
	}

	// A collinear start says nothing about winding, so the area sign decides.
	turn := Orient(closed[0], closed[1], closed[2])
	if turn < 0 || (turn == 0 && area < 0) {
		poly.reverse()
	}
	return poly
}

// Point in convex polygon. The polygon must be closed and counterclockwise, in
// which case a point is inside iff it is not to the right of any edge. Points
// on the boundary count as inside.
func (poly *Polygon) ContainsPoint(p Point) bool {
	for i := 1; i < len(poly.Points); i++ {
		start, end := poly.Points[i-1], poly.Points[i]
		if Cross(Vect(start, end), Vect(start, p)) < 0 {
			return false
		}
	}
	return true
}

// Twice the signed area, positive for counterclockwise polygons. Works on
// closed or open point lists, since the closing edge contributes nothing to a
// fan anchored at the first vertex.
func (poly *Polygon) SignedArea2() int64 {
	var area int64
	origin := poly.Points[0]
	for i := 2; i < len(poly.Points); i++ {
		area += Cross(Vect(origin, poly.Points[i-1]), Vect(origin, poly.Points[i]))
	}
	return area
}

// Edge ending at vertex i, i.e. Points[i-1] to Points[i]. Valid for
// 1 <= i < len(Points).
func (poly *Polygon) Edge(i int) Segment {
	return Segment{poly.Points[i-1], poly.Points[i]}
}

// Number of distinct vertices, not counting the closing repeat.
func (poly *Polygon) VertexCount() int {
	return len(poly.Points) - 1
}

func (poly *Polygon) IsCCW() bool {
	return poly.SignedArea2() > 0
}

func (poly *Polygon) String() string {
	parts := make([]string, 0, len(poly.Points))
	for _, p := range poly.Points[:poly.VertexCount()] {
		parts = append(parts, fmt.Sprintf("%d %d", p.X, p.Y))
	}
	return strings.Join(parts, ",")
}

func (poly *Polygon) reverse() {
	for i, j := 0, len(poly.Points)-1; i < j; i, j = i+1, j-1 {
		poly.Points[i], poly.Points[j] = poly.Points[j], poly.Points[i]
	}
}

func inRange(p Point) bool {
	return p.X <= MaxCoordinate && p.X >= -MaxCoordinate &&
		p.Y <= MaxCoordinate && p.Y >= -MaxCoordinate
}
