package advanced

// Coordinates are integers. Keeping them within MaxCoordinate guarantees that
// every cross product we compute, and twice the area of any convex polygon,
// fits in an int64.
const MaxCoordinate = 1 << 29

type Point struct {
	X int64
	Y int64
}

// A closed segment. Both endpoints belong to the segment, so touching counts as
// intersecting.
type Segment struct {
	Start Point
	End   Point
}

// Polygons built with NewPolygon are closed (the first point is repeated at the
// end) and wind counterclockwise. Everything in this package that takes a
// *Polygon assumes that shape.
type Polygon struct {
	Points []Point
}

// Why two polygons were judged to overlap.
type Reason int

const (
	NoOverlap Reason = iota
	EdgesIntersect
	AInsideB
	BInsideA
)

type Result struct {
	Overlap bool
	Reason  Reason
	// Indexes of the end vertex of the intersecting edges, so the edge on A is
	// A.Points[EdgeA-1] to A.Points[EdgeA]. Both are -1 unless Reason is
	// EdgesIntersect.
	EdgeA, EdgeB int
	// Number of edge pairs the chase examined
	Steps int
}
