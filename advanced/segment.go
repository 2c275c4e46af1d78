package advanced

import "fmt"

// Check whether the closed segments p1-p2 and q1-q2 share at least one point.
// This covers proper crossings as well as an endpoint lying on the other
// segment, including collinear overlap.
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	o1 := Orient(p1, p2, q1)
	o2 := Orient(p1, p2, q2)
	o3 := Orient(q1, q2, p1)
	o4 := Orient(q1, q2, p2)

	// Each segment's endpoints are strictly on opposite sides of the other's
	// line. Signs are multiplied instead of raw cross products, which could
	// overflow.
	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}

	// Touching cases. A zero orientation puts the point on the other segment's
	// line, so the bounding box decides whether it is on the segment itself.
	if o1 == 0 && inBoundingBox(p1, p2, q1) {
		return true
	}
	if o2 == 0 && inBoundingBox(p1, p2, q2) {
		return true
	}
	if o3 == 0 && inBoundingBox(q1, q2, p1) {
		return true
	}
	if o4 == 0 && inBoundingBox(q1, q2, p2) {
		return true
	}
	return false
}

func (s Segment) Intersects(other Segment) bool {
	return SegmentsIntersect(s.Start, s.End, other.Start, other.End)
}

// Direction vector of the segment
func (s Segment) Vector() Point {
	return Vect(s.Start, s.End)
}

func (s Segment) String() string {
	return fmt.Sprintf("[(%d %d) (%d %d)]", s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}

// Is p inside the axis aligned bounding box of the segment a-b (boundary
// included)?
func inBoundingBox(a, b, p Point) bool {
	return p.X <= max64(a.X, b.X) && p.X >= min64(a.X, b.X) &&
		p.Y <= max64(a.Y, b.Y) && p.Y >= min64(a.Y, b.Y)
}
