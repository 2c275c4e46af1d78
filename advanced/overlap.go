package advanced

import "github.com/sirupsen/logrus"

// Two polygons overlap iff they have intersecting edges, or one is inside the
// other.
//
// The edge search is the rotating pointer technique from convex polygon
// intersection: one edge cursor per polygon, and at every step the cursor
// that cannot be "aiming" at the other polygon's current edge is advanced.
// This finds an intersecting pair, if there is one, in time linear in the
// total number of vertices. Each cursor may go around its polygon twice, the
// first lap to catch up with the other cursor and the second to sweep.
//
// If no edges intersect, the boundaries are disjoint, so either one polygon
// contains the other or they are separate. Testing a single vertex of each
// against the other polygon then settles it. That shortcut is only valid after
// the edge search has come up empty, so the order of the two phases matters.
// The zero value checks without tracing.
type Checker struct {
	// Receives a debug entry per edge chase step, and one for the verdict. Nil
	// disables tracing.
	Log logrus.FieldLogger
}

// Both polygons must come from NewPolygon.
func (c *Checker) Check(a, b *Polygon) Result {
	result := c.chaseEdges(a, b)
	if !result.Overlap {
		result = c.checkContainment(a, b, result)
	}
	if c.Log != nil {
		c.Log.WithFields(logrus.Fields{
			"overlap": result.Overlap,
			"reason":  result.Reason.String(),
			"steps":   result.Steps,
		}).Debug("overlap check finished")
	}
	return result
}

func (c *Checker) Overlaps(a, b *Polygon) bool {
	return c.Check(a, b).Overlap
}

func Overlaps(a, b *Polygon) bool {
	return (&Checker{}).Overlaps(a, b)
}

func (c *Checker) chaseEdges(a, b *Polygon) Result {
	ai, bi := 1, 1
	aroundA, aroundB := 0, 0
	steps := 0
	for aroundA < 2 && aroundB < 2 {
		steps++
		p := a.Edge(ai)
		q := b.Edge(bi)

		if p.Intersects(q) {
			return Result{Overlap: true, Reason: EdgesIntersect, EdgeA: ai, EdgeB: bi, Steps: steps}
		}

		moveA := advanceA(p, q)
		if c.Log != nil {
			c.traceStep(ai, bi, aroundA, aroundB, moveA, p, q)
		}
		if moveA {
			ai++
		} else {
			bi++
		}

		if ai >= len(a.Points) {
			ai = 1
			aroundA++
		}
		if bi >= len(b.Points) {
			bi = 1
			aroundB++
		}
	}
	return Result{Reason: NoOverlap, EdgeA: -1, EdgeB: -1, Steps: steps}
}

// Decide which cursor moves, given the current edges p (on A) and q (on B)
// that do not intersect.
func advanceA(p, q Segment) bool {
	if Cross(q.Vector(), p.Vector()) >= 0 {
		// q does not turn clockwise into p. Move q on while p's end lies to its
		// left.
		return Cross(q.Vector(), Vect(q.Start, p.End)) <= 0
	}
	return Cross(p.Vector(), Vect(p.Start, q.End)) != 0
}

func (c *Checker) checkContainment(a, b *Polygon, result Result) Result {
	if b.ContainsPoint(a.Points[0]) {
		result.Overlap = true
		result.Reason = AInsideB
	} else if a.ContainsPoint(b.Points[0]) {
		result.Overlap = true
		result.Reason = BInsideA
	}
	return result
}

func (c *Checker) traceStep(ai, bi, aroundA, aroundB int, moveA bool, p, q Segment) {
	advance := "b"
	if moveA {
		advance = "a"
	}
	c.Log.WithFields(logrus.Fields{
		"ai":      ai,
		"bi":      bi,
		"aroundA": aroundA,
		"aroundB": aroundB,
		"advance": advance,
	}).Debugf("edges %s and %s are apart", p, q)
}
