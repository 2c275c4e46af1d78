package advanced

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

func (r Reason) String() string {
	switch r {
	case NoOverlap:
		return "no overlap"
	case EdgesIntersect:
		return "edges intersect"
	case AInsideB:
		return "first polygon inside second"
	case BInsideA:
		return "second polygon inside first"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// One line summary for humans, coloured through au. Pass aurora.NewAurora(false)
// for plain text.
func (r Result) Explain(au aurora.Aurora) string {
	reason := r.Reason.String()
	if r.Overlap {
		reason = au.Green(reason).String()
	} else {
		reason = au.Red(reason).String()
	}
	if r.Reason == EdgesIntersect {
		return fmt.Sprintf("%s: edge %d of first, edge %d of second", reason, r.EdgeA, r.EdgeB)
	}
	return reason
}
