package advanced

// The displacement from p to q
func Vect(p, q Point) Point {
	return Point{X: q.X - p.X, Y: q.Y - p.Y}
}

// 2D cross product. Positive when v is a counterclockwise turn from u, negative
// when clockwise, zero when they are parallel.
func Cross(u, v Point) int64 {
	return u.X*v.Y - u.Y*v.X
}

// Orientation of the triple p, q, r: 1 for counterclockwise, -1 for clockwise,
// 0 for collinear.
func Orient(p, q, r Point) int {
	return sign(Cross(Vect(p, q), Vect(p, r)))
}

func sign(v int64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
