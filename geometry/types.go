package geometry

// Point is a pair of real coordinates. Equality is componentwise exact
// equality on the caller-supplied values; the planner never perturbs a
// coordinate it did not compute itself.
type Point struct {
	X float64
	Y float64
}

// Equal reports whether p and q denote the same location.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Less implements the lexicographic tuple order (X then Y) used to
// canonicalize segment endpoints before classification.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Segment is an ordered pair of distinct Points.
type Segment struct {
	A Point
	B Point
}

// Valid reports whether s is non-degenerate: its two endpoints differ.
func (s Segment) Valid() bool {
	return !s.A.Equal(s.B)
}

// Polygon is a finite ordered sequence of >= 3 Points. Vertex i is followed
// cyclically by vertex (i+1) mod len(Polygon); edge i connects vertex i-1
// (cyclically) to vertex i. Vertex winding order is not significant.
type Polygon []Point

// Valid reports whether p satisfies the structural invariants required of
// an obstacle polygon: at least 3 vertices, and no two
// cyclically-consecutive vertices coincident. It does not check for
// self-intersection, which is left as an undefined-behavior input the
// facade may, but need not, reject.
func (p Polygon) Valid() bool {
	n := len(p)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		prev := p[(i-1+n)%n]
		if prev.Equal(p[i]) {
			return false
		}
	}
	return true
}

// Edge returns the i-th edge of the polygon: the segment from vertex i-1
// (cyclically) to vertex i.
func (p Polygon) Edge(i int) Segment {
	n := len(p)
	return Segment{A: p[(i-1+n)%n], B: p[i]}
}
