package geometry

// Severity classifies how a Segment relates to another Segment or to a
// Polygon's boundary, ordered None < Touch < Cross.
type Severity int

const (
	// None means the two objects share no point.
	None Severity = iota

	// Touch means the objects meet only at a shared endpoint (or, for a
	// segment against a polygon, at a shared vertex) and nowhere else.
	Touch

	// Cross means the segment enters the interior of the other segment
	// or polygon edge.
	Cross
)

// String provides a readable identifier for logs/errors (deterministic).
func (s Severity) String() string {
	switch s {
	case None:
		return "none"
	case Touch:
		return "touch"
	case Cross:
		return "cross"
	default:
		return "unknown"
	}
}

// Orientation returns twice the signed area of triangle (A, B, C): the
// cross product of (B-A) and (C-A). Its sign classifies C as left of the
// directed line AB (>0), right of it (<0), or collinear with it (=0).
//
// Complexity: O(1).
func Orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// sign returns -1, 0, or +1 for x's sign, treating values within a tiny
// epsilon of zero as exactly zero so that near-collinear configurations
// computed from real arithmetic classify the same way integer coordinates
// would.
func sign(x float64) int {
	const eps = 1e-9
	switch {
	case x > eps:
		return 1
	case x < -eps:
		return -1
	default:
		return 0
	}
}

// canonical returns s with its endpoints ordered so A is lexicographically
// <= B.
func canonical(s Segment) Segment {
	if s.B.Less(s.A) {
		return Segment{A: s.B, B: s.A}
	}
	return s
}

// SegmentsIntersect classifies the relationship between two segments L1 and
// L2:
//
//  1. canonicalize each segment's endpoint order,
//  2. compute the four orientation tests,
//  3. in the collinear case, compare canonical endpoints to decide
//     disjoint / touch / overlap,
//  4. otherwise apply the general straddle test.
//
// A shared-endpoint configuration classifies as Cross at this layer — the
// caller (SegmentIntersectsPolygon) is responsible for recognizing shared
// endpoints and reporting Touch instead.
//
// Complexity: O(1).
func SegmentsIntersect(l1, l2 Segment) Severity {
	l1 = canonical(l1)
	l2 = canonical(l2)
	a, b := l1.A, l1.B
	c, d := l2.A, l2.B

	abc := sign(Orientation(a, b, c))
	abd := sign(Orientation(a, b, d))
	cda := sign(Orientation(c, d, a))
	cdb := sign(Orientation(c, d, b))

	if abc == 0 && abd == 0 {
		// Collinear case: compare canonical endpoints directly.
		if b.Less(c) || d.Less(a) {
			return None
		}
		if b.Equal(c) || d.Equal(a) {
			return Touch
		}
		return Cross // collinear overlap
	}

	if abc*abd <= 0 && cda*cdb <= 0 {
		return Cross
	}
	return None
}

// SegmentIntersectsPolygon classifies how segment L relates to polygon P's
// boundary: for each edge e of P, a shared endpoint upgrades the result to
// at least Touch; an interior crossing (SegmentsIntersect == Cross without
// a shared endpoint) upgrades it to Cross. The final value is the maximum
// severity observed over all edges of P.
//
// Complexity: O(len(P)).
func SegmentIntersectsPolygon(l Segment, p Polygon) Severity {
	result := None
	n := len(p)
	for i := 0; i < n; i++ {
		e := p.Edge(i)
		if l.A.Equal(e.A) || l.A.Equal(e.B) || l.B.Equal(e.A) || l.B.Equal(e.B) {
			if result < Touch {
				result = Touch
			}
			continue
		}
		if SegmentsIntersect(l, e) == Cross {
			result = Cross
		}
	}
	return result
}

// rayReach is the far endpoint's X coordinate for the PointInPolygon ray
// cast: large enough to clear any obstacle coordinate this planner is
// expected to see, finite so orientation arithmetic never produces NaN
// (unlike a true +Inf endpoint would, on a near-collinear edge).
const rayReach = 1e9

// PointInPolygon reports whether q lies strictly inside polygon p, using a
// ray cast from q toward (rayReach, q.Y+1) — tilted by one unit in y so the
// ray does not pass exactly through any polygon vertex. An edge crossing
// count that is odd means q is inside.
//
// Complexity: O(len(p)).
func PointInPolygon(p Polygon, q Point) bool {
	ray := Segment{A: q, B: Point{X: rayReach, Y: q.Y + 1}}
	count := 0
	n := len(p)
	for i := 0; i < n; i++ {
		e := p.Edge(i)
		if SegmentsIntersect(ray, e) != None {
			count++
		}
	}
	return count%2 == 1
}
