package fixtures

import "github.com/hmkoh01/dvrp2d/geometry"

// Square returns an axis-aligned square obstacle with opposite corners
// (minX, minY) and (maxX, maxY), vertices listed counter-clockwise.
func Square(minX, minY, maxX, maxY float64) geometry.Polygon {
	return geometry.Polygon{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}

// Triangle returns the triangle obstacle with the three given vertices, in
// the order supplied.
func Triangle(a, b, c geometry.Point) geometry.Polygon {
	return geometry.Polygon{a, b, c}
}

// ConcentricMaze returns `rings` square obstacles centered on center, ring
// i having half-width i*spacing. Each ring is a closed polygon with one
// side notched inward (see ring); it has no opening. A straight chord
// through the center meets every ring, so all of them are considered in
// the same visibility graph and the planner detours around the outermost
// one in a single pass.
//
// Successive rings rotate their notch by one side (right, bottom, left,
// top, repeating, starting from the innermost ring).
func ConcentricMaze(center geometry.Point, rings int, spacing float64) []geometry.Polygon {
	obstacles := make([]geometry.Polygon, 0, rings)
	for i := 1; i <= rings; i++ {
		half := float64(i) * spacing
		obstacles = append(obstacles, ring(center, half, i%4))
	}
	return obstacles
}

// DetourChain returns n tiny spike obstacles strung out between start and
// end, each one a thin triangle whose base sits exactly on the straight
// line the previous spike's detour leaves behind, with its apex offset to
// the side.
//
// Unlike ConcentricMaze, where every ring is visible to the original
// start-end probe at once and the visibility graph resolves the whole
// detour in a single pass, each spike here is invisible to every segment
// used to avoid its predecessors — it only ever intersects the one tail
// segment that remains after the previous spike is routed around. Avoiding
// spike k therefore can only be discovered by refining spike (k-1)'s own
// detour edge, forcing the planner's recursive refiner to descend exactly
// one level per spike, deep enough to drive recursion past any realistic
// depth cap.
func DetourChain(start, end geometry.Point, n int) []geometry.Polygon {
	const baseHalf = 0.01
	obstacles := make([]geometry.Polygon, 0, n)

	tail := start
	for k := 1; k <= n; k++ {
		frac := float64(k) / float64(n+1)
		x := start.X + frac*(end.X-start.X)

		y := tail.Y
		if end.X != tail.X {
			t := (x - tail.X) / (end.X - tail.X)
			y = tail.Y + t*(end.Y-tail.Y)
		}

		base1 := geometry.Point{X: x, Y: y - baseHalf}
		base2 := geometry.Point{X: x, Y: y + baseHalf}
		apex := geometry.Point{X: x, Y: y + 1}
		obstacles = append(obstacles, geometry.Polygon{base1, base2, apex})

		tail = apex
	}
	return obstacles
}

// ring returns a square ring of half-width half around center, represented
// (since this planner has no notion of a polygon "with a hole") as a
// closed simple polygon: a square obstacle with one side's midpoint pushed
// inward by a fifth of half, on the side selected by doorSide (0=top,
// 1=right, 2=bottom, 3=left).
func ring(center geometry.Point, half float64, doorSide int) geometry.Polygon {
	cx, cy := center.X, center.Y
	notch := half * 0.2 // doorway depth, small relative to the ring itself

	corners := []geometry.Point{
		{X: cx - half, Y: cy - half},
		{X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half},
		{X: cx - half, Y: cy + half},
	}

	switch doorSide % 4 {
	case 0: // notch the top edge
		mid := geometry.Point{X: cx, Y: cy - half + notch}
		return geometry.Polygon{corners[0], mid, corners[1], corners[2], corners[3]}
	case 1: // notch the right edge
		mid := geometry.Point{X: cx + half - notch, Y: cy}
		return geometry.Polygon{corners[0], corners[1], mid, corners[2], corners[3]}
	case 2: // notch the bottom edge
		mid := geometry.Point{X: cx, Y: cy + half - notch}
		return geometry.Polygon{corners[0], corners[1], corners[2], mid, corners[3]}
	default: // notch the left edge
		mid := geometry.Point{X: cx - half + notch, Y: cy}
		return geometry.Polygon{corners[0], corners[1], corners[2], corners[3], mid}
	}
}
