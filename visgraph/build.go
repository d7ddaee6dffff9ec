package visgraph

import (
	"fmt"

	"github.com/hmkoh01/dvrp2d/geometry"
)

// Build constructs the visibility graph for one start/end/obstacle query:
//
//  1. Relevance filter — only obstacles whose boundary the straight S-E
//     segment actually meets are considered, plus two degenerate
//     single-vertex polygons [start] and [end] so they share the same
//     construction pathway.
//  2. Node table — concatenate vertex lists of the considered polygons,
//     [start] first, then [end], then each relevant obstacle, recording
//     each polygon's offset.
//  3. Polygon edges — each polygon's own cyclic successor/predecessor
//     edges (skipped for the degenerate [start]/[end] polygons).
//  4. Visibility edges — for every pair of nodes, including two vertices
//     of the same polygon, add an edge iff the open chord between them
//     does not Cross any considered obstacle's boundary (Touch is
//     permitted).
//
// Build does not mutate obstacles and allocates only data scoped to this
// call. Complexity: O(V^2 * E_total) for the visibility test, where V is
// the total considered-vertex count and E_total is the total edge count
// across considered obstacles.
func Build(start, end geometry.Point, obstacles []geometry.Polygon) (*Graph, error) {
	probe := geometry.Segment{A: start, B: end}
	if !probe.Valid() {
		return nil, fmt.Errorf("%w: start and end coincide at %v", geometry.ErrDegenerateSegment, start)
	}

	// Step 1: relevance filter.
	considered := make([]geometry.Polygon, 0, len(obstacles)+2)
	considered = append(considered, geometry.Polygon{start}) // polygon [start], index 0
	considered = append(considered, geometry.Polygon{end})   // polygon [end], index 1
	for i, obstacle := range obstacles {
		if !obstacle.Valid() {
			return nil, fmt.Errorf("%w: obstacle %d", geometry.ErrDegeneratePolygon, i)
		}
		if geometry.SegmentIntersectsPolygon(probe, obstacle) != geometry.None {
			considered = append(considered, obstacle)
		}
	}

	// Step 2: node table.
	table := Table{
		Polygons: considered,
		Offsets:  make([]int, len(considered)),
	}
	for i, polygon := range considered {
		table.Offsets[i] = len(table.Points)
		table.Points = append(table.Points, polygon...)
	}

	g := &Graph{
		Table:     table,
		Adjacency: make([][]int, len(table.Points)),
	}

	// Step 3 + 4: polygon edges, then visibility edges over every pair of
	// nodes now that the node table holds every vertex.
	for pi, polygon := range considered {
		offset := table.Offsets[pi]
		n := len(polygon)
		if n == 1 {
			continue // degenerate [start]/[end] polygon: no polygon edges
		}
		for i := 0; i < n; i++ {
			g.addEdge(offset+i, offset+(i-1+n)%n)
			g.addEdge(offset+i, offset+(i+1)%n)
		}
	}

	for v := 1; v < len(table.Points); v++ {
		for u := 0; u < v; u++ {
			if visible(table.Points[u], table.Points[v], considered) {
				g.addEdge(u, v)
			}
		}
	}

	return g, nil
}

// visible reports whether the open chord (u, v) clears every considered
// polygon: it is admitted unless it Crosses at least one of them. Touching
// a polygon (sharing a vertex with it) is permitted, which is what lets a
// planned route skim an obstacle's corner.
func visible(u, v geometry.Point, considered []geometry.Polygon) bool {
	chord := geometry.Segment{A: u, B: v}
	for _, p := range considered {
		if len(p) < 2 {
			continue // degenerate [start]/[end] polygon has no boundary to cross
		}
		if geometry.SegmentIntersectsPolygon(chord, p) == geometry.Cross {
			return false
		}
	}
	return true
}
