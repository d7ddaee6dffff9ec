package visgraph

import "github.com/hmkoh01/dvrp2d/geometry"

// Table is the arena of points considered for one visibility-graph query:
// node 0 is always start, node 1 is always end, and the remainder are the
// vertices of every obstacle polygon judged relevant to this query (in
// polygon order, each polygon's vertices contiguous).
//
// Offsets records, for each considered polygon (including the two
// degenerate single-vertex polygons [start] and [end]), the index in Points
// of that polygon's first vertex, in the same order Polygons is in.
type Table struct {
	Points   []geometry.Point
	Polygons []geometry.Polygon
	Offsets  []int
}

// Graph is an undirected graph over Table's node indices: Adjacency[u]
// holds every v with an edge (u, v). Construction guarantees
// v ∈ Adjacency[u] iff u ∈ Adjacency[v].
type Graph struct {
	Table     Table
	Adjacency [][]int
}

// NodeCount returns the number of nodes in g (len(g.Table.Points)).
func (g *Graph) NodeCount() int { return len(g.Table.Points) }

// addEdge records an undirected edge (u, v). It is idempotent: calling it
// twice for the same pair does not duplicate the adjacency entry.
func (g *Graph) addEdge(u, v int) {
	if u == v {
		return
	}
	if !contains(g.Adjacency[u], v) {
		g.Adjacency[u] = append(g.Adjacency[u], v)
	}
	if !contains(g.Adjacency[v], u) {
		g.Adjacency[v] = append(g.Adjacency[v], u)
	}
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
