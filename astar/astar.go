package astar

import (
	"container/heap"
	"math"

	"github.com/hmkoh01/dvrp2d/visgraph"
)

// Search finds the shortest path from source to goal over g using A* with
// a Euclidean-distance heuristic to goal. It returns the node indices along
// the path, source first and goal last, and ok=true if goal was reached.
// If goal is unreachable, it returns (nil, false).
//
// Complexity: O((V + E) log V), the same bound a plain Dijkstra search
// carries, since the heuristic only reorders the frontier, it does not
// change the asymptotic number of heap operations in the worst case.
func Search(g *visgraph.Graph, source, goal int, opts ...Option) ([]int, bool, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.NodeCount()
	if source < 0 || source >= n || goal < 0 || goal >= n {
		return nil, false, ErrNodeOutOfRange
	}

	r := &runner{
		g:      g,
		goal:   goal,
		cfg:    cfg,
		best:   make([]float64, n),
		prev:   make([]int, n),
		closed: make([]bool, n),
		pq:     make(nodePQ, 0, n),
	}
	for i := range r.best {
		r.best[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.best[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, g: 0, f: r.heuristic(source)})

	found := r.run(source)
	if !found {
		return nil, false, nil
	}

	return reconstruct(r.prev, source, goal), true, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g      *visgraph.Graph
	goal   int
	cfg    Options
	best   []float64 // best known g-cost per node
	prev   []int     // predecessor per node, -1 if none
	closed []bool    // true once a node's best g-cost is finalized
	pq     nodePQ
}

func (r *runner) heuristic(node int) float64 {
	a := r.g.Table.Points[node]
	b := r.g.Table.Points[r.goal]
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// run drains the frontier, relaxing edges, until goal is popped (success)
// or the frontier empties (failure). Returns whether goal was reached.
func (r *runner) run(source int) bool {
	expansions := 0
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		if r.closed[u] {
			continue // stale entry from the lazy decrease-key strategy
		}
		r.closed[u] = true

		if u == r.goal {
			return true
		}

		expansions++
		if r.cfg.MaxExpansions > 0 && expansions > r.cfg.MaxExpansions {
			return false
		}

		r.relax(u)
	}
	return false
}

func (r *runner) relax(u int) {
	up := r.g.Table.Points[u]
	for _, v := range r.g.Adjacency[u] {
		if r.closed[v] {
			continue
		}
		vp := r.g.Table.Points[v]
		w := math.Hypot(up.X-vp.X, up.Y-vp.Y)
		newG := r.best[u] + w
		if newG >= r.best[v] {
			continue
		}
		r.best[v] = newG
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, g: newG, f: newG + r.heuristic(v)})
	}
}

// reconstruct walks prev from goal back to source and reverses the result.
func reconstruct(prev []int, source, goal int) []int {
	path := []int{goal}
	for x := goal; x != source; {
		x = prev[x]
		path = append(path, x)
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// nodeItem pairs a node index with its current g-cost and f = g + h
// priority, the unit stored in the search frontier.
type nodeItem struct {
	id int
	g  float64
	f  float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending f, using the
// standard lazy-decrease-key trick: pushing a new, better entry for a node
// rather than mutating an existing one, and relying on the closed/visited
// flag to ignore stale pops.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
