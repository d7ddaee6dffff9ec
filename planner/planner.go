package planner

import (
	"errors"
	"fmt"

	"github.com/hmkoh01/dvrp2d/astar"
	"github.com/hmkoh01/dvrp2d/geometry"
	"github.com/hmkoh01/dvrp2d/visgraph"
)

// ErrInvalidObstacle is returned when an obstacle polygon fails the
// structural invariants geometry.Polygon.Valid requires — the one
// programmer-error signal the core is allowed to raise.
var ErrInvalidObstacle = errors.New("planner: invalid obstacle polygon")

// Plan computes an obstacle-avoiding polyline from start to end through
// the given obstacle polygons:
//
//   - if start equals end, the result is the single-point polyline [start];
//   - otherwise the result is the recursively refined route (§4.4),
//     starting at recursion depth 0.
//
// Plan is total for any set of structurally valid obstacles: it never
// returns an obstacle-piercing error, only ErrInvalidObstacle for a
// malformed polygon (fewer than 3 vertices, or coincident consecutive
// vertices).
func Plan(start, end geometry.Point, obstacles []geometry.Polygon, opts ...Option) ([]geometry.Point, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	for i, o := range obstacles {
		if !o.Valid() {
			return nil, fmt.Errorf("%w: obstacle %d", ErrInvalidObstacle, i)
		}
	}

	if start.Equal(end) {
		return []geometry.Point{start}, nil
	}

	return refine(start, end, obstacles, 0, cfg)
}

// refine is the recursive route refiner:
//
//  1. past the recursion depth cap, fall back to the straight segment and
//     notify Observer (the safety net for a pathological obstacle
//     configuration);
//  2. otherwise build the visibility graph and search it;
//  3. a direct edge (k=1) is returned as-is — by construction it is clear
//     of every obstacle considered at this recursion level; when no path
//     is found the straight segment is returned as well, without any
//     obstacle check;
//  4. a multi-hop provisional path has each of its edges re-planned
//     against the FULL obstacle universe one recursion level deeper, and
//     the results concatenated with the shared join point deduplicated.
func refine(start, end geometry.Point, obstacles []geometry.Polygon, depth int, cfg Options) ([]geometry.Point, error) {
	if depth > cfg.maxDepth() {
		if cfg.Observer != nil {
			cfg.Observer.DepthCapExceeded(DepthCapEvent{Start: start, End: end, Depth: depth})
		}
		return []geometry.Point{start, end}, nil
	}

	g, err := visgraph.Build(start, end, obstacles)
	if err != nil {
		return nil, err
	}

	path, ok, err := astar.Search(g, 0, 1)
	if err != nil {
		return nil, err
	}
	if !ok || len(path) == 2 {
		return []geometry.Point{start, end}, nil
	}

	points := make([]geometry.Point, len(path))
	for i, idx := range path {
		points[i] = g.Table.Points[idx]
	}

	route := []geometry.Point{points[0]}
	for i := 0; i < len(points)-1; i++ {
		segment, err := refine(points[i], points[i+1], obstacles, depth+1, cfg)
		if err != nil {
			return nil, err
		}
		route = append(route, segment[1:]...)
	}

	return route, nil
}
