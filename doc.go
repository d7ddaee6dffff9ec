// Package dvrp2d plans obstacle-avoiding drone delivery routes over a flat
// 2D world of polygonal buildings.
//
// geometry provides the exact predicates (orientation, segment/segment and
// segment/polygon intersection, point-in-polygon) everything else is built
// on. visgraph builds a visibility graph for one start/end/obstacle query,
// astar searches it, and planner's Plan facade ties them together with a
// recursive refiner that re-validates each provisional hop against the
// full obstacle set. route validates a finished polyline for feasibility
// and safety and reports efficiency analytics. fixtures generates
// deterministic obstacle layouts for tests and examples.
package dvrp2d
