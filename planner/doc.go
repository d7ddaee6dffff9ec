// Package planner is the drone routing engine's public entry point: the
// single `Plan` facade, built on top of visgraph and astar, plus the
// recursive route refiner that re-validates each provisional edge against
// the full obstacle universe.
//
// Plan is total: every syntactically valid input produces a polyline.
// Degenerate cases — start equal to end, no path through the relevant
// obstacles, recursion depth exceeded — are absorbed into fallback
// polylines rather than surfaced as errors; only a malformed obstacle
// polygon is rejected up front.
//
// Like the packages it is built from, Plan performs no I/O: the optional
// Observer hook (see Option) is the only seam for reporting diagnostics to
// a host application, in the same style as an OnVisit/OnEnqueue-style
// search callback.
package planner
