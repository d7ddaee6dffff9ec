// Package geometry provides exact 2D computational-geometry predicates over
// Points, Segments, and Polygons: orientation, segment intersection
// classification, segment-versus-polygon classification, and point-in-polygon
// containment.
//
// All predicates are deterministic and side-effect free. They give
// consistent answers on shared inputs regardless of caller, which is the
// property the visibility-graph builder relies on when it asks the same
// question about the same chord from several different polygons in a row.
//
// Coordinates are exact float64 values supplied by the caller. Collinearity
// and orientation tests are exact only to the extent the caller's
// coordinates are exactly representable; callers working with irrational or
// heavily-computed coordinates should expect the usual floating-point
// caveats at near-collinear configurations.
package geometry

import "errors"

// Sentinel errors for malformed geometric inputs.
var (
	// ErrDegeneratePolygon indicates a polygon with fewer than 3 vertices,
	// or with two consecutive (cyclically) coincident vertices.
	ErrDegeneratePolygon = errors.New("geometry: degenerate polygon")

	// ErrDegenerateSegment indicates a segment whose two endpoints coincide,
	// e.g. a visibility query whose start and end points are the same
	// location.
	ErrDegenerateSegment = errors.New("geometry: degenerate segment")
)
