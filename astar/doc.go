// Package astar implements an A*-style best-first search over a
// visgraph.Graph: the visibility graph's node 0 is always the source and
// node 1 is always the goal.
//
// Edge weight is the Euclidean distance between adjacent table points; the
// heuristic is the Euclidean distance from a node to the goal, which is
// both admissible and consistent on this graph (straight-line distance
// never overestimates the true shortest distance, and the triangle
// inequality holds), so the search never needs to re-open a finalized node.
//
// The search follows the same shape as a textbook Dijkstra implementation:
// a min-heap keyed on f = g + h, a "lazy decrease-key" strategy (push
// duplicates, skip stale pops via a visited flag), and a small runner
// struct holding per-call mutable state.
package astar

import "errors"

// ErrNodeOutOfRange indicates Source or Goal is not a valid index into the
// graph's node table.
var ErrNodeOutOfRange = errors.New("astar: node index out of range")
