// Package visgraph builds a visibility graph: an arena of points (the
// "node table") plus an int-indexed adjacency list, constructed fresh for a
// single start/end/obstacle-set query and discarded when the caller is done
// with it.
//
// Unlike a long-lived, mutex-protected graph meant to be mutated from many
// goroutines over its lifetime, a Graph here is built once by Build and then
// only read — there is no shared mutable state across calls, so no locking
// is needed. Node identity is a plain array index ("arena+index layout"),
// not a string ID with a back-referencing object graph.
package visgraph
