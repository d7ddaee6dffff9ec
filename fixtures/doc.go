// Package fixtures generates deterministic obstacle-world test data:
// simple shapes (squares, triangles), a concentric-ring maze, and a chain
// of thin spike obstacles.
//
// Every generator here is a pure function of its arguments — there is no
// math/rand source threaded through, the same nil-RNG-means-deterministic
// convention graph builders elsewhere in this style use: generation is
// fully deterministic because obstacle coordinates here are derived
// directly from the caller's parameters, not sampled.
package fixtures
