// Package properties implements spec.md §4.J: pure functions over a
// graph (and, where noted, an arrangement) — sum of edge lengths,
// crossing count, size_Q, expectation/variance of C and D under uniform
// random arrangement, degree moments, hubiness, head initial,
// tree diameter, bipartite coloring, tree centre, and tree centroid.
package properties
