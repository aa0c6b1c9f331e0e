// Package traverse provides a single generic breadth-first search driver
// over any adjacency function, a connectivity check built on top of it,
// and standalone cycle checks, per spec.md §4.E.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from a start
//     vertex, with three hooks: ShouldProcess skips a vertex,
//     ForEachNeighbor skips an edge, and OnVisit returning false ends
//     the search early.
//   - UseReverseEdges additionally relaxes predecessors for a directed
//     adjacency function — "tree rooted downward, traverse as undirected".
//   - IsTree(n, neighbors) checks connectivity by counting vertices
//     reached by one BFS from vertex 0 and comparing against n (spec.md
//     §4.E: connected ∧ m=n-1 ∧ acyclic, with the BFS count standing in
//     for the connectivity half of that conjunction).
//   - DetectCycleDirected/DetectCycleUndirected report whether a cycle
//     exists, using three-color DFS (directed) or parent-aware BFS
//     (undirected).
//
// Why a closure-based adjacency function instead of an interface
//
//	The teacher's bfs.BFS is parameterized over a concrete *core.Graph;
//	spec.md §9 asks for the generalization the teacher's own comments
//	anticipate ("a systems-language port should prefer generic
//	parameters... to avoid allocation in the hot path") — here, a
//	plain `func(int) []int` adjacency closure, which every graph/tree
//	type in this module can hand over with zero allocation.
package traverse
