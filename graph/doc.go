// Package graph implements the arrangement-aware graph substrate of
// spec.md §4.B: directed and undirected graphs over dense vertex ids
// [0,n), with efficient neighbor access, edge mutation, degree queries,
// and an optional normalized (sorted-adjacency) cache.
//
// What
//
//   - Graph: undirected, simple (no self-loops, no parallel edges).
//   - DirectedGraph: maintains both out- and in-adjacency per vertex.
//   - Vertices are identified by int in [0,n); Graph is fixed-size after
//     construction (NewGraph(n)) — unlike the teacher's string-keyed,
//     dynamically-growing vertex catalog, linarr's graphs always arise
//     from a known vertex count (a tree, a treebank record, a generator),
//     so the substrate is sized once and mutated by edges only.
//
// Concurrency
//
//	Per spec.md §5, Graph performs no internal locking. Concurrent
//	read-only calls on distinct Graph values are always safe; concurrent
//	calls on the same Graph are safe only when every one of them is
//	read-only. Callers that mutate a shared Graph from multiple
//	goroutines must synchronize externally.
package graph
