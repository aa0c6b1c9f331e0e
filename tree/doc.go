// Package tree implements the tree-specific invariants of spec.md §3/§4.C:
// acyclicity, a capped edge count (n-1), rooted orientation, and cached
// subtree sizes.
//
// A Tree wraps a *graph.Graph and rejects any edge addition that would
// create a cycle or raise the edge count above n-1 — enforced with a
// disjoint-set-union structure, the same union-find-with-path-compression
// idiom the teacher's prim_kruskal package uses to build a spanning tree
// one non-cycle-forming edge at a time, here turned around to reject
// cycle-forming edges instead of just skipping them during MST
// construction.
//
// A RootedTree additionally orients every edge away from a distinguished
// root (an arborescence) and caches, on demand, the size of the subtree
// rooted at every vertex; the cache is invalidated by any mutation, the
// same pattern the teacher's core.Graph uses for its normalized-adjacency
// cache.
package tree
