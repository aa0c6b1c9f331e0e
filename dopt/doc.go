// Package dopt implements spec.md §4.I's edge-length optimizers:
// projective (rooted tree), planar (free tree, via centroid reduction
// to projective), bipartite (free tree), and unconstrained minimum/
// maximum (free tree). Every optimizer returns a Result{Cost,
// Arrangement}; Options.MakeArrangement controls whether the witnessing
// arrangement is materialized.
package dopt
