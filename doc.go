// Package linarr (lal) is your in-memory toolkit for the linear
// arrangement of graphs: placing a tree's vertices on a line and
// measuring, classifying, and optimizing the result.
//
// 🚀 What is linarr?
//
//	A modern, dependency-embracing library that brings together:
//
//	  • Core primitives: build graphs and trees, compose arrangements
//	  • Metrics: edge-length sums, crossing numbers, their exact and
//	    expected-value statistics
//	  • Classification: tree shapes, syntactic-dependency-tree classes,
//	    AHU rooted/free-tree isomorphism
//	  • Optimization: exact minimum/maximum edge-length arrangements
//	    under projective, planar, bipartite, and unconstrained
//	    constraints
//
// ✨ Why choose linarr?
//
//   - Exact by default — every statistic and optimum is computed
//     exactly (arbitrary-precision rationals, branch-and-bound search),
//     never sampled or approximated unless a function's doc says so
//   - Pure Go — no cgo
//   - Explicit errors — sentinel errors and typed options, no panics on
//     ordinary misuse
//
// Under the hood, everything is organized under subpackages:
//
//	graph/, tree/         — fundamental Graph, Tree, RootedTree types
//	arrangement/          — the vertex<->position bijection every metric
//	                         and optimizer operates over
//	crossings/, properties/ — crossing-number algorithms and closed-form
//	                         statistics (D, C, hubiness, MHD, ...)
//	classify/, isomorphism/ — tree-shape classification and AHU
//	                         isomorphism testing
//	dopt/                 — exact edge-length optimizers
//	conversions/, generate/, linarrio/ — encodings, tree generation, and
//	                         file I/O
//
// Quick ASCII example, a star on 4 vertices arranged with its hub first:
//
//	position: 0  1  2  3
//	vertex:   0  1  2  3
//	edges:  0-1 0-2 0-3 -> D = 1+2+3 = 6
//
// Dive into SPEC_FULL.md and DESIGN.md for the full design rationale.
package linarr
