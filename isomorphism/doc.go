// Package isomorphism implements spec.md §4.L's two-phase isomorphism
// test: a constant-invariant fast rejection (FastNonIso) and, when that
// is inconclusive, the AHU canonical-name algorithm for rooted trees
// (CanonicalName), extended to free trees by rooting at the tree's
// centre (or comparing both, when there are two).
package isomorphism
