// Package crossings implements the four crossing-counting algorithms of
// spec.md §4.H over a graph and an arrangement: BruteForce, Dynamic
// Programming, Ladder, and StackBased. Each exposes an Exact and an
// UpperBounded entry point; UpperBounded may short-circuit once the
// running count is proven to exceed the caller's threshold.
//
// Two edges (s,t),(u,v) cross under π iff, taking s,t ordered so
// π(s)<π(t) and u,v ordered so π(u)<π(v), their positions interleave:
// π(s)<π(u)<π(t)<π(v) or the symmetric pattern with s/u swapped.
package crossings
