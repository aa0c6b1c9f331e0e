// Package iterators implements the edge iterator E and the independent
// edge-pair iterator Q of spec.md §4.F, §4.J ("size_Q").
//
// Both are pull-style over a pre-built slice (EdgeIter.Next returns
// (Edge, bool), PairIter.Next returns (Edge, Edge, bool)),
// grounded on the teacher's matrix package converter idiom of
// materializing once and iterating by index rather than yielding through
// a channel: spec.md §5 forbids blocking/suspending operations, so no
// iterator in this module can hand back a channel.
package iterators
