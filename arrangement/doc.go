// Package arrangement implements the Arrangement entity of spec.md §3: a
// bijection π between vertices [0,n) and positions [0,n), stored as two
// parallel arrays kept in sync, with O(1) lookup in both directions.
//
// A zero-length Arrangement is the sentinel "identity arrangement of
// whatever graph I accompany" per spec.md §3; IsIdentitySentinel reports
// this, and every consumer package (crossings, dopt, properties) treats a
// sentinel the same as an explicit Identity(n).
package arrangement
