// Package conversions implements the bijective tree encodings of
// spec.md §4.G / §6.1-§6.3: head vector, Prüfer sequence, level
// sequence, and edge list, each with a ToX/FromX pair of pure
// functions converting between the encoding and a tree.RootedTree or
// tree.Tree.
//
// File-format parsing (with structured, located errors) lives in the
// conversions/io subpackage; this package is concerned only with the
// in-memory encoding/decoding algorithms themselves.
package conversions
