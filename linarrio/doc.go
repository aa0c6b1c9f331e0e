// Package linarrio provides file-based wrappers around conversions/io's
// in-memory parsers: open a path, parse its contents, decode into the
// tree type the caller asked for. The subpackage gonumadapt exposes a
// linarr graph/tree as a gonum/graph.Graph for visualization or topology
// routines outside this module.
package linarrio
