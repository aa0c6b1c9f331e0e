// Package assert provides a single debug-only invariant check used across
// linarr to flag precondition violations (caller bugs) without paying for
// the check in release builds.
//
// Debug mode is enabled by setting the LINARR_DEBUG environment variable to
// any non-empty value before the process starts; the check happens once at
// package init and is cached, so Invariant itself never touches the
// environment on the hot path.
package assert

import "os"

var debug = os.Getenv("LINARR_DEBUG") != ""

// Invariant panics with msg if cond is false and debug mode is enabled.
// In release builds (debug mode off) it is a no-op: spec.md's error-handling
// design treats precondition violations as unspecified-but-not-crashing in
// release, and loud-failing assertions in debug.
func Invariant(cond bool, msg string) {
	if debug && !cond {
		panic("linarr: invariant violated: " + msg)
	}
}

// Debug reports whether debug-mode invariant checks are active.
func Debug() bool { return debug }
