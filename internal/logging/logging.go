// Package logging centralizes structured logging for linarr's algorithm
// packages behind github.com/rs/zerolog.
//
// By default the package-level logger is disabled (zerolog.Nop()), so
// calling Logger() on the hot path of the branch-and-bound or the treebank
// reader costs nothing when no caller has attached a sink. Callers that want
// diagnostics (e.g. CLI tools, test harnesses inspecting pruning decisions)
// call SetLogger once at startup.
package logging

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var current atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	current.Store(&nop)
}

// SetLogger installs l as the package-wide logger used by linarr's
// algorithm packages. Safe to call concurrently with Logger, but not
// intended to be toggled mid-algorithm.
func SetLogger(l zerolog.Logger) {
	current.Store(&l)
}

// Logger returns the currently installed logger. Returns a no-op logger if
// none has been set.
func Logger() *zerolog.Logger {
	return current.Load()
}
