// Package bibliography implements the optional citation-registration hook
// described in spec.md §6.5 and §9: a process-wide, append-only record of
// which published results an algorithm run relied on.
//
// Lifecycle: the registry starts empty, is never cleared, and is read-only
// after main returns. It is the single piece of hidden global state in
// linarr (spec.md §5), and unlike the rest of the core it is guarded by a
// mutex because external collaborators may call Register from multiple
// goroutines without coordinating among themselves.
package bibliography

import "sync"

var (
	mu      sync.Mutex
	entries = make(map[string]struct{})
)

// Register records that id was relied upon during the current process's
// execution. It never returns an error: a missing or duplicate id is a
// no-op, not a failure, so algorithm entry points can call it unconditionally
// without checking for this being a safe-to-omit diagnostic.
func Register(id string) {
	if id == "" {
		return
	}
	mu.Lock()
	entries[id] = struct{}{}
	mu.Unlock()
}

// Entries returns a snapshot of every id registered so far, in no particular
// order.
func Entries() []string {
	mu.Lock()
	defer mu.Unlock()
	out := make([]string, 0, len(entries))
	for id := range entries {
		out = append(out, id)
	}
	return out
}

// Known citation keys used by linarr's own algorithms (see spec.md for the
// \cite markers these correspond to).
const (
	Alemany2022a = "Alemany2022a" // projective/planar Dmin (AEF)
	Alemany2024a = "Alemany2024a" // projective/planar DMax
	Shiloach1979a = "Shiloach1979a"
	Esteban2017a  = "Esteban2017a" // correction to Shiloach1979a
	Chung1984a    = "Chung1984a"
	Nurse2018a    = "Nurse2018a"
	Nurse2019a    = "Nurse2019a"
	Alemany2020a  = "Alemany2020a" // expectation/variance of C
	Alonso1995a   = "Alonso1995a"  // Prufer decoding
	Pitler2013a   = "Pitler2013a"  // EC1
	Gomez2011a    = "Gomez2011a"   // WG1
	Aho1974a      = "Aho1974a"     // AHU isomorphism
)
