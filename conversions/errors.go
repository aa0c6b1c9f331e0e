package conversions

import "errors"

// Sentinel errors shared by every encoding in this package, mirroring
// spec.md §6.1's parser error kinds where they apply to in-memory
// decoding (as opposed to text parsing, which additionally carries line
// and token location — see conversions/io).
var (
	// ErrWrongLength is returned when an encoding's length does not
	// match what the target n requires (e.g. a Prüfer sequence that
	// isn't n-2 long).
	ErrWrongLength = errors.New("conversions: wrong encoding length")

	// ErrOutOfRange is returned when an encoding entry falls outside
	// its valid domain.
	ErrOutOfRange = errors.New("conversions: value out of range")

	// ErrWrongRootCount is returned when a head vector has zero or more
	// than one zero entry, or a level sequence does not start at 0.
	ErrWrongRootCount = errors.New("conversions: wrong number of roots")

	// ErrSelfLoop is returned when a head vector entry names itself as
	// its own parent.
	ErrSelfLoop = errors.New("conversions: self-loop in encoding")

	// ErrDisconnected is returned when a decoded structure fails to
	// form a single connected tree spanning all n vertices.
	ErrDisconnected = errors.New("conversions: decoded graph is disconnected")

	// ErrNotATree is returned by an encoder fed a non-tree.
	ErrNotATree = errors.New("conversions: input is not a tree")

	// ErrTooSmall is returned by encodings with a minimum n requirement
	// (Prüfer needs n>=2).
	ErrTooSmall = errors.New("conversions: n too small for this encoding")
)
