package seq

import "errors"

// Sentinel errors returned by the collection operations.
var (
	// ErrEmptySequence is returned by Reduce when the sequence has no
	// elements and therefore no seed value.
	ErrEmptySequence = errors.New("seq: reduce of empty sequence")

	// ErrDuplicateKey is returned by KeyBy when two elements resolve to the
	// same key.
	ErrDuplicateKey = errors.New("seq: duplicate key")

	// ErrKeyOverlap is returned by Dict.Union when errorOnOverlap is set
	// and the key sets intersect.
	ErrKeyOverlap = errors.New("seq: overlapping keys")

	// ErrInvalidJoin is returned by Dict.Join for an unrecognized mode.
	ErrInvalidJoin = errors.New("seq: invalid join mode")

	// ErrNotIterable is raised (as a panic value) when ApplySeq or a
	// dynamic FlatMap receives a per-element result that cannot be
	// iterated.
	ErrNotIterable = errors.New("seq: value is not iterable")

	// ErrNotPair is raised (as a panic value) when ToDict encounters an
	// element that does not decompose into a key/value pair.
	ErrNotPair = errors.New("seq: value is not a key/value pair")
)
