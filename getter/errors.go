package getter

import "errors"

// Sentinel errors reported by specifier resolution and the produced
// accessors.
var (
	// ErrNotCallable is returned by Resolve and ResolveBinary when the
	// specifier is none of function / field name / index.
	ErrNotCallable = errors.New("getter: specifier is not callable")

	// ErrNoField is raised (as a panic value) when an element has no field,
	// method or map key with the requested name.
	ErrNoField = errors.New("getter: no such field")

	// ErrNoIndex is raised (as a panic value) when an element cannot be
	// indexed or the index is out of range.
	ErrNoIndex = errors.New("getter: no such index")
)
