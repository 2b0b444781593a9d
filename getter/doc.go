// Package getter normalizes "callable-like" specifiers into unary accessor
// functions, mirroring the interchangeable function / attribute-name /
// positional-index specifiers of Scala-style collection pipelines.
//
// A specifier may be:
//
//   - a function — used as-is (any unary shape is accepted, matched
//     directly for common signatures and via reflection otherwise),
//   - a string — field access by name on each element; works on struct
//     fields, zero-argument methods and map[string]any keys, and supports
//     dot-separated paths into nested values ("Address.City"),
//   - an int — positional access on each element; works on slices, arrays,
//     strings and integer-keyed maps, with negative indexes counting from
//     the end.
//
// [Resolve] returns [ErrNotCallable] for anything else. The accessors
// produced for string and int specifiers validate against each element at
// call time and panic with [ErrNoField] or [ErrNoIndex] when an element
// cannot satisfy the access, so misuse surfaces at the first element it is
// applied to.
package getter
