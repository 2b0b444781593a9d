// Package seq provides Scala/Spark-inspired chained operations over
// arbitrary sequences of values: a lazy, single-pass [Seq], eager ordered
// containers ([List], [FrozenList]) and an insertion-ordered key/value
// [Dict] with relational merge operations.
//
// # Creating a sequence
//
//	s := seq.New(1, 2, 3, 4, 5)
//	s := seq.From(values)            // wraps the slice, taking ownership
//	s := seq.Range(0, 10, 1)
//	s := seq.FromChan(ch)
//
// # Method chaining
//
//	result := seq.Range(1, 10, 1).
//	    Map(func(n int) int { return n * 2 }).
//	    Filter(func(n int) bool { return n > 6 }).
//	    ToList()
//
// Every transformation on a Seq is lazy: it returns a new Seq describing
// one more pipeline step, and nothing is computed until the chain is
// materialized (ToList, ToFrozenList, ToDict, Count, Fold, ...).
//
// # Single-pass semantics
//
// A Seq may be fully traversed exactly once. The first traversal releases
// the underlying source so earlier pipeline stages can be collected while
// later stages still run. Iterating again logs a warning through [Log] and
// yields nothing. Materialize into a [List] or [FrozenList] when repeated
// iteration is needed; [Seq.Tee] is the one sanctioned way to peek at a
// pipeline and keep it consumable.
//
// # Callable specifiers
//
// Methods that accept a per-element transformation take it as an untyped
// specifier resolved through [github.com/javadba/infixpy/getter]: a
// function, a field-name string or a positional index are interchangeable:
//
//	users.Map("Name")        // field access
//	rows.Map(0)              // first column
//	nums.Filter(func(n int) bool { return n%2 == 0 })
//
// An unresolvable specifier panics with an error wrapping
// getter.ErrNotCallable at the call that supplied it.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// specifier-taking methods that change the element type return Seq[any],
// and fully typed equivalents are exposed as package-level functions:
//
//	// Method-based (returns *Seq[any]):
//	s.Map(func(n int) int { return n * 2 })
//
//	// Package-level (returns *Seq[string], fully typed):
//	seq.Map(s, func(n int) string { return strconv.Itoa(n) })
//
// Package-level functions: [Map], [FlatMap], [Filter], [Fold], [Reduce],
// [GroupBy], [KeyBy], [AggregateBy], [FoldBy], [ReduceBy], [ValueCounts],
// [SortBy], [Sort], [Distinct], [Take], [Drop], [Last], [Chain], [Zip],
// [Sum], [ToDict], [Collect], [Freeze].
package seq
