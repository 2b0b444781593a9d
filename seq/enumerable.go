package seq

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"sort"

	"github.com/javadba/infixpy/getter"
)

// Enumerable is the minimal surface a container must provide to
// participate in the transformation protocol. [Seq], [List] and
// [FrozenList] all satisfy it; [Dict] exposes it through its Keys, Values
// and Items views.
//
// Accept Enumerable in your own functions so that callers can substitute
// any of the concrete containers.
type Enumerable[T any] interface {
	// Iter returns the element stream. For a Seq this consumes the
	// instance; for the eager containers it may be called repeatedly.
	Iter() iter.Seq[T]
}

// ops implements the chainable protocol once and is embedded by every
// iterable container, each of which supplies its own element source via
// the self back-reference.
//
// Methods that accept a per-element specifier resolve it through the
// getter package and panic with an error wrapping getter.ErrNotCallable
// when it is none of function / field name / index. The fully typed
// package-level functions are the error-free alternative.
type ops[T any] struct {
	self Enumerable[T]
}

// Map produces a lazy sequence of spec applied to each element.
func (o ops[T]) Map(spec any) *Seq[any] {
	return Map(o.self, mustResolve[T](spec))
}

// FlatMap applies spec to each element, expects an iterable result
// (slice, array, Enumerable), and flattens exactly one level.
func (o ops[T]) FlatMap(spec any) *Seq[any] {
	fn := mustResolve[T](spec)
	self := o.self
	return FromIter(func(yield func(any) bool) {
		for v := range self.Iter() {
			for u := range anySeqOf(fn(v)).Iter() {
				if !yield(u) {
					return
				}
			}
		}
	})
}

// Filter retains the elements for which spec resolves truthy.
func (o ops[T]) Filter(spec any) *Seq[T] {
	fn := mustResolve[T](spec)
	return Filter(o.self, func(v T) bool { return getter.Truthy(fn(v)) })
}

// Take yields the first n elements.
func (o ops[T]) Take(n int) *Seq[T] { return Take(o.self, n) }

// Drop discards the first n elements and yields the remainder.
// Fewer than n elements yields nothing.
func (o ops[T]) Drop(n int) *Seq[T] { return Drop(o.self, n) }

// Last yields the final n elements in their original relative order,
// or all of them when fewer than n exist.
func (o ops[T]) Last(n int) *Seq[T] { return Last(o.self, n) }

// Chain lazily concatenates other after this container's elements.
func (o ops[T]) Chain(other Enumerable[T]) *Seq[T] { return Chain(o.self, other) }

// Enumerate yields (index, element) pairs, zero-based.
func (o ops[T]) Enumerate() *Seq[Pair[int, T]] {
	self := o.self
	return FromIter(func(yield func(Pair[int, T]) bool) {
		i := 0
		for v := range self.Iter() {
			if !yield(Pair[int, T]{First: i, Second: v}) {
				return
			}
			i++
		}
	})
}

// Each calls fn for every element.
func (o ops[T]) Each(fn func(T)) {
	for v := range o.self.Iter() {
		fn(v)
	}
}

// ForEach is Each with a dynamic specifier.
func (o ops[T]) ForEach(spec any) {
	fn := mustResolve[T](spec)
	for v := range o.self.Iter() {
		fn(v)
	}
}

// Fold accumulates left-to-right from init. Never fails on empty input.
func (o ops[T]) Fold(init any, spec any) any {
	fn := mustResolveBinary(spec)
	acc := init
	for v := range o.self.Iter() {
		acc = fn(acc, v)
	}
	return acc
}

// Reduce folds left-to-right using the first element as the seed.
// Returns ErrEmptySequence when there is no element to seed from.
func (o ops[T]) Reduce(spec any) (T, error) {
	return Reduce(o.self, resolveReducer[T](spec))
}

// Sum totals the float64 value extracted by fn. Use the package-level
// [Sum] for numeric element types.
func (o ops[T]) Sum(fn func(T) float64) float64 {
	var total float64
	for v := range o.self.Iter() {
		total += fn(v)
	}
	return total
}

// Count iterates and returns the total number of elements.
func (o ops[T]) Count() int {
	n := 0
	for range o.self.Iter() {
		n++
	}
	return n
}

// ValueCounts maps each distinct element to its occurrence count,
// counting in one pass. Keys appear in first-occurrence order.
func (o ops[T]) ValueCounts() *Dict[any, int] {
	d := NewDict[any, int]()
	for v := range o.self.Iter() {
		n, _ := d.Get(v)
		d.Set(v, n+1)
	}
	return d
}

// SortBy materializes the elements sorted ascending and stably by the
// resolved key. Keys are ordered with getter.Compare.
func (o ops[T]) SortBy(spec any) *List[T] {
	fn := mustResolve[T](spec)
	items := slices.Collect(o.self.Iter())
	sort.SliceStable(items, func(i, j int) bool {
		return getter.Compare(fn(items[i]), fn(items[j])) < 0
	})
	return newList(items)
}

// Sort is SortBy with the identity key.
func (o ops[T]) Sort() *List[T] {
	return o.SortBy(func(v T) any { return v })
}

// Distinct materializes the unique elements, keeping first-occurrence
// order. Elements must be usable as map keys.
func (o ops[T]) Distinct() *List[T] {
	seen := make(map[any]struct{})
	out := []T{}
	for v := range o.self.Iter() {
		k := any(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return newList(out)
}

// GroupBy maps each resolved key to the List of elements sharing it,
// preserving every group's encounter order.
func (o ops[T]) GroupBy(spec any) *Dict[any, *List[T]] {
	fn := mustResolve[T](spec)
	d := NewDict[any, *List[T]]()
	for v := range o.self.Iter() {
		k := fn(v)
		g, ok := d.Get(k)
		if !ok {
			g = NewList[T]()
			d.Set(k, g)
		}
		g.Append(v)
	}
	return d
}

// KeyBy maps each resolved key to the single element carrying it.
// Returns ErrDuplicateKey when two elements resolve to the same key.
func (o ops[T]) KeyBy(spec any) (*Dict[any, T], error) {
	fn := mustResolve[T](spec)
	d := NewDict[any, T]()
	for v := range o.self.Iter() {
		k := fn(v)
		if d.Has(k) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		d.Set(k, v)
	}
	return d, nil
}

// AggregateBy tracks one accumulator per resolved key: the first element
// with a key seeds it via create, and add folds in every element mapping
// to that key, including the seeding one.
func (o ops[T]) AggregateBy(key, create, add any) *Dict[any, any] {
	keyFn := mustResolve[T](key)
	createFn := mustResolve[T](create)
	addFn := mustResolveBinary(add)
	d := NewDict[any, any]()
	for v := range o.self.Iter() {
		k := keyFn(v)
		acc, ok := d.Get(k)
		if !ok {
			acc = createFn(v)
		}
		d.Set(k, addFn(acc, v))
	}
	return d
}

// FoldBy is AggregateBy with a constant seed for every key.
func (o ops[T]) FoldBy(key any, seed any, add any) *Dict[any, any] {
	return o.AggregateBy(key, func(T) any { return seed }, add)
}

// ReduceBy folds the elements of each key group pairwise: the first
// element with a key becomes the initial value, later ones are merged via
// reducer(existing, element).
func (o ops[T]) ReduceBy(key, reducer any) *Dict[any, T] {
	keyFn := mustResolve[T](key)
	red := resolveReducer[T](reducer)
	d := NewDict[any, T]()
	for v := range o.self.Iter() {
		k := keyFn(v)
		if existing, ok := d.Get(k); ok {
			d.Set(k, red(existing, v))
		} else {
			d.Set(k, v)
		}
	}
	return d
}

// Apply passes the whole container (not its elements) to fn.
func (o ops[T]) Apply(fn func(Enumerable[T]) any) any {
	return fn(o.self)
}

// ApplySeq is Apply with the result re-wrapped as a lazy sequence;
// the result must be iterable.
func (o ops[T]) ApplySeq(fn func(Enumerable[T]) any) *Seq[any] {
	return anySeqOf(fn(o.self))
}

// ToList materializes into a mutable List.
func (o ops[T]) ToList() *List[T] { return Collect(o.self) }

// ToFrozenList materializes into an immutable FrozenList.
func (o ops[T]) ToFrozenList() *FrozenList[T] { return Freeze(o.self) }

// ToDict materializes pair-shaped elements ([Pair], two-field structs,
// two-element slices) into a Dict. Later pairs win on key collision.
func (o ops[T]) ToDict() *Dict[any, any] {
	d := NewDict[any, any]()
	for v := range o.self.Iter() {
		k, val := splitPair(any(v))
		d.Set(k, val)
	}
	return d
}

// Float64s materializes the numeric form of every element, in order.
func (o ops[T]) Float64s(fn func(T) float64) []float64 {
	out := []float64{}
	for v := range o.self.Iter() {
		out = append(out, fn(v))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Specifier plumbing
// ─────────────────────────────────────────────────────────────────────────────

func mustResolve[T any](spec any) func(T) any {
	fn, err := getter.Resolve[T](spec)
	if err != nil {
		panic(err)
	}
	return fn
}

func mustResolveBinary(spec any) func(any, any) any {
	fn, err := getter.ResolveBinary(spec)
	if err != nil {
		panic(err)
	}
	return fn
}

func resolveReducer[T any](spec any) func(T, T) T {
	if fn, ok := spec.(func(T, T) T); ok {
		return fn
	}
	bin := mustResolveBinary(spec)
	return func(a, b T) T { return bin(a, b).(T) }
}

// anySeqOf adapts an arbitrary iterable value into a *Seq[any].
func anySeqOf(v any) *Seq[any] {
	switch x := v.(type) {
	case *Seq[any]:
		return x
	case Enumerable[any]:
		return FromIter(x.Iter())
	case []any:
		return From(x)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return FromIter(func(yield func(any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		})
	case reflect.String:
		s := rv.String()
		return FromIter(func(yield func(any) bool) {
			for i := 0; i < len(s); i++ {
				if !yield(s[i : i+1]) {
					return
				}
			}
		})
	}
	panic(fmt.Errorf("%w: %T", ErrNotIterable, v))
}

// splitPair decomposes a pair-shaped value into its key and value.
func splitPair(v any) (any, any) {
	if p, ok := v.(keyValuer); ok {
		return p.kv()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 2 {
			return rv.Index(0).Interface(), rv.Index(1).Interface()
		}
	case reflect.Struct:
		if rv.NumField() == 2 && rv.Field(0).CanInterface() && rv.Field(1).CanInterface() {
			return rv.Field(0).Interface(), rv.Field(1).Interface()
		}
	}
	panic(fmt.Errorf("%w: %T", ErrNotPair, v))
}
