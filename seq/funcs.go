package seq

// This file contains the fully typed package-level generic functions.
//
// Go generics do not allow methods to introduce their own type parameters,
// so every operation that changes the element type (T → U) or constrains
// it (comparable keys, ordered sort keys, numeric sums) lives here as a
// stand-alone function over [Enumerable]. The specifier-taking methods on
// the containers delegate to these.

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Number is the constraint satisfied by the built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Map lazily applies fn to every element.
//
//	doubled := seq.Map(s, func(n int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](e Enumerable[T], fn func(T) U) *Seq[U] {
	return FromIter(func(yield func(U) bool) {
		for v := range e.Iter() {
			if !yield(fn(v)) {
				return
			}
		}
	})
}

// FlatMap lazily applies fn to every element and flattens the resulting
// slices one level, preserving per-element and per-group order.
//
//	words := seq.FlatMap(lines, func(s string) []string { return strings.Fields(s) })
func FlatMap[T, U any](e Enumerable[T], fn func(T) []U) *Seq[U] {
	return FromIter(func(yield func(U) bool) {
		for v := range e.Iter() {
			for _, u := range fn(v) {
				if !yield(u) {
					return
				}
			}
		}
	})
}

// Filter lazily retains the elements for which fn returns true.
func Filter[T any](e Enumerable[T], fn func(T) bool) *Seq[T] {
	return FromIter(func(yield func(T) bool) {
		for v := range e.Iter() {
			if fn(v) && !yield(v) {
				return
			}
		}
	})
}

// Take lazily yields the first n elements, then stops requesting from the
// upstream source.
func Take[T any](e Enumerable[T], n int) *Seq[T] {
	return FromIter(func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range e.Iter() {
			if !yield(v) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	})
}

// Drop consumes and discards up to n elements, then yields the remainder.
// A source with fewer than n elements yields nothing.
func Drop[T any](e Enumerable[T], n int) *Seq[T] {
	return FromIter(func(yield func(T) bool) {
		skipped := 0
		for v := range e.Iter() {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	})
}

// Last yields the final n elements in their original relative order,
// buffered through a bounded sliding window. Fewer than n elements in
// total yields all of them.
func Last[T any](e Enumerable[T], n int) *Seq[T] {
	return FromIter(func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		ring := make([]T, n)
		total := 0
		for v := range e.Iter() {
			ring[total%n] = v
			total++
		}
		kept := min(total, n)
		for i := 0; i < kept; i++ {
			if !yield(ring[(total-kept+i)%n]) {
				return
			}
		}
	})
}

// Chain lazily concatenates two sources, a then b.
func Chain[T any](a, b Enumerable[T]) *Seq[T] {
	return FromIter(func(yield func(T) bool) {
		for v := range a.Iter() {
			if !yield(v) {
				return
			}
		}
		for v := range b.Iter() {
			if !yield(v) {
				return
			}
		}
	})
}

// Zip combines two sources element-by-element into Pairs, lazily,
// stopping at the shorter of the two.
func Zip[A, B any](a Enumerable[A], b Enumerable[B]) *Seq[Pair[A, B]] {
	return FromIter(func(yield func(Pair[A, B]) bool) {
		next, stop := iter.Pull(b.Iter())
		defer stop()
		for v := range a.Iter() {
			w, ok := next()
			if !ok {
				return
			}
			if !yield(Pair[A, B]{First: v, Second: w}) {
				return
			}
		}
	})
}

// Fold strictly accumulates left-to-right from init. An empty source
// returns init.
//
//	sum := seq.Fold(s, 0, func(acc, n int) int { return acc + n })
func Fold[T, U any](e Enumerable[T], init U, fn func(U, T) U) U {
	acc := init
	for v := range e.Iter() {
		acc = fn(acc, v)
	}
	return acc
}

// Reduce strictly folds left-to-right using the first element as the
// seed. Returns [ErrEmptySequence] when the source is empty.
func Reduce[T any](e Enumerable[T], fn func(T, T) T) (T, error) {
	var acc T
	seeded := false
	for v := range e.Iter() {
		if !seeded {
			acc = v
			seeded = true
			continue
		}
		acc = fn(acc, v)
	}
	if !seeded {
		return acc, ErrEmptySequence
	}
	return acc, nil
}

// Sum strictly totals a numeric source.
func Sum[T Number](e Enumerable[T]) T {
	var total T
	for v := range e.Iter() {
		total += v
	}
	return total
}

// Float64s materializes a numeric source as a []float64.
func Float64s[T Number](e Enumerable[T]) []float64 {
	out := []float64{}
	for v := range e.Iter() {
		out = append(out, float64(v))
	}
	return out
}

// SortBy materializes the elements sorted ascending and stably by the key
// extracted by fn.
func SortBy[T any, K cmp.Ordered](e Enumerable[T], fn func(T) K) *List[T] {
	items := slices.Collect(e.Iter())
	sort.SliceStable(items, func(i, j int) bool { return fn(items[i]) < fn(items[j]) })
	return newList(items)
}

// Sort materializes the elements sorted ascending by their own value.
func Sort[T cmp.Ordered](e Enumerable[T]) *List[T] {
	return SortBy(e, func(v T) T { return v })
}

// Distinct materializes the unique elements, keeping first-occurrence
// order.
func Distinct[T comparable](e Enumerable[T]) *List[T] {
	seen := make(map[T]struct{})
	out := []T{}
	for v := range e.Iter() {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return newList(out)
}

// GroupBy maps each key extracted by fn to the List of elements sharing
// it, preserving every group's encounter order. Keys appear in
// first-occurrence order.
//
//	byDept := seq.GroupBy(employees, func(e Employee) string { return e.Dept })
func GroupBy[T any, K comparable](e Enumerable[T], fn func(T) K) *Dict[K, *List[T]] {
	d := NewDict[K, *List[T]]()
	for v := range e.Iter() {
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

// KeyBy maps each key extracted by fn to the single element carrying it.
// Returns [ErrDuplicateKey] when two elements share a key.
func KeyBy[T any, K comparable](e Enumerable[T], fn func(T) K) (*Dict[K, T], error) {
	d := NewDict[K, T]()
	for v := range e.Iter() {
		k := fn(v)
		if d.Has(k) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		d.Set(k, v)
	}
	return d, nil
}

// AggregateBy tracks one accumulator per key: the first element seen for a
// key seeds it via create, and add folds in every element mapping to that
// key, including the seeding one.
func AggregateBy[T any, K comparable, A any](e Enumerable[T], key func(T) K, create func(T) A, add func(A, T) A) *Dict[K, A] {
	d := NewDict[K, A]()
	for v := range e.Iter() {
		k := key(v)
		acc, ok := d.Get(k)
		if !ok {
			acc = create(v)
		}
		d.Set(k, add(acc, v))
	}
	return d
}

// FoldBy is [AggregateBy] with a constant seed for every key.
func FoldBy[T any, K comparable, A any](e Enumerable[T], key func(T) K, seed A, add func(A, T) A) *Dict[K, A] {
	return AggregateBy(e, key, func(T) A { return seed }, add)
}

// ReduceBy folds each key group pairwise: the first element with a key
// becomes the initial value, later ones merge via reducer(existing, elem).
func ReduceBy[T any, K comparable](e Enumerable[T], key func(T) K, reducer func(T, T) T) *Dict[K, T] {
	d := NewDict[K, T]()
	for v := range e.Iter() {
		k := key(v)
		if existing, ok := d.Get(k); ok {
			d.Set(k, reducer(existing, v))
		} else {
			d.Set(k, v)
		}
	}
	return d
}

// ValueCounts maps each distinct element to its occurrence count in one
// pass. Keys appear in first-occurrence order.
func ValueCounts[T comparable](e Enumerable[T]) *Dict[T, int] {
	d := NewDict[T, int]()
	for v := range e.Iter() {
		n, _ := d.Get(v)
		d.Set(v, n+1)
	}
	return d
}

// ToDict materializes a source of Pairs into a Dict. Later pairs win on
// key collision.
func ToDict[K comparable, V any](e Enumerable[Pair[K, V]]) *Dict[K, V] {
	d := NewDict[K, V]()
	for p := range e.Iter() {
		d.Set(p.First, p.Second)
	}
	return d
}

// Collect materializes any source into a mutable List.
func Collect[T any](e Enumerable[T]) *List[T] {
	return newList(slices.Collect(e.Iter()))
}

// Freeze materializes any source into an immutable FrozenList.
func Freeze[T any](e Enumerable[T]) *FrozenList[T] {
	return newFrozenList(slices.Collect(e.Iter()))
}

// MapValues returns a new Dict with every value replaced by fn(value),
// keys and their order unchanged.
func MapValues[K comparable, V, U any](d *Dict[K, V], fn func(V) U) *Dict[K, U] {
	out := NewDict[K, U]()
	d.Each(func(k K, v V) { out.Set(k, fn(v)) })
	return out
}
