package seq

import (
	"fmt"
	"slices"
	"strings"
)

// Dict is an eager key-to-value container with unique keys and
// insertion-ordered iteration. It wraps a plain Go map plus a key list
// rather than embedding one, so the exposed surface is exactly the
// extended contract: lazy key/value/item views, per-value mapping, union
// and relational join.
type Dict[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// Join modes accepted by [Dict.Join].
const (
	JoinInner = "inner"
	JoinOuter = "outer"
	JoinLeft  = "left"
	JoinRight = "right"
)

// JoinRow is one row of a [Dict.Join] result. HasLeft and HasRight mark
// which sides matched; the unmatched side holds the zero value.
type JoinRow[K comparable, V any] struct {
	Key      K
	Left     V
	Right    V
	HasLeft  bool
	HasRight bool
}

// NewDict creates an empty Dict.
func NewDict[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{values: make(map[K]V)}
}

// DictFrom creates a Dict from a Go map. Key order is unspecified, as the
// source map's is.
func DictFrom[K comparable, V any](m map[K]V) *Dict[K, V] {
	d := NewDict[K, V]()
	for k, v := range m {
		d.Set(k, v)
	}
	return d
}

// DictOf creates a Dict from key/value pairs, in order. Later pairs win
// on key collision.
func DictOf[K comparable, V any](pairs ...Pair[K, V]) *Dict[K, V] {
	d := NewDict[K, V]()
	for _, p := range pairs {
		d.Set(p.First, p.Second)
	}
	return d
}

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int { return len(d.keys) }

// Get returns the value for k together with a presence flag.
func (d *Dict[K, V]) Get(k K) (V, bool) {
	v, ok := d.values[k]
	return v, ok
}

// GetOr returns the value for k, or def when k is absent.
func (d *Dict[K, V]) GetOr(k K, def V) V {
	if v, ok := d.values[k]; ok {
		return v
	}
	return def
}

// Set writes v under k, keeping k's original position when it already
// exists and appending it otherwise.
func (d *Dict[K, V]) Set(k K, v V) {
	if _, ok := d.values[k]; !ok {
		d.keys = append(d.keys, k)
	}
	d.values[k] = v
}

// Has reports whether k is present.
func (d *Dict[K, V]) Has(k K) bool {
	_, ok := d.values[k]
	return ok
}

// Delete removes k and its value. Removing an absent key is a no-op.
func (d *Dict[K, V]) Delete(k K) {
	if _, ok := d.values[k]; !ok {
		return
	}
	delete(d.values, k)
	if i := slices.Index(d.keys, k); i >= 0 {
		d.keys = slices.Delete(d.keys, i, i+1)
	}
}

// Each calls fn(key, value) for every entry in insertion order.
func (d *Dict[K, V]) Each(fn func(K, V)) {
	for _, k := range d.keys {
		fn(k, d.values[k])
	}
}

// Keys returns the keys as a new lazy sequence, in insertion order.
func (d *Dict[K, V]) Keys() *Seq[K] {
	return From(slices.Clone(d.keys))
}

// Values returns the values as a new lazy sequence, in key order.
func (d *Dict[K, V]) Values() *Seq[V] {
	keys := slices.Clone(d.keys)
	return FromIter(func(yield func(V) bool) {
		for _, k := range keys {
			if !yield(d.values[k]) {
				return
			}
		}
	})
}

// Items returns the entries as a new lazy sequence of Pairs, in key order.
func (d *Dict[K, V]) Items() *Seq[Pair[K, V]] {
	keys := slices.Clone(d.keys)
	return FromIter(func(yield func(Pair[K, V]) bool) {
		for _, k := range keys {
			if !yield(Pair[K, V]{First: k, Second: d.values[k]}) {
				return
			}
		}
	})
}

// MapValues returns a new Dict with every value replaced by the resolved
// spec applied to it, keys and their order unchanged. For a typed result
// use the package-level [MapValues].
func (d *Dict[K, V]) MapValues(spec any) *Dict[K, any] {
	fn := mustResolve[V](spec)
	out := NewDict[K, any]()
	d.Each(func(k K, v V) { out.Set(k, fn(v)) })
	return out
}

// Union merges d with other into a new Dict; other's values win on key
// collision while the colliding key keeps its original position. With
// errorOnOverlap set, any intersection of the key sets yields
// [ErrKeyOverlap] reporting how many keys overlap.
func (d *Dict[K, V]) Union(other *Dict[K, V], errorOnOverlap bool) (*Dict[K, V], error) {
	if errorOnOverlap {
		overlap := 0
		for _, k := range other.keys {
			if d.Has(k) {
				overlap++
			}
		}
		if overlap > 0 {
			return nil, fmt.Errorf("%w: %d common keys when none were expected", ErrKeyOverlap, overlap)
		}
	}
	out := d.Copy()
	other.Each(func(k K, v V) { out.Set(k, v) })
	return out, nil
}

// Join relates d (the left side) with other (the right side) over their
// key sets:
//
//   - [JoinInner]: keys present on both sides,
//   - [JoinOuter]: keys present on either side,
//   - [JoinLeft]: d's keys,
//   - [JoinRight]: other's keys.
//
// The result is a lazy sequence of [JoinRow]s; unmatched sides are marked
// through the row's presence flags. Any other mode yields [ErrInvalidJoin].
func (d *Dict[K, V]) Join(other *Dict[K, V], how string) (*Seq[JoinRow[K, V]], error) {
	var keys []K
	switch how {
	case JoinInner:
		for _, k := range d.keys {
			if other.Has(k) {
				keys = append(keys, k)
			}
		}
	case JoinOuter:
		keys = slices.Clone(d.keys)
		for _, k := range other.keys {
			if !d.Has(k) {
				keys = append(keys, k)
			}
		}
	case JoinLeft:
		keys = slices.Clone(d.keys)
	case JoinRight:
		keys = slices.Clone(other.keys)
	default:
		return nil, fmt.Errorf("%w: %q (must be inner, outer, left or right)", ErrInvalidJoin, how)
	}
	return FromIter(func(yield func(JoinRow[K, V]) bool) {
		for _, k := range keys {
			row := JoinRow[K, V]{Key: k}
			row.Left, row.HasLeft = d.Get(k)
			row.Right, row.HasRight = other.Get(k)
			if !yield(row) {
				return
			}
		}
	}), nil
}

// ToMap returns the entries as a plain Go map (copied).
func (d *Dict[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

// Copy returns an independent shallow copy preserving key order.
func (d *Dict[K, V]) Copy() *Dict[K, V] {
	out := NewDict[K, V]()
	d.Each(func(k K, v V) { out.Set(k, v) })
	return out
}

// String renders the entries as "{k: v, ...}" in insertion order.
// It implements fmt.Stringer.
func (d *Dict[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", k, d.values[k])
	}
	b.WriteByte('}')
	return b.String()
}
