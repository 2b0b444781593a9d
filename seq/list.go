package seq

import (
	"iter"
	"reflect"
	"slices"

	"github.com/davecgh/go-spew/spew"
)

// List is an eager, appendable, repeatedly-iterable ordered container.
// It participates in the full transformation protocol; unlike [Seq] it may
// feed any number of downstream chains.
type List[T any] struct {
	ops[T]
	items []T
}

// NewList creates a List from a variadic list of items (copied).
func NewList[T any](items ...T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return newList(dst)
}

// ListFrom creates a List from a slice (the slice is copied).
func ListFrom[T any](items []T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return newList(dst)
}

// newList wraps items without copying and wires the protocol mixin.
func newList[T any](items []T) *List[T] {
	l := &List[T]{items: items}
	l.ops = ops[T]{self: l}
	return l
}

// Iter returns the element stream. Safe to call repeatedly.
func (l *List[T]) Iter() iter.Seq[T] {
	return slices.Values(l.items)
}

// Len returns the number of items without iterating.
func (l *List[T]) Len() int { return len(l.items) }

// All returns a copy of the underlying slice.
func (l *List[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Get returns the item at index together with a presence flag.
func (l *List[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// Append adds items at the end, mutating the List.
func (l *List[T]) Append(items ...T) {
	l.items = append(l.items, items...)
}

// Reverse returns a lazy view over the items in reverse order.
func (l *List[T]) Reverse() *Seq[T] {
	return FromIter(func(yield func(T) bool) {
		for i := len(l.items) - 1; i >= 0; i-- {
			if !yield(l.items[i]) {
				return
			}
		}
	})
}

// Copy returns an independent shallow copy.
func (l *List[T]) Copy() *List[T] {
	return ListFrom(l.items)
}

// DeepCopy returns an independent copy with contained slices, maps,
// pointers and structs recursively duplicated.
func (l *List[T]) DeepCopy() *List[T] {
	items := make([]T, len(l.items))
	for i, v := range l.items {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			items[i] = v
			continue
		}
		items[i] = deepCopyValue(rv).Interface().(T)
	}
	return newList(items)
}

// ToList returns the receiver; a List is already realized.
func (l *List[T]) ToList() *List[T] { return l }

// Dump writes a deep diagnostic rendering of the items to stdout and
// returns l for chaining.
func (l *List[T]) Dump() *List[T] {
	spew.Dump(l.items)
	return l
}

// String renders the items as "[a,b,c]". It implements fmt.Stringer.
func (l *List[T]) String() string {
	return l.ListRepr()
}
