package seq

import (
	"iter"
	"slices"
)

// FrozenList is an eager, repeatedly-iterable ordered container with
// snapshot semantics: the element sequence is fixed at construction and
// never changes afterwards.
type FrozenList[T any] struct {
	ops[T]
	items []T
}

// FrozenFrom creates a FrozenList holding a snapshot of the slice.
func FrozenFrom[T any](items []T) *FrozenList[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return newFrozenList(dst)
}

func newFrozenList[T any](items []T) *FrozenList[T] {
	f := &FrozenList[T]{items: items}
	f.ops = ops[T]{self: f}
	return f
}

// Iter returns the element stream. Safe to call repeatedly.
func (f *FrozenList[T]) Iter() iter.Seq[T] {
	return slices.Values(f.items)
}

// Len returns the number of items without iterating.
func (f *FrozenList[T]) Len() int { return len(f.items) }

// All returns a copy of the underlying snapshot.
func (f *FrozenList[T]) All() []T {
	out := make([]T, len(f.items))
	copy(out, f.items)
	return out
}

// Get returns the item at index together with a presence flag.
func (f *FrozenList[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(f.items) {
		return zero, false
	}
	return f.items[index], true
}

// Reverse returns a lazy view over the items in reverse order.
func (f *FrozenList[T]) Reverse() *Seq[T] {
	return FromIter(func(yield func(T) bool) {
		for i := len(f.items) - 1; i >= 0; i-- {
			if !yield(f.items[i]) {
				return
			}
		}
	})
}

// ToFrozenList returns the receiver; freezing is idempotent.
func (f *FrozenList[T]) ToFrozenList() *FrozenList[T] { return f }

// String renders the items as "[a,b,c]". It implements fmt.Stringer.
func (f *FrozenList[T]) String() string {
	return f.ListRepr()
}
