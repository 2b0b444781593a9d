package seq

import (
	"iter"
	"slices"
)

// Seq is a lazy, single-pass wrapper around an arbitrary element source.
//
// Every transformation returns a new Seq describing one more pipeline
// step; nothing is computed until the chain is materialized or reduced.
// A Seq owns its source exclusively: the first full traversal consumes it
// and releases the reference, so a second traversal yields no elements
// (and logs a warning through [Log]). Use [List] or [FrozenList] for
// realized sequences that can be iterated repeatedly.
type Seq[T any] struct {
	ops[T]
	src iter.Seq[T]
	ran bool
}

// New creates a Seq over a variadic list of items.
func New[T any](items ...T) *Seq[T] {
	return From(items)
}

// From creates a Seq over a slice. The slice is not copied; the Seq takes
// ownership of it for the duration of its single traversal.
func From[T any](items []T) *Seq[T] {
	return FromIter(slices.Values(items))
}

// FromIter wraps a raw iterator as a Seq.
func FromIter[T any](src iter.Seq[T]) *Seq[T] {
	s := &Seq[T]{src: src}
	s.ops = ops[T]{self: s}
	return s
}

// FromChan creates a Seq draining a channel. The traversal ends when the
// channel is closed.
func FromChan[T any](ch <-chan T) *Seq[T] {
	return FromIter(func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	})
}

// Range creates a Seq of integers from start (inclusive) to stop
// (exclusive), advancing by step. A negative step counts down.
func Range(start, stop, step int) *Seq[int] {
	if step == 0 {
		step = 1
	}
	return FromIter(func(yield func(int) bool) {
		if step > 0 {
			for i := start; i < stop; i += step {
				if !yield(i) {
					return
				}
			}
			return
		}
		for i := start; i > stop; i += step {
			if !yield(i) {
				return
			}
		}
	})
}

// Iter returns the element stream, consuming the Seq.
//
// The first call transfers the source out of the Seq and drops the
// internal reference, so upstream pipeline stages become collectable while
// the returned stream is still being drained. Subsequent calls log a
// stale-consumption warning and return an empty stream.
func (s *Seq[T]) Iter() iter.Seq[T] {
	if s.ran || s.src == nil {
		warnStale()
		return func(yield func(T) bool) {}
	}
	s.ran = true
	src := s.src
	s.src = nil
	return src
}

// Consumed reports whether the Seq has already been iterated.
func (s *Seq[T]) Consumed() bool { return s.ran }

// Tee eagerly realizes the pending pipeline, applies fn to every element
// for inspection, and resets the Seq to the realized buffer so it can be
// iterated once more. This is the one sanctioned exception to the
// single-pass contract.
func (s *Seq[T]) Tee(fn func(T)) *Seq[T] {
	var buf []T
	if !s.ran && s.src != nil {
		buf = slices.Collect(s.src)
	}
	for _, v := range buf {
		fn(v)
	}
	s.src = slices.Values(buf)
	s.ran = false
	return s
}

// String describes the consumption state without touching the source.
func (s *Seq[T]) String() string {
	if s.ran || s.src == nil {
		return "Seq(consumed)"
	}
	return "Seq(pending)"
}
