package seq

import "fmt"

// Pair holds two values of possibly different types. It is the element
// type produced by [Zip], Enumerate and [Dict.Items].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// kv lets the dynamic ToDict decompose any Pair instantiation without
// knowing its type parameters.
func (p Pair[A, B]) kv() (any, any) { return p.First, p.Second }

type keyValuer interface{ kv() (any, any) }
