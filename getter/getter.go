package getter

import (
	"fmt"
	"reflect"
	"strings"
)

// Resolve normalizes a callable-like specifier into a unary accessor.
//
//	fn, err := getter.Resolve[User]("Name")        // field access
//	fn, err := getter.Resolve[[]int](0)            // positional access
//	fn, err := getter.Resolve[int](func(n int) int { return n * 2 })
//
// Returns [ErrNotCallable] when spec is none of the supported forms.
// Resolution is pure; the produced accessor may panic with [ErrNoField] or
// [ErrNoIndex] when applied to an element that cannot satisfy the access.
func Resolve[T any](spec any) (func(T) any, error) {
	switch fn := spec.(type) {
	case nil:
		return nil, fmt.Errorf("%w: <nil>", ErrNotCallable)
	case func(T) any:
		return fn, nil
	case func(T) T:
		return func(v T) any { return fn(v) }, nil
	case func(T) bool:
		return func(v T) any { return fn(v) }, nil
	case func(T) string:
		return func(v T) any { return fn(v) }, nil
	case func(T) int:
		return func(v T) any { return fn(v) }, nil
	case func(T) float64:
		return func(v T) any { return fn(v) }, nil
	case func(any) any:
		return func(v T) any { return fn(v) }, nil
	case string:
		return Field[T](fn), nil
	case int:
		return Index[T](fn), nil
	}

	rv := reflect.ValueOf(spec)
	if rv.Kind() == reflect.Func && !rv.IsNil() {
		rt := rv.Type()
		if rt.NumIn() == 1 && rt.NumOut() == 1 && !rt.IsVariadic() {
			return func(v T) any {
				return rv.Call([]reflect.Value{valueOrZero(v, rt.In(0))})[0].Interface()
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrNotCallable, spec)
}

// ResolveBinary normalizes a specifier into a two-argument function, the
// shape folds and reductions consume. Any non-variadic two-in one-out
// function is accepted; everything else yields [ErrNotCallable].
func ResolveBinary(spec any) (func(any, any) any, error) {
	if fn, ok := spec.(func(any, any) any); ok {
		return fn, nil
	}
	rv := reflect.ValueOf(spec)
	if rv.Kind() == reflect.Func && !rv.IsNil() {
		rt := rv.Type()
		if rt.NumIn() == 2 && rt.NumOut() == 1 && !rt.IsVariadic() {
			return func(a, b any) any {
				args := []reflect.Value{valueOrZero(a, rt.In(0)), valueOrZero(b, rt.In(1))}
				return rv.Call(args)[0].Interface()
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: %T is not a two-argument function", ErrNotCallable, spec)
}

// Field returns an accessor reading the named field from each element.
// path may be dot-separated to traverse nested structs, pointers and
// map[string]any values ("Address.City"). Zero-argument methods are
// consulted when no field or map key matches the segment.
func Field[T any](path string) func(T) any {
	segments := strings.Split(path, ".")
	return func(v T) any {
		cur := any(v)
		for _, seg := range segments {
			cur = fieldOf(cur, seg)
		}
		return cur
	}
}

// Index returns an accessor reading position i from each element.
// Negative i counts from the end for slices, arrays and strings.
func Index[T any](i int) func(T) any {
	return func(v T) any {
		return itemOf(any(v), i)
	}
}

func fieldOf(v any, name string) any {
	if m, ok := v.(map[string]any); ok {
		val, ok := m[name]
		if !ok {
			panic(fmt.Errorf("%w: %q in map", ErrNoField, name))
		}
		return val
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		panic(fmt.Errorf("%w: %q on <nil>", ErrNoField, name))
	}

	elem := rv
	for elem.Kind() == reflect.Pointer {
		if elem.IsNil() {
			panic(fmt.Errorf("%w: %q on nil %s", ErrNoField, name, elem.Type()))
		}
		elem = elem.Elem()
	}
	if elem.Kind() == reflect.Struct {
		if f := elem.FieldByName(name); f.IsValid() && f.CanInterface() {
			return f.Interface()
		}
	}
	if m := rv.MethodByName(name); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 0 && mt.NumOut() >= 1 {
			return m.Call(nil)[0].Interface()
		}
	}
	panic(fmt.Errorf("%w: %q on %T", ErrNoField, name, v))
}

func itemOf(v any, i int) any {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		panic(fmt.Errorf("%w: %d on <nil>", ErrNoIndex, i))
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.String:
		n := rv.Len()
		idx := i
		if idx < 0 {
			idx += n
		}
		if idx < 0 || idx >= n {
			panic(fmt.Errorf("%w: %d on %T of length %d", ErrNoIndex, i, v, n))
		}
		if rv.Kind() == reflect.String {
			s := rv.String()
			return s[idx : idx+1]
		}
		return rv.Index(idx).Interface()
	case reflect.Map:
		kt := rv.Type().Key()
		kv := reflect.ValueOf(i)
		if kv.Type().ConvertibleTo(kt) {
			if val := rv.MapIndex(kv.Convert(kt)); val.IsValid() {
				return val.Interface()
			}
		}
		panic(fmt.Errorf("%w: key %d in %T", ErrNoIndex, i, v))
	}
	panic(fmt.Errorf("%w: cannot index %T", ErrNoIndex, v))
}

// Truthy reports whether v counts as "true" under loose pipeline
// semantics: nil, false, zero numbers and empty strings, slices, maps and
// channels are falsy; everything else is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan, reflect.String:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	}
	return !rv.IsZero()
}

// Compare orders two dynamically-typed sort keys: -1, 0 or +1.
// Numeric kinds compare numerically across widths, strings and bools
// compare naturally, and anything else falls back to comparing the
// fmt.Sprint rendering, which keeps the ordering deterministic.
func Compare(a, b any) int {
	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	}
	if x, ok := a.(string); ok {
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	}
	if x, ok := a.(bool); ok {
		if y, ok := b.(bool); ok {
			switch {
			case !x && y:
				return -1
			case x && !y:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func valueOrZero(v any, want reflect.Type) reflect.Value {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return reflect.Zero(want)
	}
	return rv
}
