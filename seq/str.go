package seq

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// MkString joins the rendered elements with between, optionally wrapped:
// the first extra argument is a prefix, the second a suffix. An empty
// source renders as "". The format is deterministic for a given element
// order but carries no further contract.
func (o ops[T]) MkString(between string, wrap ...string) string {
	before, after := "", ""
	if len(wrap) > 0 {
		before = wrap[0]
	}
	if len(wrap) > 1 {
		after = wrap[1]
	}
	return mkString(o.self.Iter(), between, before, after)
}

// ListRepr renders the elements as "[a,b,c]", nesting contained
// sequences; an empty source renders as "".
func (o ops[T]) ListRepr() string {
	return mkString(o.self.Iter(), ",", "[", "]")
}

func mkString[T any](it iter.Seq[T], between, before, after string) string {
	var parts []string
	for v := range it {
		parts = append(parts, listRepr(v))
	}
	if len(parts) == 0 {
		return ""
	}
	return before + strings.Join(parts, between) + after
}

// listRepr renders a single element, descending into slices and arrays
// and honoring nested containers' own ListRepr.
func listRepr(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case interface{ ListRepr() string }:
		return x.ListRepr()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return ""
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = listRepr(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	return fmt.Sprint(v)
}
