package getter_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/javadba/infixpy/getter"
)

type user struct {
	Name    string
	Age     int
	Address address
}

type address struct {
	City string
}

func (u user) Upper() string { return strings.ToUpper(u.Name) }

// ─────────────────────────────────────────────────────────────────────────────
// Resolve: function specifiers
// ─────────────────────────────────────────────────────────────────────────────

func TestResolveFunc(t *testing.T) {
	fn, err := getter.Resolve[int](func(n int) int { return n * 2 })
	if err != nil {
		t.Fatal(err)
	}
	if got := fn(21); got != 42 {
		t.Fatalf("fn(21) = %v; want 42", got)
	}
}

func TestResolveFuncAny(t *testing.T) {
	fn, err := getter.Resolve[int](func(v any) any { return v.(int) + 1 })
	if err != nil {
		t.Fatal(err)
	}
	if got := fn(1); got != 2 {
		t.Fatalf("fn(1) = %v; want 2", got)
	}
}

func TestResolveFuncReflected(t *testing.T) {
	// A return shape not covered by the direct type switch.
	fn, err := getter.Resolve[int](func(n int) []int { return []int{n} })
	if err != nil {
		t.Fatal(err)
	}
	got, ok := fn(7).([]int)
	if !ok || len(got) != 1 || got[0] != 7 {
		t.Fatalf("fn(7) = %v; want [7]", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Resolve: field and index specifiers
// ─────────────────────────────────────────────────────────────────────────────

func TestResolveFieldName(t *testing.T) {
	fn, err := getter.Resolve[user]("Name")
	if err != nil {
		t.Fatal(err)
	}
	if got := fn(user{Name: "ada"}); got != "ada" {
		t.Fatalf("field Name = %v; want ada", got)
	}
}

func TestResolveFieldPath(t *testing.T) {
	fn, err := getter.Resolve[user]("Address.City")
	if err != nil {
		t.Fatal(err)
	}
	u := user{Address: address{City: "London"}}
	if got := fn(u); got != "London" {
		t.Fatalf("field Address.City = %v; want London", got)
	}
}

func TestResolveFieldMethod(t *testing.T) {
	fn, err := getter.Resolve[user]("Upper")
	if err != nil {
		t.Fatal(err)
	}
	if got := fn(user{Name: "ada"}); got != "ADA" {
		t.Fatalf("method Upper = %v; want ADA", got)
	}
}

func TestResolveFieldMap(t *testing.T) {
	fn, err := getter.Resolve[map[string]any]("a.b")
	if err != nil {
		t.Fatal(err)
	}
	m := map[string]any{"a": map[string]any{"b": 1}}
	if got := fn(m); got != 1 {
		t.Fatalf("map path a.b = %v; want 1", got)
	}
}

func TestResolveFieldMissingPanics(t *testing.T) {
	fn, err := getter.Resolve[user]("Nope")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, getter.ErrNoField) {
			t.Fatalf("recover() = %v; want ErrNoField", r)
		}
	}()
	fn(user{})
}

func TestResolveIndex(t *testing.T) {
	fn, err := getter.Resolve[[]string](1)
	if err != nil {
		t.Fatal(err)
	}
	if got := fn([]string{"a", "b", "c"}); got != "b" {
		t.Fatalf("index 1 = %v; want b", got)
	}
}

func TestResolveIndexNegative(t *testing.T) {
	fn, err := getter.Resolve[[]int](-1)
	if err != nil {
		t.Fatal(err)
	}
	if got := fn([]int{1, 2, 3}); got != 3 {
		t.Fatalf("index -1 = %v; want 3", got)
	}
}

func TestResolveIndexString(t *testing.T) {
	fn, err := getter.Resolve[string](0)
	if err != nil {
		t.Fatal(err)
	}
	if got := fn("go"); got != "g" {
		t.Fatalf("index 0 = %v; want g", got)
	}
}

func TestResolveIndexOutOfRangePanics(t *testing.T) {
	fn, err := getter.Resolve[[]int](5)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, getter.ErrNoIndex) {
			t.Fatalf("recover() = %v; want ErrNoIndex", r)
		}
	}()
	fn([]int{1})
}

func TestResolveNotCallable(t *testing.T) {
	if _, err := getter.Resolve[int](3.14); !errors.Is(err, getter.ErrNotCallable) {
		t.Fatalf("err = %v; want ErrNotCallable", err)
	}
	if _, err := getter.Resolve[int](nil); !errors.Is(err, getter.ErrNotCallable) {
		t.Fatalf("err = %v; want ErrNotCallable", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ResolveBinary
// ─────────────────────────────────────────────────────────────────────────────

func TestResolveBinary(t *testing.T) {
	fn, err := getter.ResolveBinary(func(a, b int) int { return a + b })
	if err != nil {
		t.Fatal(err)
	}
	if got := fn(1, 2); got != 3 {
		t.Fatalf("fn(1, 2) = %v; want 3", got)
	}
}

func TestResolveBinaryNotCallable(t *testing.T) {
	if _, err := getter.ResolveBinary("add"); !errors.Is(err, getter.ErrNotCallable) {
		t.Fatalf("err = %v; want ErrNotCallable", err)
	}
	if _, err := getter.ResolveBinary(func(a int) int { return a }); !errors.Is(err, getter.ErrNotCallable) {
		t.Fatalf("err = %v; want ErrNotCallable", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Truthy / Compare
// ─────────────────────────────────────────────────────────────────────────────

func TestTruthy(t *testing.T) {
	truthy := []any{1, -1, 0.5, "x", true, []int{0}, map[string]int{"a": 1}}
	for _, v := range truthy {
		if !getter.Truthy(v) {
			t.Fatalf("Truthy(%#v) = false; want true", v)
		}
	}
	falsy := []any{nil, 0, 0.0, "", false, []int{}, map[string]int{}}
	for _, v := range falsy {
		if getter.Truthy(v) {
			t.Fatalf("Truthy(%#v) = true; want false", v)
		}
	}
}

func TestCompare(t *testing.T) {
	if getter.Compare(1, 2) != -1 || getter.Compare(2, 1) != 1 || getter.Compare(2, 2) != 0 {
		t.Fatal("int compare failed")
	}
	if getter.Compare(1, 1.5) != -1 {
		t.Fatal("mixed-width numeric compare failed")
	}
	if getter.Compare("a", "b") != -1 {
		t.Fatal("string compare failed")
	}
	if getter.Compare(false, true) != -1 {
		t.Fatal("bool compare failed")
	}
}
