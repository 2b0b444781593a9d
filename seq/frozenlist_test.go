package seq_test

import (
	"testing"

	"github.com/javadba/infixpy/seq"
)

func TestFrozenFromSnapshots(t *testing.T) {
	src := []int{1, 2, 3}
	f := seq.FrozenFrom(src)
	src[0] = 99
	assertSlice(t, f.All(), []int{1, 2, 3})
}

func TestFrozenListRepeatedIteration(t *testing.T) {
	f := seq.FrozenFrom([]string{"a", "b"})
	assertSlice(t, f.ToList().All(), []string{"a", "b"})
	assertSlice(t, f.ToList().All(), []string{"a", "b"})
	if f.Count() != 2 {
		t.Fatalf("Count = %d; want 2", f.Count())
	}
}

func TestFrozenListGet(t *testing.T) {
	f := seq.FrozenFrom([]int{10, 20})
	if v, ok := f.Get(0); !ok || v != 10 {
		t.Fatalf("Get(0) = %d, %v", v, ok)
	}
	if _, ok := f.Get(5); ok {
		t.Fatal("Get past the end should report absent")
	}
}

func TestFrozenListReverse(t *testing.T) {
	f := seq.FrozenFrom([]int{1, 2, 3})
	assertSlice(t, f.Reverse().ToList().All(), []int{3, 2, 1})
	assertSlice(t, f.All(), []int{1, 2, 3})
}

func TestFrozenListToFrozenListIsSelf(t *testing.T) {
	f := seq.FrozenFrom([]int{1})
	if f.ToFrozenList() != f {
		t.Fatal("freezing a FrozenList should return the receiver")
	}
}

func TestFrozenListAllReturnsCopy(t *testing.T) {
	f := seq.FrozenFrom([]int{1, 2})
	all := f.All()
	all[0] = 99
	got, _ := f.Get(0)
	if got != 1 {
		t.Fatal("All must hand out a copy, not the snapshot")
	}
}

func TestFrozenListTransforms(t *testing.T) {
	f := seq.FrozenFrom([]int{1, 2, 3, 4})
	got := f.Filter(func(n int) bool { return n%2 == 0 }).ToList()
	assertSlice(t, got.All(), []int{2, 4})
	// The transform did not consume the FrozenList.
	if f.Count() != 4 {
		t.Fatal("FrozenList should survive feeding a chain")
	}
}
