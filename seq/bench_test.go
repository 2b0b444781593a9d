package seq_test

import (
	"testing"

	"github.com/javadba/infixpy/seq"
)

func makeInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func BenchmarkMap_10k(b *testing.B) {
	src := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq.Map(seq.From(src), func(n int) int { return n * 2 }).Count()
	}
}

func BenchmarkFilter_10k(b *testing.B) {
	src := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq.Filter(seq.From(src), func(n int) bool { return n%2 == 0 }).Count()
	}
}

func BenchmarkFilterDynamicSpec_10k(b *testing.B) {
	src := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq.From(src).Filter(func(n int) bool { return n%2 == 0 }).Count()
	}
}

func BenchmarkTakeShortCircuit(b *testing.B) {
	src := makeInts(1_000_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq.Take(seq.From(src), 10).Count()
	}
}

func BenchmarkGroupBy_10k(b *testing.B) {
	src := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq.GroupBy(seq.From(src), func(n int) int { return n % 16 })
	}
}

func BenchmarkSortBy_10k(b *testing.B) {
	src := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq.SortBy(seq.From(src), func(n int) int { return -n })
	}
}

func BenchmarkDictSet(b *testing.B) {
	for i := 0; i < b.N; i++ {
		d := seq.NewDict[int, int]()
		for k := 0; k < 1_000; k++ {
			d.Set(k, k)
		}
	}
}
