package seq_test

import (
	"fmt"

	"github.com/javadba/infixpy/seq"
)

// Example_pipeline chains lazy transforms end to end: only the elements
// surviving every filter are ever labeled.
func Example_pipeline() {
	out := seq.Range(1, 51, 1).
		Map(func(n int) int { return n * 4 }).
		Filter(func(v any) bool { return v.(int) <= 170 }).
		Filter(func(v any) bool { n := v.(int); return n >= 10 && n < 100 }).
		Filter(func(v any) bool { return v.(int)%20 == 0 }).
		Enumerate().
		Map(func(p seq.Pair[int, any]) string {
			return fmt.Sprintf("Result[%d]=%v", p.First, p.Second)
		}).
		MkString(" .. ")
	fmt.Println(out)
	// Output: Result[0]=20 .. Result[1]=40 .. Result[2]=60 .. Result[3]=80
}

func ExampleGroupBy() {
	words := seq.New("apple", "avocado", "banana", "blueberry", "cherry")
	byLetter := seq.GroupBy(words, func(s string) string { return s[:1] })
	byLetter.Each(func(k string, g *seq.List[string]) {
		fmt.Printf("%s: %s\n", k, g.MkString(", "))
	})
	// Output:
	// a: apple, avocado
	// b: banana, blueberry
	// c: cherry
}

func ExampleDict_Join() {
	stock := seq.DictOf(
		seq.Pair[string, int]{First: "apples", Second: 12},
		seq.Pair[string, int]{First: "pears", Second: 4},
	)
	sold := seq.DictOf(
		seq.Pair[string, int]{First: "pears", Second: 1},
		seq.Pair[string, int]{First: "plums", Second: 7},
	)
	rows, _ := stock.Join(sold, seq.JoinOuter)
	rows.Each(func(r seq.JoinRow[string, int]) {
		fmt.Printf("%s left=%d(%v) right=%d(%v)\n", r.Key, r.Left, r.HasLeft, r.Right, r.HasRight)
	})
	// Output:
	// apples left=12(true) right=0(false)
	// pears left=4(true) right=1(true)
	// plums left=0(false) right=7(true)
}

func ExampleReduce() {
	total, err := seq.Reduce(seq.New(1, 2, 3, 4), func(a, b int) int { return a + b })
	fmt.Println(total, err)
	// Output: 10 <nil>
}

func ExampleList_Reverse() {
	fmt.Println(seq.NewList(1, 2, 3).Reverse().ToList())
	// Output: [3,2,1]
}
