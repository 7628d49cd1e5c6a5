//nolint:errcheck
package blockfunc_test

import (
	"fmt"
	"os"

	bf "github.com/Pure-Company/blockfunc"
)

// ============================================================================
// Block-invocation demos
// ============================================================================

func ExampleYieldStuff() {
	bf.YieldStuff(os.Stdout, func(x any) { fmt.Println(x) })
	// Output:
	// start
	// 3
	// cow
	// 2.09
	// stop
}

func ExampleFib() {
	bf.Fib(5, func(x int) { fmt.Println(x) })
	// Output:
	// 1
	// 1
	// 2
	// 3
	// 5
}

func ExampleMyTimes() {
	bf.MyTimes(5, func(n int) { fmt.Println(n * n) })
	// Output:
	// 0
	// 1
	// 4
	// 9
	// 16
}

func ExampleFibSeq() {
	for f := range bf.FibSeq(7) {
		fmt.Print(f, " ")
	}
	fmt.Println()
	// Output: 1 1 2 3 5 8 13
}

// ============================================================================
// Extensions
// ============================================================================

func ExampleInt_Digits() {
	bf.Int(4589).Digits(func(d int) { fmt.Println(d) })
	// Output:
	// 4
	// 5
	// 8
	// 9
}

func ExampleInt_IsPrime() {
	fmt.Println(bf.Int(32883).IsPrime())
	fmt.Println(bf.Int(32887).IsPrime())
	// Output:
	// false
	// true
}

func ExampleInt_PrimesLessThan() {
	bf.Int(10).PrimesLessThan(func(p int) { fmt.Println(p) })
	// Output:
	// 2
	// 3
	// 5
	// 7
}

func ExampleInt_CompositesLessThan() {
	bf.Int(10).CompositesLessThan(func(c int) { fmt.Println(c) })
	// Output:
	// 1
	// 4
	// 6
	// 8
	// 9
}

func ExampleString_JustLetters() {
	bf.String("96372f1..9b42511").JustLetters(func(c rune) { fmt.Println(string(c)) })
	// Output:
	// f
	// b
}

func ExampleSlice_MyEach() {
	bf.Slice[string]{"a", "b", "c"}.MyEach(func(s string) { fmt.Println(s) })
	// Output:
	// a
	// b
	// c
}

func ExampleSlice_MyEachWithIndex() {
	bf.Slice[string]{"a", "b", "c"}.MyEachWithIndex(func(i int, s string) {
		fmt.Printf("%d. %s\n", i+1, s)
	})
	// Output:
	// 1. a
	// 2. b
	// 3. c
}

// ============================================================================
// Closures
// ============================================================================

func ExampleMakeAdder() {
	add5 := bf.MakeAdder(5)
	fmt.Printf("n=%v\n", 1)
	fmt.Printf("n=%v\n", add5(1))
	// Output:
	// n=1
	// n=6
}

func ExampleMap() {
	words := []string{"one", "two", "three"}
	fmt.Println(bf.Map(words, func(s string) int { return len(s) }))
	// Output: [3 3 5]
}

// ============================================================================
// Shapes
// ============================================================================

func ExamplePrintShapeStats() {
	box := bf.Rectangle{Width: 4, Height: 1}
	dot := bf.Circle{Radius: 3}
	bf.PrintShapeStats(os.Stdout, box, dot)
	// Output:
	// Rectangle: area=4, perimeter=10
	// Circle: area=28.26, perimeter=18.84
}

func ExampleBlockFunc_Compose() {
	hello := bf.BlockFunc(func() { fmt.Print("hello") })
	world := bf.BlockFunc(func() { fmt.Println(", world") })
	hello.Compose(world).Run()
	// Output: hello, world
}
