package blockfunc

import (
	"fmt"
	"io"
	"iter"
)

// YieldStuff writes "start", hands the block 3, "cow" and 2.09 in that order,
// then writes "stop". The three values deliberately have different types.
func YieldStuff(w io.Writer, fn YieldFunc[any]) error {
	if _, err := fmt.Fprintln(w, "start"); err != nil {
		return err
	}
	for _, v := range []any{3, "cow", 2.09} {
		if fn == nil {
			return &InvocationError{Routine: "YieldStuff"}
		}
		fn(v)
	}
	_, err := fmt.Fprintln(w, "stop")
	return err
}

// MaxFib is the largest n for which every one of the first n Fibonacci
// numbers fits in an int.
const MaxFib = 92

// FibSeq yields the first n Fibonacci numbers, starting 1, 1, 2, 3, 5.
// It yields nothing for n <= 0 and stops after MaxFib values.
func FibSeq(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		a, b := 1, 1
		for range min(max(n, 0), MaxFib) {
			if !yield(a) {
				return
			}
			a, b = b, a+b
		}
	}
}

// Fib invokes fn with the first n Fibonacci numbers.
// n must be in [1, MaxFib].
func Fib(n int, fn YieldFunc[int]) error {
	if n < 1 {
		return invalid("Fib", "n", n, "must be >= 1")
	}
	if n > MaxFib {
		return invalid("Fib", "n", n, "result overflows int")
	}
	return drain("Fib", FibSeq(n), fn)
}

// Times yields 0 up to, but excluding, n.
func Times(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// MyTimes invokes fn with each integer in [0, n) in ascending order.
// A non-positive n invokes nothing.
func MyTimes(n int, fn YieldFunc[int]) error {
	return drain("MyTimes", Times(n), fn)
}
