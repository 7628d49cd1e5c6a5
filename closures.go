package blockfunc

// MakeAdder returns a function that adds n to its argument.
func MakeAdder(n int) func(int) int {
	return func(a int) int {
		return a + n
	}
}

// MakeIncrementer returns two closures over one shared counter: inc adds 1,
// get reads the current value. Separate calls produce independent counters.
func MakeIncrementer() (inc BlockFunc, get func() int) {
	n := 0
	inc = func() {
		n++
	}
	get = func() int {
		return n
	}
	return inc, get
}
