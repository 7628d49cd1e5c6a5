package blockfunc

import (
	"iter"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// Int carries the integer extensions. Convert with Int(n) to reach them:
//
//	Int(4589).Digits(func(d int) { fmt.Println(d) })
type Int int

// IsPrime reports whether n is prime, by trial division with odd candidates
// up to the square root of n.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	// c <= n/c is c*c <= n without the overflow near MaxInt.
	for c := 3; c <= n/c; c += 2 {
		if n%c == 0 {
			return false
		}
	}
	return true
}

// IsPrime reports whether the value is prime.
func (n Int) IsPrime() bool {
	return IsPrime(int(n))
}

// Primes yields every prime in [2, n) in ascending order.
func (n Int) Primes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 2; i < int(n); i++ {
			if IsPrime(i) && !yield(i) {
				return
			}
		}
	}
}

// PrimesLessThan invokes fn with every prime below n.
func (n Int) PrimesLessThan(fn YieldFunc[int]) error {
	return drain("PrimesLessThan", n.Primes(), fn)
}

// Composites yields every non-prime in [1, n) in ascending order.
// 1 counts as composite here.
func (n Int) Composites() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i < int(n); i++ {
			if !IsPrime(i) && !yield(i) {
				return
			}
		}
	}
}

// CompositesLessThan invokes fn with every non-prime in [1, n).
func (n Int) CompositesLessThan(fn YieldFunc[int]) error {
	return drain("CompositesLessThan", n.Composites(), fn)
}

// DigitSeq yields the decimal digits of n from most to least significant.
// Negative values yield nothing; use Digits to have them rejected.
func (n Int) DigitSeq() iter.Seq[int] {
	return func(yield func(int) bool) {
		if n < 0 {
			return
		}
		for _, c := range strconv.Itoa(int(n)) {
			if !yield(int(c - '0')) {
				return
			}
		}
	}
}

// Digits invokes fn once per decimal digit of n, left to right.
func (n Int) Digits(fn YieldFunc[int]) error {
	if n < 0 {
		return invalid("Digits", "n", int(n), "must not be negative")
	}
	return drain("Digits", n.DigitSeq(), fn)
}

// MyTimes invokes fn with each integer in [0, n).
func (n Int) MyTimes(fn YieldFunc[int]) error {
	return MyTimes(int(n), fn)
}

// BitStrings returns every binary string of length n in ascending order.
func (n Int) BitStrings() ([]string, error) {
	switch {
	case n < 0:
		return nil, invalid("BitStrings", "n", int(n), "must not be negative")
	case n == 0:
		return []string{""}, nil
	case n == 1:
		return []string{"0", "1"}, nil
	}

	shorter, err := (n - 1).BitStrings()
	if err != nil {
		return nil, err
	}
	zero := Map(shorter, func(s string) string { return "0" + s })
	one := Map(shorter, func(s string) string { return "1" + s })
	return append(zero, one...), nil
}

// ============================================================================
// Sieve
// ============================================================================

// Sieve returns a bit set in which bit i is set exactly when i is a prime
// below limit.
func Sieve(limit int) *bitset.BitSet {
	if limit < 2 {
		return bitset.New(0)
	}
	top := uint(limit)
	primes := bitset.New(top)
	for i := uint(2); i < top; i++ {
		primes.Set(i)
	}
	for p := uint(2); p*p < top; p++ {
		if !primes.Test(p) {
			continue
		}
		for m := p * p; m < top; m += p {
			primes.Clear(m)
		}
	}
	return primes
}

// SievePrimes yields the primes below limit, read off a Sieve.
func SievePrimes(limit int) iter.Seq[int] {
	return func(yield func(int) bool) {
		primes := Sieve(limit)
		for i, ok := primes.NextSet(0); ok; i, ok = primes.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}

// PrimesBySieve invokes fn with every prime below limit. It produces the same
// values as Int(limit).PrimesLessThan without the per-number trial division.
func PrimesBySieve(limit int, fn YieldFunc[int]) error {
	return drain("PrimesBySieve", SievePrimes(limit), fn)
}
