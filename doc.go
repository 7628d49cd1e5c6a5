/*
Package blockfunc provides block-style iteration routines for Go.

# Overview

Every routine in this package hands values to a caller-supplied block: a
plain Go function invoked synchronously, zero or more times, in a fixed
order. Nothing is suspended and nothing runs concurrently; the block returns
before the routine moves on to the next value.

The same values are also available as range-over-func iterators, so a caller
can pick whichever shape reads better:

	blockfunc.Int(10).PrimesLessThan(func(p int) { fmt.Println(p) })

	for p := range blockfunc.Int(10).Primes() {
	    fmt.Println(p)
	}

# Block Types

  - YieldFunc[T]: receives one value per call
  - IndexedFunc[T]: receives (index, element) pairs
  - BlockFunc: takes no arguments, used by the timing harness

Each type carries Empty and Compose, plus a few combinators:

	var seen []int
	count := 0
	block := blockfunc.Collect(&seen).Filter(isEven).Count(&count)

# Extensions

Extensions hang off named types rather than the built-in ones:

Integers (Int):
  - IsPrime, PrimesLessThan, CompositesLessThan
  - Digits, MyTimes, BitStrings

Sequences (Slice[T]):
  - MyEach, MyEachWithIndex

Strings (String):
  - JustLetters

# Shapes

Rectangle and Circle implement Shape. PrintShapeStats and RenderShapeTable
dispatch through the interface, so any other Shape prints the same way.
Circle uses Pi = 3.14.

# Errors

A routine that has to call a nil block returns an *InvocationError, and one
refusing its input returns a *ValidationError. They match ErrNilBlock and
ErrInvalidArgument under errors.Is. Fib(0), Fib above MaxFib and negative
Digits are rejected; MyTimes with a non-positive count simply does nothing.

# Package Import

	import bf "github.com/Pure-Company/blockfunc"
*/
package blockfunc
