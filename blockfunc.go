package blockfunc

import "iter"

// ============================================================================
// Block Types
// ============================================================================

// YieldFunc is a block that receives one value per invocation.
// Every routine in this package invokes its block synchronously: the block
// returns before the routine produces the next value.
//
// Example:
//
//	var got []int
//	err := Int(10).PrimesLessThan(Collect(&got))
//	// got == [2 3 5 7]
type YieldFunc[T any] func(T)

// Yield invokes the block with v.
func (f YieldFunc[T]) Yield(v T) {
	f(v)
}

// Empty returns a block that ignores its argument (Monoid identity).
func (f YieldFunc[T]) Empty() YieldFunc[T] {
	return func(T) {}
}

// Compose creates a block that hands each value to this block, then to next (Monoid operation).
func (f YieldFunc[T]) Compose(next YieldFunc[T]) YieldFunc[T] {
	return func(v T) {
		f(v)
		next(v)
	}
}

// Filter forwards only the values matching the predicate.
func (f YieldFunc[T]) Filter(predicate func(T) bool) YieldFunc[T] {
	return func(v T) {
		if predicate(v) {
			f(v)
		}
	}
}

// Tap runs fn before the block sees each value.
func (f YieldFunc[T]) Tap(fn func(T)) YieldFunc[T] {
	return func(v T) {
		fn(v)
		f(v)
	}
}

// Count increments n once per value, then forwards it.
func (f YieldFunc[T]) Count(n *int) YieldFunc[T] {
	return f.Tap(func(T) { *n++ })
}

// IndexedFunc is a block that receives an index and the element stored at it.
type IndexedFunc[T any] func(i int, v T)

// Empty returns a block that ignores its arguments (Monoid identity).
func (f IndexedFunc[T]) Empty() IndexedFunc[T] {
	return func(int, T) {}
}

// Compose creates a block that hands each pair to this block, then to next (Monoid operation).
func (f IndexedFunc[T]) Compose(next IndexedFunc[T]) IndexedFunc[T] {
	return func(i int, v T) {
		f(i, v)
		next(i, v)
	}
}

// BlockFunc is a block that takes no arguments.
type BlockFunc func()

// Run invokes the block.
func (f BlockFunc) Run() {
	f()
}

// Empty returns a block that does nothing (Monoid identity).
func (f BlockFunc) Empty() BlockFunc {
	return func() {}
}

// Compose runs this block, then next (Monoid operation).
func (f BlockFunc) Compose(next BlockFunc) BlockFunc {
	return func() {
		f()
		next()
	}
}

// ============================================================================
// Helpers
// ============================================================================

// Collect returns a block that appends every value it receives to dst.
func Collect[T any](dst *[]T) YieldFunc[T] {
	return func(v T) {
		*dst = append(*dst, v)
	}
}

// DropIndex adapts fn so it can be used where an IndexedFunc is expected.
func DropIndex[T any](fn YieldFunc[T]) IndexedFunc[T] {
	return func(_ int, v T) {
		fn(v)
	}
}

// CollectPairs returns a block that appends every (index, element) pair to dst.
func CollectPairs[T any](dst *[]Pair[T]) IndexedFunc[T] {
	return func(i int, v T) {
		*dst = append(*dst, Pair[T]{Index: i, Value: v})
	}
}

// Pair is an element together with its position in a sequence.
type Pair[T any] struct {
	Index int
	Value T
}

// drain hands every value of seq to fn. A nil fn is only an error once there
// is a value to give it.
func drain[T any](routine string, seq iter.Seq[T], fn YieldFunc[T]) error {
	for v := range seq {
		if fn == nil {
			return &InvocationError{Routine: routine}
		}
		fn(v)
	}
	return nil
}

func drain2[T any](routine string, seq iter.Seq2[int, T], fn IndexedFunc[T]) error {
	for i, v := range seq {
		if fn == nil {
			return &InvocationError{Routine: routine}
		}
		fn(i, v)
	}
	return nil
}
