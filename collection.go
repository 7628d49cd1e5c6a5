package blockfunc

import "iter"

// Slice carries the sequence extensions. The routines only read from it.
type Slice[T any] []T

// Values yields each element, index ascending from 0.
func (s Slice[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(s); i++ {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Indexed yields each (index, element) pair, index ascending from 0.
func (s Slice[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(s); i++ {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// MyEach invokes fn once per element, in order.
func (s Slice[T]) MyEach(fn YieldFunc[T]) error {
	return drain("MyEach", s.Values(), fn)
}

// MyEachWithIndex invokes fn once per element with its index.
func (s Slice[T]) MyEachWithIndex(fn IndexedFunc[T]) error {
	return drain2("MyEachWithIndex", s.Indexed(), fn)
}

// Map makes a new slice by applying f to every element of slice.
// A nil slice maps to nil.
func Map[T1, T2 any](slice []T1, f func(T1) T2) []T2 {
	if slice == nil {
		return nil
	}

	result := make([]T2, len(slice))
	for i, e := range slice {
		result[i] = f(e)
	}

	return result
}
