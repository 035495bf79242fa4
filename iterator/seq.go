package iterator

import "iter"

// Number is the set of types Sum can add.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Map returns a sequence yielding fn(v) for every v of seq. Lazy.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter returns a sequence yielding the values of seq for which keep returns true. Lazy.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Fold combines every value of seq into acc, left to right.
func Fold[T, A any](seq iter.Seq[T], acc A, fn func(A, T) A) A {
	for v := range seq {
		acc = fn(acc, v)
	}
	return acc
}

// Sum adds every value of seq.
func Sum[T Number](seq iter.Seq[T]) T {
	var sum T
	for v := range seq {
		sum += v
	}
	return sum
}

// Count returns the number of values in seq.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
