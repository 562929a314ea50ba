package seqs

import "math/rand/v2"

// Range returns the sequence start, start+step, ... up to (exclusive) end.
// A negative step counts down. A zero step yields an empty sequence.
func Range(start, end, step int) Sequence[int] {
	if step == 0 {
		return Empty[int]()
	}
	return New(func(index int) Outcome[int] {
		v := start + index*step
		if step > 0 && v < end || step < 0 && v > end {
			return Value(v)
		}
		return Stop[int]()
	})
}

// Repeat returns a sequence of count copies of value.
func Repeat[T any](value T, count int) Sequence[T] {
	return New(func(index int) Outcome[T] {
		if index >= count {
			return Stop[T]()
		}
		return Value(value)
	})
}

// RandomInts generates a sequence of random integers of the specified size.
// The values are drawn once up front; a producer must answer the same index
// with the same element on every probe.
func RandomInts(size int) Sequence[int] {
	values := make([]int, max(size, 0))
	for i := range values {
		values[i] = rand.Int()
	}
	return FromSlice(values)
}
