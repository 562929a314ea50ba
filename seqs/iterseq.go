package seqs

import (
	"iter"
	"slices"
)

// Values exposes the sequence as a Go iterator over its realized elements.
// Each range loop is an independent pass with its own cursor.
func Values[T any](seq Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := seq.Cursor(); c.IsValid(); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Enumerate yields (position, element) pairs. Positions are contiguous
// from 0 regardless of how many underlying indices were filtered out.
func Enumerate[T any](seq Sequence[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for c := seq.Cursor(); c.IsValid(); c.Next() {
			if !yield(c.Index(), c.Value()) {
				return
			}
		}
	}
}

// Collect materializes a Go iterator into a slice-backed sequence. The
// source is drained once, eagerly; it must be finite.
func Collect[T any](src iter.Seq[T]) Sequence[T] {
	return FromSlice(slices.Collect(src))
}
