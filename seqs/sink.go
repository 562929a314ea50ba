package seqs

// First forces the sequence just far enough to realize one element.
func First[T any](seq Sequence[T]) (T, bool) {
	for v := range Values(seq) {
		return v, true
	}
	var zero T
	return zero, false
}

// Last forces the whole sequence and returns its final element.
func Last[T any](seq Sequence[T]) (T, bool) {
	var last T
	found := false
	for v := range Values(seq) {
		last = v
		found = true
	}
	return last, found
}

// Any reports whether some element satisfies the predicate, stopping at
// the first match.
func Any[T any](seq Sequence[T], predicate func(T) bool) bool {
	for v := range Values(seq) {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies the predicate, stopping at
// the first failure.
func All[T any](seq Sequence[T], predicate func(T) bool) bool {
	for v := range Values(seq) {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Count forces the sequence and returns the number of realized elements.
// Skipped indices are not counted.
func Count[T any](seq Sequence[T]) int {
	count := 0
	for range Values(seq) {
		count++
	}
	return count
}
