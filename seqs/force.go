package seqs

// ToSlice forces the whole sequence: it walks indices from 0, appending
// values in order, passing over skips, and halting at the first stop.
// It does not return on a sequence that never stops.
func ToSlice[T any](seq Sequence[T]) []T {
	var result []T
	for index := 0; ; index++ {
		outcome := seq.At(index)
		if outcome.Kind() == KindStop {
			return result
		}
		if v, ok := outcome.Get(); ok {
			result = append(result, v)
		}
	}
}

// Take forces at most count values from the sequence. Skipped indices do
// not count toward the limit, so after a [Filter] the limit applies to the
// surviving elements. If the sequence stops early the result holds whatever
// was realized, unpadded. A count <= 0 returns an empty result without
// probing the producer at all, which makes Take safe on infinite sequences
// whenever count is finite.
func Take[T any](seq Sequence[T], count int) []T {
	if count <= 0 {
		return nil
	}
	result := make([]T, 0, count)
	for index := 0; ; index++ {
		outcome := seq.At(index)
		if outcome.Kind() == KindStop {
			return result
		}
		if v, ok := outcome.Get(); ok {
			result = append(result, v)
			if len(result) == count {
				return result
			}
		}
	}
}

// Reduce aggregates the elements of seq using the reducer function,
// starting from the initial value. It is a strict left fold over the
// non-skipped elements in index order; on an empty sequence the initial
// value comes back untouched with the reducer never invoked.
func Reduce[T, R any](seq Sequence[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for index := 0; ; index++ {
		outcome := seq.At(index)
		if outcome.Kind() == KindStop {
			return acc
		}
		if v, ok := outcome.Get(); ok {
			acc = reducer(acc, v)
		}
	}
}

// ForEach forces the sequence for the action's side effects.
func ForEach[T any](seq Sequence[T], action func(T)) {
	for index := 0; ; index++ {
		outcome := seq.At(index)
		if outcome.Kind() == KindStop {
			return
		}
		if v, ok := outcome.Get(); ok {
			action(v)
		}
	}
}
