package seqs

// Producer computes the outcome at a single non-negative index.
//
// A producer must be a pure function of its index for the lifetime of the
// sequence that owns it. Nothing deduplicates calls: probing the same index
// twice invokes the producer twice.
type Producer[T any] func(index int) Outcome[T]

// Sequence is an immutable handle over exactly one producer. Combinators
// return new sequences wrapping the old producer; no Sequence mutates
// another's state, so handles may be shared and forced any number of times.
type Sequence[T any] struct {
	produce Producer[T]
}

// New wraps a producer function as a sequence.
func New[T any](produce Producer[T]) Sequence[T] {
	return Sequence[T]{produce: produce}
}

// FromSlice wraps a fixed slice as a sequence: index i probes as
// Value(values[i]) for i < len(values) and as Stop beyond that.
func FromSlice[T any](values []T) Sequence[T] {
	return New(func(index int) Outcome[T] {
		if index >= len(values) {
			return Stop[T]()
		}
		return Value(values[index])
	})
}

// Generate builds an infinite sequence whose element at every index is
// f(index). The result never stops; force it only through [Take], a
// bounded cursor walk, or a stop-introducing combinator like [TakeWhile].
func Generate[T any](f func(index int) T) Sequence[T] {
	return New(func(index int) Outcome[T] {
		return Value(f(index))
	})
}

// Empty returns a sequence that stops at index 0.
func Empty[T any]() Sequence[T] {
	return New(func(int) Outcome[T] {
		return Stop[T]()
	})
}

// At probes the sequence's producer at the given index. This is the raw
// protocol; most callers want a forcing operation or a cursor instead.
func (s Sequence[T]) At(index int) Outcome[T] {
	return s.produce(index)
}

// Map applies transform to each element of seq, lazily. Constructing the
// mapped sequence invokes transform zero times; it runs once per index
// probed later, and skips and stops pass through untouched.
func Map[T, R any](seq Sequence[T], transform func(T) R) Sequence[R] {
	return New(func(index int) Outcome[R] {
		outcome := seq.At(index)
		switch outcome.Kind() {
		case KindValue:
			v, _ := outcome.Get()
			return Value(transform(v))
		case KindSkip:
			return Skip[R]()
		default:
			return Stop[R]()
		}
	})
}

// Filter keeps only the elements of seq that satisfy the predicate.
// A rejected element probes as a skip, not a stop, so iteration and
// further combinators continue past it. Already-skipped indices stay
// skipped without consulting the predicate.
func Filter[T any](seq Sequence[T], predicate func(T) bool) Sequence[T] {
	return New(func(index int) Outcome[T] {
		outcome := seq.At(index)
		if v, ok := outcome.Get(); ok && !predicate(v) {
			return Skip[T]()
		}
		return outcome
	})
}

// Peek performs the provided action on each element probed from the
// sequence without modifying it. It is useful for debugging (e.g., logging)
// or side effects. The action observes only value outcomes, and only when
// a downstream forcing operation actually probes them.
func Peek[T any](seq Sequence[T], action func(T)) Sequence[T] {
	return New(func(index int) Outcome[T] {
		outcome := seq.At(index)
		if v, ok := outcome.Get(); ok {
			action(v)
		}
		return outcome
	})
}

// TakeWhile ends the sequence at the first probed element that fails the
// predicate: that index and the walk beyond it probe as stops from the
// perspective of a forward forcing pass. Skips pass through unchanged.
func TakeWhile[T any](seq Sequence[T], predicate func(T) bool) Sequence[T] {
	return New(func(index int) Outcome[T] {
		outcome := seq.At(index)
		if v, ok := outcome.Get(); ok && !predicate(v) {
			return Stop[T]()
		}
		return outcome
	})
}
