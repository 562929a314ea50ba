package seqs

import "fmt"

// Kind identifies which of the three probe outcomes an [Outcome] carries.
type Kind uint8

const (
	// KindSkip means no element exists at the probed index, but the
	// sequence continues past it. Filtered-out elements probe as skips.
	KindSkip Kind = iota

	// KindValue means the probed index holds a realized element.
	KindValue

	// KindStop means the sequence has no further elements from the probed
	// index onward.
	KindStop
)

func (k Kind) String() string {
	switch k {
	case KindSkip:
		return "Skip"
	case KindValue:
		return "Value"
	case KindStop:
		return "Stop"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Outcome is the result of probing a producer at a single index.
// The zero Outcome is a skip.
type Outcome[T any] struct {
	value T
	kind  Kind
}

// Value returns an outcome carrying a realized element.
func Value[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, kind: KindValue}
}

// Skip returns the outcome marking an index with no element where the
// sequence continues.
func Skip[T any]() Outcome[T] {
	return Outcome[T]{kind: KindSkip}
}

// Stop returns the outcome marking the end of the sequence.
func Stop[T any]() Outcome[T] {
	return Outcome[T]{kind: KindStop}
}

// Kind reports which variant this outcome is.
func (o Outcome[T]) Kind() Kind {
	return o.kind
}

// Get returns the carried element. The second result is false unless the
// outcome is a value; for skip and stop the element is the zero value of T.
func (o Outcome[T]) Get() (T, bool) {
	if o.kind != KindValue {
		var zero T
		return zero, false
	}
	return o.value, true
}

func (o Outcome[T]) String() string {
	if o.kind == KindValue {
		return fmt.Sprintf("Value[%v]", o.value)
	}
	return o.kind.String()
}
