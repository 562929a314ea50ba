package seqs

import (
	"fmt"
	"iter"
)

// Cursor supports stepwise external iteration over a sequence.
//
// A cursor keeps two counters: the external position (contiguous from 0,
// one per realized element, the value [Cursor.Index] reports) and a skip
// offset (how many underlying indices have resolved as skips so far).
// The element at a position lives at underlying index position+offset;
// resolving it scans forward over skips, growing the offset, so a pass
// never re-scans indices an earlier position already resolved as skipped.
//
// Cursor state belongs to the cursor, not the sequence: any number of
// cursors may walk one handle independently, but a single cursor is not
// safe for concurrent use.
type Cursor[T any] struct {
	seq      Sequence[T]
	pos      int
	offset   int
	outcome  Outcome[T]
	resolved bool
}

// Cursor returns a new cursor positioned at the first element.
// If the sequence is empty, it returns an invalid cursor.
func (s Sequence[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{seq: s}
}

// resolve probes underlying indices from pos+offset until a non-skip
// outcome, caching it for the current position.
func (c *Cursor[T]) resolve() Outcome[T] {
	if c.resolved {
		return c.outcome
	}
	for {
		outcome := c.seq.At(c.pos + c.offset)
		if outcome.Kind() != KindSkip {
			c.outcome = outcome
			c.resolved = true
			return outcome
		}
		c.offset++
	}
}

// IsValid checks if the cursor is at a realized element. It reports false
// once the sequence has stopped. On a sequence that skips forever without
// stopping, IsValid does not return.
func (c *Cursor[T]) IsValid() bool {
	return c.resolve().Kind() == KindValue
}

// Value returns the value at the current cursor position.
// If the cursor is invalid, it returns the zero value of T.
func (c *Cursor[T]) Value() (val T) {
	val, _ = c.resolve().Get()
	return val
}

// Index returns the external position of the cursor: 0 for the first
// realized element, counting up by one per element with no gaps for
// filtered-out indices. If the cursor is invalid, it returns -1.
func (c *Cursor[T]) Index() int {
	if !c.IsValid() {
		return -1
	}
	return c.pos
}

// Next moves the cursor to the next element. The skip offset is retained,
// so the scan resumes exactly where the current position's resolution
// stopped. If already at the end, the cursor stays there.
func (c *Cursor[T]) Next() {
	if c.resolve().Kind() == KindStop {
		return
	}
	c.pos++
	c.resolved = false
}

// Reset rewinds the cursor to position 0, clearing both counters. A fresh
// pass over a pure producer yields the same elements as the first.
func (c *Cursor[T]) Reset() {
	c.pos = 0
	c.offset = 0
	c.resolved = false
}

// Clone creates a copy of the cursor at the same position. The copy
// advances and resets independently.
func (c *Cursor[T]) Clone() *Cursor[T] {
	clone := *c
	return &clone
}

// String returns a string representation of the cursor
func (c *Cursor[T]) String() string {
	if c.IsValid() {
		return fmt.Sprintf("Cursor[%v]", c.Value())
	}
	return "Cursor[invalid]"
}

// Seq returns a sequence that iterates from the current cursor position.
// The cursor itself is not modified.
func (c *Cursor[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk := c.Clone()
		for walk.IsValid() {
			if !yield(walk.Value()) {
				return
			}
			walk.Next()
		}
	}
}
