/*
Package seqs provides a lazy, index-addressable sequence abstraction.

A [Sequence] wraps a single [Producer]: a pure function from a non-negative
index to one of three probe outcomes — a value, a skip (no element at this
index, but the sequence continues), or a stop (the sequence ends here).
Everything else is built on that one contract:

  - **Combinators**: [Map], [Filter], [Peek], [TakeWhile] wrap a sequence's
    producer without evaluating anything. Chained combinators fuse into a
    single producer evaluated index by index; no intermediate collection is
    ever materialized.
  - **Forcing**: [ToSlice], [Reduce], [Take], [ForEach] and the sinks
    ([First], [Any], [Count], ...) walk the producer from index 0 upward,
    realizing values until a stop (or, for [Take], a count limit).
  - **External iteration**: [Sequence.Cursor] yields an explicit cursor with
    stable, contiguous 0-based positions even across filtered-out elements.
  - **Bridging**: [Values] and [Enumerate] expose a sequence as a Go 1.23
    iterator; [Collect] goes the other way.

# Laziness

Constructing a combinator chain invokes no user function. Transforms and
predicates run only when a forcing operation (or a cursor) actually probes
an index, and only for the indices probed:

	squares := seqs.Map(seqs.Generate(func(i int) int { return i }), square)
	seqs.Take(squares, 5) // evaluates square exactly five times

The skip outcome is what lets [Filter] compose: a rejected element marks its
index as skipped rather than ending the sequence, so iteration, [Take], and
further combinators keep going past it.

# Purity

A producer must be a pure function of its index. Nothing is cached: re-reading
an index re-invokes the producer chain, and forcing an infinite sequence that
never stops does not return. On those terms a Sequence is immutable and freely
shareable; any number of independent forcing passes and cursors may walk the
same handle.
*/
package seqs
