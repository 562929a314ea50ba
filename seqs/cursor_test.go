package seqs_test

import (
	"lazyseq/seqs"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

type indexValue struct {
	Index int
	Value int
}

func drain(c *seqs.Cursor[int]) []indexValue {
	var got []indexValue
	for ; c.IsValid(); c.Next() {
		got = append(got, indexValue{c.Index(), c.Value()})
	}
	return got
}

func TestCursorFilteredIteration(t *testing.T) {
	seq := seqs.Filter(seqs.FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}), isOdd)
	got := drain(seq.Cursor())

	// External positions stay contiguous across the filtered-out indices.
	want := []indexValue{{0, 1}, {1, 3}, {2, 5}, {3, 7}, {4, 9}}
	require.Equal(t, want, got)
}

func TestCursorReset(t *testing.T) {
	seq := seqs.Filter(seqs.FromSlice([]int{1, 2, 3, 4, 5}), isOdd)
	c := seq.Cursor()

	first := drain(c)
	require.False(t, c.IsValid())

	c.Reset()
	second := drain(c)
	require.Equal(t, first, second)

	// A reset mid-pass restarts from position 0 as well.
	c.Reset()
	c.Next()
	c.Reset()
	require.Equal(t, 0, c.Index())
	require.Equal(t, 1, c.Value())
}

func TestCursorInvalid(t *testing.T) {
	c := seqs.Empty[int]().Cursor()
	require.False(t, c.IsValid())
	require.Equal(t, -1, c.Index())
	require.Zero(t, c.Value())
	require.Equal(t, "Cursor[invalid]", c.String())

	// Next at the end keeps the cursor where it is.
	c.Next()
	require.False(t, c.IsValid())
	require.Equal(t, -1, c.Index())
}

func TestCursorString(t *testing.T) {
	c := seqs.FromSlice([]int{7}).Cursor()
	require.Equal(t, "Cursor[7]", c.String())
}

func TestCursorClone(t *testing.T) {
	seq := seqs.FromSlice([]int{10, 20, 30})
	c := seq.Cursor()
	c.Next()

	clone := c.Clone()
	clone.Next()

	require.Equal(t, 20, c.Value())
	require.Equal(t, 1, c.Index())
	require.Equal(t, 30, clone.Value())
	require.Equal(t, 2, clone.Index())
}

func TestCursorNoRedundantProbes(t *testing.T) {
	// Every underlying index is probed at most once per pass: the skip
	// offset carries forward, and the resolved outcome is cached per
	// position.
	probed := map[int]int{}
	base := seqs.New(func(index int) seqs.Outcome[int] {
		probed[index]++
		if index >= 9 {
			return seqs.Stop[int]()
		}
		return seqs.Value(index + 1)
	})
	seq := seqs.Filter(base, isOdd)

	c := seq.Cursor()
	for ; c.IsValid(); c.Next() {
		_ = c.Value()
		_ = c.Index()
	}

	for index, count := range probed {
		require.Equalf(t, 1, count, "index %d probed %d times", index, count)
	}
}

func TestCursorSeq(t *testing.T) {
	seq := seqs.Filter(seqs.FromSlice([]int{1, 2, 3, 4, 5, 6, 7}), isOdd)
	c := seq.Cursor()
	c.Next() // position 1, value 3

	got := slices.Collect(c.Seq())
	require.Equal(t, []int{3, 5, 7}, got)

	// The view does not move the cursor itself.
	require.Equal(t, 1, c.Index())
	require.Equal(t, 3, c.Value())
}

func TestCursorIndependentPasses(t *testing.T) {
	seq := seqs.Filter(seqs.FromSlice([]int{1, 2, 3, 4, 5}), isOdd)

	a := seq.Cursor()
	b := seq.Cursor()
	a.Next()
	a.Next()

	// Cursor state never leaks into the sequence or a sibling cursor.
	require.Equal(t, 0, b.Index())
	require.Equal(t, 1, b.Value())
	require.Equal(t, 5, a.Value())
}
