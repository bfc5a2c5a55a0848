package seqs

import (
	"lazily/cursors"
	"lazily/tuples"
)

// Enumerate pairs every element of s with its zero-based position.
// Each cursor counts from zero on its own.
func Enumerate[T any](s Sequence[T]) (Sequence[tuples.Pair[int, T]], error) {
	if err := checkUpstreams("enumerate", s); err != nil {
		return nil, err
	}
	return Func[tuples.Pair[int, T]](func() cursors.Cursor[tuples.Pair[int, T]] {
		return &enumerateCursor[T]{pipe: pipe[T]{upstream: s.Cursor()}}
	}), nil
}

type enumerateCursor[T any] struct {
	pipe[T]
	index int
}

func (c *enumerateCursor[T]) HasNext() bool { return c.upstreamHasNext() }

func (c *enumerateCursor[T]) Next() (tuples.Pair[int, T], error) {
	if !c.HasNext() {
		return cursors.Exhausted[tuples.Pair[int, T]]()
	}
	v, err := c.upstream.Next()
	if err != nil {
		return tuples.Pair[int, T]{}, err
	}
	p := tuples.Of2(c.index, v)
	c.index++
	return p, nil
}
