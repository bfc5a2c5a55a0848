package seqs

import (
	"slices"

	"github.com/pkg/errors"

	"lazily/cursors"
	"lazily/internal/logging"
	"lazily/predicates"
)

// ErrNilFunction is returned when a combinator is given a nil callback.
var ErrNilFunction = errors.New("nil function")

// Map applies transform to each element as it is pulled.
func Map[T, R any](s Sequence[T], transform func(T) R) (Sequence[R], error) {
	if err := checkUpstreams("map", s); err != nil {
		return nil, err
	}
	if transform == nil {
		return nil, errors.Wrap(ErrNilFunction, "map")
	}
	return Func[R](func() cursors.Cursor[R] {
		return &mapCursor[T, R]{pipe: pipe[T]{upstream: s.Cursor()}, transform: transform}
	}), nil
}

type mapCursor[T, R any] struct {
	pipe[T]
	transform func(T) R
}

func (c *mapCursor[T, R]) HasNext() bool { return c.upstreamHasNext() }

func (c *mapCursor[T, R]) Next() (R, error) {
	if !c.HasNext() {
		return cursors.Exhausted[R]()
	}
	v, err := c.upstream.Next()
	if err != nil {
		var zero R
		return zero, err
	}
	return c.transform(v), nil
}

// Filter keeps the elements that satisfy keep.
//
// Answering HasNext may pull several upstream elements until one matches.
// If the upstream fails while doing so, HasNext reports true and the next
// call to Next returns that failure.
func Filter[T any](s Sequence[T], keep func(T) bool) (Sequence[T], error) {
	if err := checkUpstreams("filter", s); err != nil {
		return nil, err
	}
	if keep == nil {
		return nil, errors.Wrap(ErrNilFunction, "filter")
	}
	return Func[T](func() cursors.Cursor[T] {
		return &filterCursor[T]{pipe: pipe[T]{upstream: s.Cursor()}, keep: keep}
	}), nil
}

// Select is Filter driven by a self-describing predicate.
func Select[T any](s Sequence[T], p predicates.Predicate[T]) (Sequence[T], error) {
	if err := checkUpstreams("select", s, p); err != nil {
		return nil, err
	}
	return Func[T](func() cursors.Cursor[T] {
		logging.Debug().Str("predicate", p.Describe()).Msg("opening select cursor")
		return &filterCursor[T]{pipe: pipe[T]{upstream: s.Cursor()}, keep: p.Test}
	}), nil
}

type filterCursor[T any] struct {
	pipe[T]
	keep func(T) bool

	head   T
	err    error
	peeked bool
}

func (c *filterCursor[T]) HasNext() bool {
	if c.peeked {
		return true
	}
	for c.upstreamHasNext() {
		v, err := c.upstream.Next()
		if err != nil {
			c.err, c.peeked = err, true
			return true
		}
		if c.keep(v) {
			c.head, c.peeked = v, true
			return true
		}
	}
	return false
}

// Close drops any element held by HasNext along with the upstream.
func (c *filterCursor[T]) Close() error {
	var zero T
	c.head, c.err, c.peeked = zero, nil, false
	return c.pipe.Close()
}

func (c *filterCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return cursors.Exhausted[T]()
	}
	v, err := c.head, c.err
	var zero T
	c.head, c.err, c.peeked = zero, nil, false
	return v, err
}

// Take yields at most n elements. The upstream is released as soon as the
// limit is reached.
func Take[T any](s Sequence[T], n int) (Sequence[T], error) {
	if err := checkUpstreams("take", s); err != nil {
		return nil, err
	}
	return Func[T](func() cursors.Cursor[T] {
		return &takeCursor[T]{pipe: pipe[T]{upstream: s.Cursor()}, remaining: n}
	}), nil
}

type takeCursor[T any] struct {
	pipe[T]
	remaining int
}

func (c *takeCursor[T]) HasNext() bool {
	if c.remaining <= 0 {
		_ = c.Close()
		return false
	}
	return c.upstreamHasNext()
}

func (c *takeCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return cursors.Exhausted[T]()
	}
	v, err := c.upstream.Next()
	if err != nil {
		return v, err
	}
	c.remaining--
	return v, nil
}

// Skip drops the first n elements. They are pulled on the first HasNext or
// Next, not when the cursor is created.
func Skip[T any](s Sequence[T], n int) (Sequence[T], error) {
	if err := checkUpstreams("skip", s); err != nil {
		return nil, err
	}
	return Func[T](func() cursors.Cursor[T] {
		return &skipCursor[T]{pipe: pipe[T]{upstream: s.Cursor()}, skip: n}
	}), nil
}

type skipCursor[T any] struct {
	pipe[T]
	skip int
	err  error
}

func (c *skipCursor[T]) HasNext() bool {
	if c.err != nil {
		return true
	}
	for c.skip > 0 {
		if !c.upstreamHasNext() {
			return false
		}
		c.skip--
		if _, err := c.upstream.Next(); err != nil {
			c.err = err
			return true
		}
	}
	return c.upstreamHasNext()
}

func (c *skipCursor[T]) Close() error {
	c.err, c.skip = nil, 0
	return c.pipe.Close()
}

func (c *skipCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return cursors.Exhausted[T]()
	}
	if err := c.err; err != nil {
		c.err = nil
		var zero T
		return zero, err
	}
	return c.upstream.Next()
}

// Concat yields every element of each sequence in turn. A cursor on the next
// sequence is opened only once the previous one is exhausted.
func Concat[T any](seqs ...Sequence[T]) (Sequence[T], error) {
	upstreams := make([]any, len(seqs))
	for i, s := range seqs {
		upstreams[i] = s
	}
	if err := checkUpstreams("concat", upstreams...); err != nil {
		return nil, err
	}
	snapshot := slices.Clone(seqs)
	return Func[T](func() cursors.Cursor[T] {
		return &concatCursor[T]{rest: snapshot}
	}), nil
}

type concatCursor[T any] struct {
	cursors.ReadOnly
	rest    []Sequence[T]
	current cursors.Cursor[T]
	done    bool
}

func (c *concatCursor[T]) HasNext() bool {
	if c.done {
		return false
	}
	for {
		if c.current != nil {
			if c.current.HasNext() {
				return true
			}
			_ = cursors.Close(c.current)
			c.current = nil
		}
		if len(c.rest) == 0 {
			c.done = true
			return false
		}
		c.current, c.rest = c.rest[0].Cursor(), c.rest[1:]
	}
}

func (c *concatCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return cursors.Exhausted[T]()
	}
	return c.current.Next()
}

func (c *concatCursor[T]) Close() error {
	c.done, c.rest = true, nil
	if c.current == nil {
		return nil
	}
	err := cursors.Close(c.current)
	c.current = nil
	return err
}
