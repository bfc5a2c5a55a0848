package cursors

import "iter"

// PullCursor adapts a push-style iter.Seq into a Cursor.
//
// The source is not started until the first HasNext or Next call, so a
// cursor that is created and dropped costs nothing. Answering HasNext pulls
// one element ahead and holds it until Next hands it out.
type PullCursor[T any] struct {
	ReadOnly

	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()

	head   T
	peeked bool
	done   bool
}

func FromPull[T any](seq iter.Seq[T]) *PullCursor[T] {
	return &PullCursor[T]{seq: seq}
}

func (c *PullCursor[T]) HasNext() bool {
	if c.done {
		return false
	}
	if c.peeked {
		return true
	}
	if c.next == nil {
		c.next, c.stop = iter.Pull(c.seq)
	}
	v, ok := c.next()
	if !ok {
		c.finish()
		return false
	}
	c.head, c.peeked = v, true
	return true
}

func (c *PullCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return Exhausted[T]()
	}
	v := c.head
	var zero T
	c.head, c.peeked = zero, false
	return v, nil
}

// Close stops the source and marks the cursor exhausted.
func (c *PullCursor[T]) Close() error {
	c.finish()
	return nil
}

func (c *PullCursor[T]) finish() {
	var zero T
	c.head, c.peeked, c.done = zero, false, true
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}
