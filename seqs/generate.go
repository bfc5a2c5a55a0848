package seqs

import "lazily/cursors"

// Range yields start, start+step, ... up to but excluding end.
// A zero step yields nothing; a negative step counts down.
func Range(start, end, step int) Sequence[int] {
	return Func[int](func() cursors.Cursor[int] {
		return &rangeCursor{next: start, end: end, step: step}
	})
}

type rangeCursor struct {
	cursors.ReadOnly
	next, end, step int
}

func (c *rangeCursor) HasNext() bool {
	return c.step > 0 && c.next < c.end || c.step < 0 && c.next > c.end
}

func (c *rangeCursor) Next() (int, error) {
	if !c.HasNext() {
		return cursors.Exhausted[int]()
	}
	v := c.next
	// distances are unsigned so a step past the int range ends the cursor
	// instead of wrapping around
	var left, stride uint
	if c.step > 0 {
		left, stride = uint(c.end)-uint(v), uint(c.step)
	} else {
		left, stride = uint(v)-uint(c.end), -uint(c.step)
	}
	if stride >= left {
		c.step = 0
	} else {
		c.next += c.step
	}
	return v, nil
}

// Repeat yields value count times.
func Repeat[T any](value T, count int) Sequence[T] {
	return Func[T](func() cursors.Cursor[T] {
		return &repeatCursor[T]{value: value, remaining: count}
	})
}

type repeatCursor[T any] struct {
	cursors.ReadOnly
	value     T
	remaining int
}

func (c *repeatCursor[T]) HasNext() bool { return c.remaining > 0 }

func (c *repeatCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return cursors.Exhausted[T]()
	}
	c.remaining--
	return c.value, nil
}
