package cursors

type sliceCursor[T any] struct {
	ReadOnly
	values []T
	pos    int
}

// OverSlice returns a read-only cursor over values.
// The slice is not copied; callers that keep mutating it should pass a clone.
func OverSlice[T any](values []T) Cursor[T] {
	return &sliceCursor[T]{values: values}
}

func (c *sliceCursor[T]) HasNext() bool {
	return c.pos < len(c.values)
}

func (c *sliceCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return Exhausted[T]()
	}
	v := c.values[c.pos]
	c.pos++
	return v, nil
}
