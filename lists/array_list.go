package lists

import (
	"slices"

	"lazily/cursors"
)

// ArrayList is a slice-backed List.
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	return &ArrayList[T]{data: make([]T, 0, max(initialCapacity, 0))}
}

// ArrayListOf returns a list holding a copy of values.
func ArrayListOf[T any](values ...T) *ArrayList[T] {
	return &ArrayList[T]{data: slices.Clone(values)}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data = slices.Insert(al.data, index, value)
	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	removed := al.data[index]
	// slices.Delete zeroes the vacated tail slot so it can be collected
	al.data = slices.Delete(al.data, index, index+1)
	return removed, nil
}

func (al *ArrayList[T]) Size() int { return len(al.data) }

func (al *ArrayList[T]) IsEmpty() bool { return len(al.data) == 0 }

func (al *ArrayList[T]) Clear() {
	clear(al.data)
	al.data = al.data[:0]
}

func (al *ArrayList[T]) IndexOf(value T, equal func(a, b T) bool) int {
	return slices.IndexFunc(al.data, func(v T) bool { return equal(v, value) })
}

func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

// Cursor walks the list front to back. The length is re-read on every
// HasNext, so elements appended mid-traversal are visited, unless the cursor
// has already reported exhaustion.
func (al *ArrayList[T]) Cursor() cursors.Cursor[T] {
	return &arrayCursor[T]{list: al, last: -1}
}

type arrayCursor[T any] struct {
	list *ArrayList[T]
	next int
	last int
	done bool
}

func (c *arrayCursor[T]) HasNext() bool {
	if c.done {
		return false
	}
	if c.next >= len(c.list.data) {
		c.done = true
		return false
	}
	return true
}

func (c *arrayCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return cursors.Exhausted[T]()
	}
	v := c.list.data[c.next]
	c.last = c.next
	c.next++
	return v, nil
}

// Remove deletes the element returned by the latest Next.
func (c *arrayCursor[T]) Remove() error {
	if c.last < 0 {
		return cursors.ErrIllegalState
	}
	if _, err := c.list.Remove(c.last); err != nil {
		return err
	}
	c.next = c.last
	c.last = -1
	return nil
}
