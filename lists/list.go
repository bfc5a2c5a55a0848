// Package lists provides mutable containers that double as sequence
// definitions: every call to Cursor starts a new traversal, and list cursors
// can remove the element they just produced.
package lists

import (
	"github.com/pkg/errors"

	"lazily/cursors"
)

var ErrIndexOutOfBounds = errors.New("index out of bounds")

// List is an ordered container usable as an upstream sequence.
type List[T any] interface {
	// Add appends values to the end of the list.
	Add(values ...T)

	// Insert places value at index, shifting later elements right.
	// Index may equal Size to append.
	Insert(index int, value T) error

	Get(index int) (T, error)
	Set(index int, value T) error

	// Remove deletes and returns the element at index.
	Remove(index int) (T, error)

	Size() int
	IsEmpty() bool
	Clear()

	// IndexOf returns the first index whose element equals value, or -1.
	IndexOf(value T, equal func(a, b T) bool) int

	ToSlice() []T

	// Cursor starts a new traversal from the front of the list.
	Cursor() cursors.Cursor[T]
}

// Contains reports whether l holds v.
func Contains[T comparable](l List[T], v T) bool {
	return l.IndexOf(v, func(a, b T) bool { return a == b }) >= 0
}
