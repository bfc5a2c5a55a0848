package cursors

import (
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrExhausted is returned by Next when the cursor has no further data.
	ErrExhausted = errors.New("cursor exhausted")

	// ErrRemoveUnsupported is returned by Remove on cursors that are read-only
	// views over their source.
	ErrRemoveUnsupported = errors.New("remove not supported by cursor")

	// ErrIllegalState is returned by Remove when there is no current element,
	// either because Next was never called or the element was already removed.
	ErrIllegalState = errors.New("no current element to remove")
)

// Cursor is a single traversal over a sequence.
type Cursor[T any] interface {
	// HasNext reports whether Next will produce an element.
	// It does not change which element Next returns.
	HasNext() bool

	// Next returns the next element and advances the cursor.
	// It returns ErrExhausted when HasNext would report false.
	Next() (T, error)

	// Remove deletes the element most recently returned by Next from the
	// underlying source.
	Remove() error
}

// ReadOnly can be embedded by cursors that cannot remove elements.
type ReadOnly struct{}

func (ReadOnly) Remove() error { return ErrRemoveUnsupported }

// Close releases c if it holds anything worth releasing.
func Close[T any](c Cursor[T]) error {
	if closer, ok := c.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Exhausted returns the zero value of T together with ErrExhausted.
func Exhausted[T any]() (T, error) {
	var zero T
	return zero, ErrExhausted
}
