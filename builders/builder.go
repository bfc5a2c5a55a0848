// Package builders accumulates elements fluently and hands them back as a
// slice, a list or an immutable sequence.
package builders

import (
	"slices"

	"lazily/cursors"
	"lazily/lists"
	"lazily/seqs"
)

// Builder collects elements. The zero value is ready to use.
type Builder[T any] struct {
	elements []T
	err      error
}

func New[T any]() *Builder[T] {
	return &Builder[T]{}
}

func (b *Builder[T]) With(values ...T) *Builder[T] {
	b.elements = append(b.elements, values...)
	return b
}

// And is an alias of With for readability in chains.
func (b *Builder[T]) And(values ...T) *Builder[T] {
	return b.With(values...)
}

// WithAll drains a fresh cursor of s into the builder. The first failure is
// remembered and reported by every Build method; later calls are ignored.
// A nil s is recorded as seqs.ErrNilUpstream.
func (b *Builder[T]) WithAll(s seqs.Sequence[T]) *Builder[T] {
	if b.err != nil {
		return b
	}
	if b.err = seqs.RequireUpstream("with all", s); b.err != nil {
		return b
	}
	for v, err := range cursors.TryAll(s.Cursor()) {
		if err != nil {
			b.err = err
			return b
		}
		b.elements = append(b.elements, v)
	}
	return b
}

func (b *Builder[T]) Build() ([]T, error) {
	if b.err != nil {
		return nil, b.err
	}
	return slices.Clone(b.elements), nil
}

func (b *Builder[T]) BuildList() (*lists.ArrayList[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	return lists.ArrayListOf(b.elements...), nil
}

// BuildSequence returns a snapshot; later additions to b are not visible.
func (b *Builder[T]) BuildSequence() (seqs.Sequence[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	return seqs.Of(b.elements...), nil
}
