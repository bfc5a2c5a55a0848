// Package eager drains sequence definitions into concrete results.
// Every function opens its own cursor, so the definition can be reused.
// A nil sequence fails with seqs.ErrNilUpstream and a nil callback with
// seqs.ErrNilFunction.
package eager

import (
	"github.com/pkg/errors"

	"lazily/cursors"
	"lazily/seqs"
)

func check[T any](op string, s seqs.Sequence[T], haveFn bool) error {
	if err := seqs.RequireUpstream(op, s); err != nil {
		return err
	}
	if !haveFn {
		return errors.Wrap(seqs.ErrNilFunction, op)
	}
	return nil
}

// Materialize collects every element of s into a new slice.
func Materialize[T any](s seqs.Sequence[T]) ([]T, error) {
	if err := seqs.RequireUpstream("materialize", s); err != nil {
		return nil, err
	}
	return cursors.Collect(s.Cursor())
}

func First[T any](s seqs.Sequence[T]) (T, bool, error) {
	if err := seqs.RequireUpstream("first", s); err != nil {
		var zero T
		return zero, false, err
	}
	for v, err := range seqs.TryValues(s) {
		if err != nil {
			return v, false, err
		}
		return v, true, nil
	}
	var zero T
	return zero, false, nil
}

func Last[T any](s seqs.Sequence[T]) (T, bool, error) {
	var last T
	if err := seqs.RequireUpstream("last", s); err != nil {
		return last, false, err
	}
	found := false
	for v, err := range seqs.TryValues(s) {
		if err != nil {
			return last, found, err
		}
		last, found = v, true
	}
	return last, found, nil
}

func Count[T any](s seqs.Sequence[T]) (int, error) {
	if err := seqs.RequireUpstream("count", s); err != nil {
		return 0, err
	}
	n := 0
	for _, err := range seqs.TryValues(s) {
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Any stops pulling as soon as an element satisfies predicate.
func Any[T any](s seqs.Sequence[T], predicate func(T) bool) (bool, error) {
	if err := check("any", s, predicate != nil); err != nil {
		return false, err
	}
	for v, err := range seqs.TryValues(s) {
		if err != nil {
			return false, err
		}
		if predicate(v) {
			return true, nil
		}
	}
	return false, nil
}

// All stops pulling as soon as an element fails predicate.
func All[T any](s seqs.Sequence[T], predicate func(T) bool) (bool, error) {
	if err := check("all", s, predicate != nil); err != nil {
		return false, err
	}
	for v, err := range seqs.TryValues(s) {
		if err != nil {
			return false, err
		}
		if !predicate(v) {
			return false, nil
		}
	}
	return true, nil
}

// Reduce folds the elements of s into an accumulator starting at initial.
func Reduce[T, R any](s seqs.Sequence[T], initial R, reducer func(R, T) R) (R, error) {
	acc := initial
	if err := check("reduce", s, reducer != nil); err != nil {
		return acc, err
	}
	for v, err := range seqs.TryValues(s) {
		if err != nil {
			return acc, err
		}
		acc = reducer(acc, v)
	}
	return acc, nil
}
