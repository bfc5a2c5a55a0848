// Package predicates provides predicates that can describe themselves, so
// that a filter can be explained in logs and error messages.
package predicates

import (
	"fmt"
	"strings"
)

type Predicate[T any] interface {
	Test(T) bool
	Describe() string
}

type described[T any] struct {
	fn   func(T) bool
	desc string
}

func (d described[T]) Test(v T) bool    { return d.fn(v) }
func (d described[T]) Describe() string { return d.desc }
func (d described[T]) String() string   { return d.desc }

// New wraps fn with a description.
func New[T any](desc string, fn func(T) bool) Predicate[T] {
	return described[T]{fn: fn, desc: desc}
}

func Equal[T comparable](want T) Predicate[T] {
	return New(fmt.Sprintf("equal to %v", want), func(v T) bool { return v == want })
}

func Not[T any](p Predicate[T]) Predicate[T] {
	return New("not("+p.Describe()+")", func(v T) bool { return !p.Test(v) })
}

// And is satisfied when every predicate is. An empty And is always true.
func And[T any](ps ...Predicate[T]) Predicate[T] {
	return New(join("and", ps), func(v T) bool {
		for _, p := range ps {
			if !p.Test(v) {
				return false
			}
		}
		return true
	})
}

// Or is satisfied when any predicate is. An empty Or is always false.
func Or[T any](ps ...Predicate[T]) Predicate[T] {
	return New(join("or", ps), func(v T) bool {
		for _, p := range ps {
			if p.Test(v) {
				return true
			}
		}
		return false
	})
}

func join[T any](op string, ps []Predicate[T]) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.Describe()
	}
	return op + "(" + strings.Join(parts, ", ") + ")"
}
