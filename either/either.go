// Package either models a value that is exactly one of two alternatives.
//
// The set of variants is closed: only Left and Right implement Either.
// Values of different instantiations are different Go types and never
// compare equal; within one instantiation == compares the variant and its
// payload.
package either

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNilMapper is the panic value used when a mapping function is nil.
var ErrNilMapper = errors.New("either: nil mapping function")

type Either[L, R any] interface {
	IsLeft() bool
	IsRight() bool

	GetLeft() (L, bool)
	GetRight() (R, bool)

	LeftOrElse(fallback L) L
	RightOrElse(fallback R) R

	sealed()
}

type Left[L, R any] struct {
	value L
}

type Right[L, R any] struct {
	value R
}

func NewLeft[L, R any](value L) Either[L, R] { return Left[L, R]{value: value} }

func NewRight[L, R any](value R) Either[L, R] { return Right[L, R]{value: value} }

func (Left[L, R]) IsLeft() bool  { return true }
func (Left[L, R]) IsRight() bool { return false }

func (l Left[L, R]) GetLeft() (L, bool) { return l.value, true }

func (Left[L, R]) GetRight() (r R, ok bool) { return r, false }

func (l Left[L, R]) LeftOrElse(L) L { return l.value }

func (Left[L, R]) RightOrElse(fallback R) R { return fallback }

func (l Left[L, R]) String() string { return fmt.Sprintf("Either::Left[%v]", l.value) }

func (Left[L, R]) sealed() {}

func (Right[L, R]) IsLeft() bool  { return false }
func (Right[L, R]) IsRight() bool { return true }

func (Right[L, R]) GetLeft() (l L, ok bool) { return l, false }

func (r Right[L, R]) GetRight() (R, bool) { return r.value, true }

func (Right[L, R]) LeftOrElse(fallback L) L { return fallback }

func (r Right[L, R]) RightOrElse(R) R { return r.value }

func (r Right[L, R]) String() string { return fmt.Sprintf("Either::Right[%v]", r.value) }

func (Right[L, R]) sealed() {}

// Map transforms the right value, leaving a left untouched.
func Map[L, R, S any](e Either[L, R], f func(R) S) Either[L, S] {
	return MapRight(e, f)
}

func MapRight[L, R, S any](e Either[L, R], f func(R) S) Either[L, S] {
	if f == nil {
		panic(ErrNilMapper)
	}
	if r, ok := e.GetRight(); ok {
		return NewRight[L](f(r))
	}
	l, _ := e.GetLeft()
	return NewLeft[L, S](l)
}

func MapLeft[L, R, M any](e Either[L, R], f func(L) M) Either[M, R] {
	if f == nil {
		panic(ErrNilMapper)
	}
	if l, ok := e.GetLeft(); ok {
		return NewLeft[M, R](f(l))
	}
	r, _ := e.GetRight()
	return NewRight[M](r)
}

// MapAll applies whichever mapper matches the variant held by e.
func MapAll[L, R, M, S any](e Either[L, R], onLeft func(L) M, onRight func(R) S) Either[M, S] {
	if onLeft == nil || onRight == nil {
		panic(ErrNilMapper)
	}
	if l, ok := e.GetLeft(); ok {
		return NewLeft[M, S](onLeft(l))
	}
	r, _ := e.GetRight()
	return NewRight[M](onRight(r))
}
