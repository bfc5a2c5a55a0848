package seqs

import (
	"iter"
	"reflect"
	"slices"

	"github.com/pkg/errors"

	"lazily/cursors"
	"lazily/internal/logging"
	"lazily/tuples"
)

// ErrNilUpstream is returned when a combinator is given a nil upstream.
var ErrNilUpstream = errors.New("nil upstream sequence")

// Sequence is an immutable, restartable definition of a traversal.
//
// Cursor must return a new cursor on every call and must not alter the
// definition or any cursor previously obtained from it.
type Sequence[T any] interface {
	Cursor() cursors.Cursor[T]
}

// Func adapts a cursor factory into a Sequence.
type Func[T any] func() cursors.Cursor[T]

func (f Func[T]) Cursor() cursors.Cursor[T] { return f() }

// Of returns a sequence over a private copy of values.
func Of[T any](values ...T) Sequence[T] {
	snapshot := slices.Clone(values)
	return Func[T](func() cursors.Cursor[T] {
		return cursors.OverSlice(snapshot)
	})
}

// FromSeq returns a sequence that restarts seq for every cursor.
// seq must itself be restartable, as the iter package recommends.
// A nil seq is treated as empty.
func FromSeq[T any](seq iter.Seq[T]) Sequence[T] {
	if seq == nil {
		seq = func(func(T) bool) {}
	}
	return Func[T](func() cursors.Cursor[T] {
		return cursors.FromPull(seq)
	})
}

// Values ranges over a fresh cursor of s, stopping at the first upstream failure.
func Values[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range cursors.All(s.Cursor()) {
			if !yield(v) {
				return
			}
		}
	}
}

// TryValues ranges over a fresh cursor of s, yielding a failure as the final pair.
func TryValues[T any](s Sequence[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v, err := range cursors.TryAll(s.Cursor()) {
			if !yield(v, err) {
				return
			}
		}
	}
}

// Pairs ranges over a sequence of pairs as key/value, which suits Enumerate
// and two-way Zip.
func Pairs[A, B any](s Sequence[tuples.Pair[A, B]]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for p := range Values(s) {
			if !yield(p.First, p.Second) {
				return
			}
		}
	}
}

// Must returns s, panicking if err is not nil.
// It lets combinators nest inside a single expression.
func Must[S any](s S, err error) S {
	if err != nil {
		panic(err)
	}
	return s
}

// RequireUpstream fails with ErrNilUpstream when s is nil, including a typed
// nil. Packages that wrap sequences use it to reject bad input at
// construction time, as the combinators here do.
func RequireUpstream[T any](op string, s Sequence[T]) error {
	return checkUpstreams(op, s)
}

// checkUpstreams rejects nil upstreams, naming the first offending position.
func checkUpstreams(op string, upstreams ...any) error {
	for i, u := range upstreams {
		if isNil(u) {
			logging.Debug().Str("combinator", op).Int("position", i+1).Msg("rejected nil upstream")
			return errors.Wrapf(ErrNilUpstream, "%s: upstream %d", op, i+1)
		}
	}
	return nil
}

// isNil also catches typed nils stored in an interface, such as a nil
// *lists.ArrayList or a nil Func.
func isNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr, reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
