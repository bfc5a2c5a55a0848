// Package tuples holds the fixed-arity value carriers produced by the zip and
// enumerate combinators.
//
// Tuples are plain structs. When every slot type is comparable the tuple is
// comparable too, so == is structural equality and tuples can be used
// directly as map keys.
package tuples

import (
	"fmt"
	"strings"
)

type Pair[A, B any] struct {
	First  A
	Second B
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type Quadruple[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

type Quintuple[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

type Sextuple[A, B, C, D, E, F any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
	Sixth  F
}

func Of2[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{a, b}
}

func Of3[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{a, b, c}
}

func Of4[A, B, C, D any](a A, b B, c C, d D) Quadruple[A, B, C, D] {
	return Quadruple[A, B, C, D]{a, b, c, d}
}

func Of5[A, B, C, D, E any](a A, b B, c C, d D, e E) Quintuple[A, B, C, D, E] {
	return Quintuple[A, B, C, D, E]{a, b, c, d, e}
}

func Of6[A, B, C, D, E, F any](a A, b B, c C, d D, e E, f F) Sextuple[A, B, C, D, E, F] {
	return Sextuple[A, B, C, D, E, F]{a, b, c, d, e, f}
}

// Values returns the slots in order.
func (p Pair[A, B]) Values() []any { return []any{p.First, p.Second} }

func (t Triple[A, B, C]) Values() []any { return []any{t.First, t.Second, t.Third} }

func (q Quadruple[A, B, C, D]) Values() []any {
	return []any{q.First, q.Second, q.Third, q.Fourth}
}

func (q Quintuple[A, B, C, D, E]) Values() []any {
	return []any{q.First, q.Second, q.Third, q.Fourth, q.Fifth}
}

func (s Sextuple[A, B, C, D, E, F]) Values() []any {
	return []any{s.First, s.Second, s.Third, s.Fourth, s.Fifth, s.Sixth}
}

func (p Pair[A, B]) String() string { return format(p.Values()) }

func (t Triple[A, B, C]) String() string { return format(t.Values()) }

func (q Quadruple[A, B, C, D]) String() string { return format(q.Values()) }

func (q Quintuple[A, B, C, D, E]) String() string { return format(q.Values()) }

func (s Sextuple[A, B, C, D, E, F]) String() string { return format(s.Values()) }

func format(values []any) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(')')
	return sb.String()
}
