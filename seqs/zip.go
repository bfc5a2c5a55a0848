package seqs

import (
	"lazily/cursors"
	"lazily/tuples"
)

// Zip2 pairs up corresponding elements of a and b.
// The result is as long as the shorter input.
func Zip2[A, B any](a Sequence[A], b Sequence[B]) (Sequence[tuples.Pair[A, B]], error) {
	if err := checkUpstreams("zip2", a, b); err != nil {
		return nil, err
	}
	return Func[tuples.Pair[A, B]](func() cursors.Cursor[tuples.Pair[A, B]] {
		c := &zip2Cursor[A, B]{a: open(a), b: open(b)}
		c.lanes = []lane{c.a, c.b}
		return c
	}), nil
}

type zip2Cursor[A, B any] struct {
	lockstep
	a *slot[A]
	b *slot[B]
}

func (c *zip2Cursor[A, B]) Next() (tuples.Pair[A, B], error) {
	if err := c.step(); err != nil {
		return tuples.Pair[A, B]{}, err
	}
	return tuples.Of2(c.a.value, c.b.value), nil
}

// Zip3 combines three sequences positionally, stopping at the shortest.
func Zip3[A, B, C any](a Sequence[A], b Sequence[B], c Sequence[C]) (Sequence[tuples.Triple[A, B, C]], error) {
	if err := checkUpstreams("zip3", a, b, c); err != nil {
		return nil, err
	}
	return Func[tuples.Triple[A, B, C]](func() cursors.Cursor[tuples.Triple[A, B, C]] {
		z := &zip3Cursor[A, B, C]{a: open(a), b: open(b), c: open(c)}
		z.lanes = []lane{z.a, z.b, z.c}
		return z
	}), nil
}

type zip3Cursor[A, B, C any] struct {
	lockstep
	a *slot[A]
	b *slot[B]
	c *slot[C]
}

func (z *zip3Cursor[A, B, C]) Next() (tuples.Triple[A, B, C], error) {
	if err := z.step(); err != nil {
		return tuples.Triple[A, B, C]{}, err
	}
	return tuples.Of3(z.a.value, z.b.value, z.c.value), nil
}

// Zip4 combines four sequences positionally, stopping at the shortest.
func Zip4[A, B, C, D any](
	a Sequence[A],
	b Sequence[B],
	c Sequence[C],
	d Sequence[D],
) (Sequence[tuples.Quadruple[A, B, C, D]], error) {
	if err := checkUpstreams("zip4", a, b, c, d); err != nil {
		return nil, err
	}
	return Func[tuples.Quadruple[A, B, C, D]](func() cursors.Cursor[tuples.Quadruple[A, B, C, D]] {
		z := &zip4Cursor[A, B, C, D]{a: open(a), b: open(b), c: open(c), d: open(d)}
		z.lanes = []lane{z.a, z.b, z.c, z.d}
		return z
	}), nil
}

type zip4Cursor[A, B, C, D any] struct {
	lockstep
	a *slot[A]
	b *slot[B]
	c *slot[C]
	d *slot[D]
}

func (z *zip4Cursor[A, B, C, D]) Next() (tuples.Quadruple[A, B, C, D], error) {
	if err := z.step(); err != nil {
		return tuples.Quadruple[A, B, C, D]{}, err
	}
	return tuples.Of4(z.a.value, z.b.value, z.c.value, z.d.value), nil
}

// Zip5 combines five sequences positionally, stopping at the shortest.
func Zip5[A, B, C, D, E any](
	a Sequence[A],
	b Sequence[B],
	c Sequence[C],
	d Sequence[D],
	e Sequence[E],
) (Sequence[tuples.Quintuple[A, B, C, D, E]], error) {
	if err := checkUpstreams("zip5", a, b, c, d, e); err != nil {
		return nil, err
	}
	return Func[tuples.Quintuple[A, B, C, D, E]](func() cursors.Cursor[tuples.Quintuple[A, B, C, D, E]] {
		z := &zip5Cursor[A, B, C, D, E]{a: open(a), b: open(b), c: open(c), d: open(d), e: open(e)}
		z.lanes = []lane{z.a, z.b, z.c, z.d, z.e}
		return z
	}), nil
}

type zip5Cursor[A, B, C, D, E any] struct {
	lockstep
	a *slot[A]
	b *slot[B]
	c *slot[C]
	d *slot[D]
	e *slot[E]
}

func (z *zip5Cursor[A, B, C, D, E]) Next() (tuples.Quintuple[A, B, C, D, E], error) {
	if err := z.step(); err != nil {
		return tuples.Quintuple[A, B, C, D, E]{}, err
	}
	return tuples.Of5(z.a.value, z.b.value, z.c.value, z.d.value, z.e.value), nil
}

// Zip6 combines six sequences positionally, stopping at the shortest.
func Zip6[A, B, C, D, E, F any](
	a Sequence[A],
	b Sequence[B],
	c Sequence[C],
	d Sequence[D],
	e Sequence[E],
	f Sequence[F],
) (Sequence[tuples.Sextuple[A, B, C, D, E, F]], error) {
	if err := checkUpstreams("zip6", a, b, c, d, e, f); err != nil {
		return nil, err
	}
	return Func[tuples.Sextuple[A, B, C, D, E, F]](func() cursors.Cursor[tuples.Sextuple[A, B, C, D, E, F]] {
		z := &zip6Cursor[A, B, C, D, E, F]{a: open(a), b: open(b), c: open(c), d: open(d), e: open(e), f: open(f)}
		z.lanes = []lane{z.a, z.b, z.c, z.d, z.e, z.f}
		return z
	}), nil
}

type zip6Cursor[A, B, C, D, E, F any] struct {
	lockstep
	a *slot[A]
	b *slot[B]
	c *slot[C]
	d *slot[D]
	e *slot[E]
	f *slot[F]
}

func (z *zip6Cursor[A, B, C, D, E, F]) Next() (tuples.Sextuple[A, B, C, D, E, F], error) {
	if err := z.step(); err != nil {
		return tuples.Sextuple[A, B, C, D, E, F]{}, err
	}
	return tuples.Of6(z.a.value, z.b.value, z.c.value, z.d.value, z.e.value, z.f.value), nil
}
