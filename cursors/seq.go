package cursors

import "iter"

// All returns a single-use iter.Seq that drains c.
// Iteration ends at the first failing Next; use TryAll or Collect to see the error.
// c is closed when the loop finishes or breaks early.
func All[T any](c Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, err := range TryAll(c) {
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// TryAll drains c, yielding (element, nil) pairs. If Next fails with anything
// other than exhaustion, the error is yielded once with a zero element and the
// iteration stops.
func TryAll[T any](c Cursor[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		defer Close(c)
		for c.HasNext() {
			v, err := c.Next()
			if err != nil {
				yield(v, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Collect drains c into a slice.
func Collect[T any](c Cursor[T]) ([]T, error) {
	var out []T
	for v, err := range TryAll(c) {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
