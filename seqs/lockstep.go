package seqs

import "lazily/cursors"

// lane is one upstream position of a lockstep traversal.
type lane interface {
	hasNext() bool
	advance() error
	close() error
}

// slot owns a private upstream cursor and the element it produced last.
type slot[T any] struct {
	cursor cursors.Cursor[T]
	value  T
}

func open[T any](s Sequence[T]) *slot[T] {
	return &slot[T]{cursor: s.Cursor()}
}

func (s *slot[T]) hasNext() bool { return s.cursor.HasNext() }

func (s *slot[T]) advance() (err error) {
	s.value, err = s.cursor.Next()
	return err
}

func (s *slot[T]) close() error { return cursors.Close(s.cursor) }

// lockstep advances several upstream cursors together and reports exhausted
// as soon as any one of them runs dry.
type lockstep struct {
	cursors.ReadOnly
	lanes []lane
	done  bool
}

func (l *lockstep) HasNext() bool {
	if l.done {
		return false
	}
	for _, ln := range l.lanes {
		if !ln.hasNext() {
			_ = l.Close()
			return false
		}
	}
	return true
}

// step pulls exactly one element from every lane, leftmost first.
// A failing lane stops the step; the lanes to its right are not touched.
func (l *lockstep) step() error {
	if !l.HasNext() {
		return cursors.ErrExhausted
	}
	for _, ln := range l.lanes {
		if err := ln.advance(); err != nil {
			return err
		}
	}
	return nil
}

// Close marks the traversal exhausted and releases every upstream cursor.
func (l *lockstep) Close() error {
	if l.done {
		return nil
	}
	l.done = true
	var first error
	for _, ln := range l.lanes {
		if err := ln.close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
