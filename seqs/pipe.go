package seqs

import "lazily/cursors"

// pipe is the shared state of a cursor drawing from a single upstream.
// Once the upstream runs dry, or the pipe is closed, it stays exhausted.
type pipe[T any] struct {
	cursors.ReadOnly
	upstream cursors.Cursor[T]
	done     bool
}

func (p *pipe[T]) upstreamHasNext() bool {
	if p.done {
		return false
	}
	if !p.upstream.HasNext() {
		_ = p.Close()
		return false
	}
	return true
}

func (p *pipe[T]) Close() error {
	if p.done {
		return nil
	}
	p.done = true
	return cursors.Close(p.upstream)
}
