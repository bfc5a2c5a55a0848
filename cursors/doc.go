/*
Package cursors defines the traversal primitive used throughout lazily.

A [Cursor] is one in-progress, forward-only walk over a sequence. It is
stateful and single-use: [Cursor.HasNext] reports whether another element is
available, [Cursor.Next] produces it, and [Cursor.Remove] deletes the element
last produced from whatever container backs the cursor, when that is
possible at all.

Cursors are never shared. Two cursors obtained from the same definition own
their positions privately, so advancing one never changes what the other
yields.

# Exhaustion

Once HasNext reports false a cursor stays exhausted. Further calls to Next
fail with [ErrExhausted] instead of returning stale data.

# Releasing cursors

Most cursors hold nothing but memory and can simply be dropped. Cursors
built by [FromPull] run their source as a coroutine and implement io.Closer;
they release it automatically on exhaustion, and [Close] releases it early.
*/
package cursors
