/*
Package seqs composes lazy, restartable sequences.

A [Sequence] is an immutable definition of how to traverse some elements. Its
only operation, Cursor, hands out a brand new [cursors.Cursor] every time it
is called. Combinators such as [Zip2] or [Enumerate] wrap upstream
definitions and, for each cursor requested, open fresh cursors on every
upstream. Nothing is pulled until the caller asks for it, and two cursors
over the same definition never see each other's progress.

  - **Pairing**: [Zip2] through [Zip6] combine corresponding elements into
    tuples and stop at the shortest upstream.
  - **Positional tagging**: [Enumerate] pairs every element with its
    zero-based index.
  - **Transformations**: [Map], [Filter], [Select], [Take], [Skip], [Concat].
  - **Sources**: [Of], [FromSeq], [Range], [Repeat], or any type with a
    Cursor method.

# Bridging to iter

Definitions work with range loops through [Values], [TryValues] and
[Pairs]. Each loop runs a fresh cursor.

	letters := seqs.Of("A", "B", "C")
	for i, v := range seqs.Pairs(seqs.Must(seqs.Enumerate(letters))) {
		fmt.Println(i, v)
	}

# Errors

Combinators reject nil upstreams when they are built, returning
[ErrNilUpstream]. Cursors report [cursors.ErrExhausted] once they run dry,
and return any failure raised by an upstream cursor unchanged.
*/
package seqs
