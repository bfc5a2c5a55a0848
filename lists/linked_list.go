package lists

import (
	"fmt"
	"strings"

	"lazily/cursors"
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked List with head and tail sentinels.
type LinkedList[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

func NewLinkedList[T any]() *LinkedList[T] {
	ll := &LinkedList[T]{head: &node[T]{}, tail: &node[T]{}}
	ll.head.next = ll.tail
	ll.tail.prev = ll.head
	return ll
}

// LinkedListOf returns a list holding values in order.
func LinkedListOf[T any](values ...T) *LinkedList[T] {
	ll := NewLinkedList[T]()
	ll.Add(values...)
	return ll
}

// linkAfter inserts n right after at.
func (ll *LinkedList[T]) linkAfter(at, n *node[T]) {
	n.prev = at
	n.next = at.next
	at.next.prev = n
	at.next = n
	ll.size++
}

// unlink detaches n and clears its links, which marks it as removed.
func (ll *LinkedList[T]) unlink(n *node[T]) T {
	n.prev.next = n.next
	n.next.prev = n.prev
	v := n.val
	var zero T
	n.prev, n.next, n.val = nil, nil, zero
	ll.size--
	return v
}

// nodeAt assumes 0 <= index <= size; index == size yields the tail sentinel.
func (ll *LinkedList[T]) nodeAt(index int) *node[T] {
	if index < ll.size/2 {
		n := ll.head.next
		for range index {
			n = n.next
		}
		return n
	}
	n := ll.tail
	for i := ll.size; i > index; i-- {
		n = n.prev
	}
	return n
}

func (ll *LinkedList[T]) Add(values ...T) {
	for _, v := range values {
		ll.linkAfter(ll.tail.prev, &node[T]{val: v})
	}
}

func (ll *LinkedList[T]) Insert(index int, value T) error {
	if index < 0 || index > ll.size {
		return ErrIndexOutOfBounds
	}
	ll.linkAfter(ll.nodeAt(index).prev, &node[T]{val: value})
	return nil
}

func (ll *LinkedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= ll.size {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return ll.nodeAt(index).val, nil
}

func (ll *LinkedList[T]) Set(index int, value T) error {
	if index < 0 || index >= ll.size {
		return ErrIndexOutOfBounds
	}
	ll.nodeAt(index).val = value
	return nil
}

func (ll *LinkedList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= ll.size {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return ll.unlink(ll.nodeAt(index)), nil
}

func (ll *LinkedList[T]) Size() int { return ll.size }

func (ll *LinkedList[T]) IsEmpty() bool { return ll.size == 0 }

// Clear empties the list. Cursors still walking the old nodes see them as
// removed and report exhaustion.
func (ll *LinkedList[T]) Clear() {
	for n := ll.head.next; n != ll.tail; {
		following := n.next
		var zero T
		n.prev, n.next, n.val = nil, nil, zero
		n = following
	}
	ll.head.next = ll.tail
	ll.tail.prev = ll.head
	ll.size = 0
}

func (ll *LinkedList[T]) IndexOf(value T, equal func(a, b T) bool) int {
	i := 0
	for n := ll.head.next; n != ll.tail; n = n.next {
		if equal(n.val, value) {
			return i
		}
		i++
	}
	return -1
}

func (ll *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, ll.size)
	for n := ll.head.next; n != ll.tail; n = n.next {
		out = append(out, n.val)
	}
	return out
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := ll.head.next; n != ll.tail; n = n.next {
		if n != ll.head.next {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, n.val)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Cursor walks the list front to back. The first node is looked up on the
// first HasNext or Next, so elements added before then are seen, as with
// ArrayList cursors.
func (ll *LinkedList[T]) Cursor() cursors.Cursor[T] {
	return &linkedCursor[T]{list: ll}
}

type linkedCursor[T any] struct {
	list *LinkedList[T]
	next *node[T]
	last *node[T]

	started bool
	done    bool
}

func (c *linkedCursor[T]) HasNext() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.next, c.started = c.list.head.next, true
	}
	// a node with no links was removed behind this cursor's back
	if c.next == c.list.tail || c.next.next == nil {
		c.done = true
		return false
	}
	return true
}

func (c *linkedCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return cursors.Exhausted[T]()
	}
	n := c.next
	c.last, c.next = n, n.next
	return n.val, nil
}

// Remove unlinks the element returned by the latest Next.
func (c *linkedCursor[T]) Remove() error {
	if c.last == nil || c.last.next == nil {
		return cursors.ErrIllegalState
	}
	c.list.unlink(c.last)
	c.last = nil
	return nil
}
