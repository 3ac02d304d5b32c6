// Package deque implements a doubly-linked double-ended queue with
// bidirectional iterators.
//
// The zero value of [Deque] is an empty queue ready to use.
// A deque exclusively owns its nodes: the only way to observe or modify
// entries is through the queue methods and [Iterator]. Cloning produces a
// fully independent copy that shares no nodes with the original.
//
// A deque is not safe for concurrent use by multiple goroutines.
// Mutating a deque while holding iterators on it leaves those iterators
// in an unspecified state.
package deque

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmpty indicates front, back, or pop access on an empty deque.
	ErrEmpty = errors.New("empty deque")
	// ErrInvalidPosition indicates iterator access at the end sentinel or a
	// step beyond either end of a deque.
	ErrInvalidPosition = errors.New("invalid iterator position")
)

type node[T any] struct {
	value      T
	prev, next *node[T]
}

// Deque is a doubly-linked list of values supporting constant-time
// insertion and removal at both ends.
type Deque[T any] struct {
	head, tail *node[T]
	size       int
}

// Len returns the number of entries in the deque.
func (q *Deque[T]) Len() int {
	return q.size
}

// PushFront inserts v as the new front entry.
func (q *Deque[T]) PushFront(v T) {
	n := &node[T]{value: v, next: q.head}
	if q.head == nil {
		q.tail = n
	} else {
		q.head.prev = n
	}
	q.head = n
	q.size++
}

// PushBack inserts v as the new back entry.
func (q *Deque[T]) PushBack(v T) {
	n := &node[T]{value: v, prev: q.tail}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// Front returns the value at the front of the deque.
// It returns [ErrEmpty] if the deque has no entries.
func (q *Deque[T]) Front() (T, error) {
	if q.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return q.head.value, nil
}

// Back returns the value at the back of the deque.
// It returns [ErrEmpty] if the deque has no entries.
func (q *Deque[T]) Back() (T, error) {
	if q.tail == nil {
		var zero T
		return zero, ErrEmpty
	}
	return q.tail.value, nil
}

// PopFront removes the front entry.
// It returns [ErrEmpty] if the deque has no entries.
func (q *Deque[T]) PopFront() error {
	if q.head == nil {
		return ErrEmpty
	}
	next := q.head.next
	q.head.next = nil
	q.head = next
	if next == nil {
		q.tail = nil
	} else {
		next.prev = nil
	}
	q.size--
	return nil
}

// PopBack removes the back entry.
// It returns [ErrEmpty] if the deque has no entries.
func (q *Deque[T]) PopBack() error {
	if q.tail == nil {
		return ErrEmpty
	}
	prev := q.tail.prev
	q.tail.prev = nil
	q.tail = prev
	if prev == nil {
		q.head = nil
	} else {
		prev.next = nil
	}
	q.size--
	return nil
}

// Clear removes all entries. Clearing an empty deque is a no-op.
func (q *Deque[T]) Clear() {
	// Unlink the chain so abandoned iterators cannot resurrect it.
	for n := q.head; n != nil; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}
	q.head, q.tail, q.size = nil, nil, 0
}

// Clone returns a deep copy of the deque. The copy shares no nodes with q,
// so subsequent mutation of either deque cannot be observed through the
// other.
func (q *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{}
	for n := q.head; n != nil; n = n.next {
		c.PushBack(n.value)
	}
	return c
}

// String formats the entries from front to back, each followed by a single
// space. An empty deque formats as the empty string.
func (q *Deque[T]) String() string {
	var b strings.Builder
	for n := q.head; n != nil; n = n.next {
		fmt.Fprintf(&b, "%v ", n.value)
	}
	return b.String()
}

// Iterator is a bidirectional cursor over a deque. It pairs the deque it
// traverses with a current node; the position with no node is the end
// sentinel shared by both traversal directions.
//
// Iterators are values: advancing methods return a new iterator rather
// than mutating the receiver.
type Iterator[T any] struct {
	q *Deque[T]
	n *node[T]
}

// Begin returns an iterator at the front entry, or the end sentinel if the
// deque is empty.
func (q *Deque[T]) Begin() Iterator[T] {
	return Iterator[T]{q: q, n: q.head}
}

// Last returns an iterator at the back entry, or the end sentinel if the
// deque is empty.
func (q *Deque[T]) Last() Iterator[T] {
	return Iterator[T]{q: q, n: q.tail}
}

// End returns the end sentinel iterator, a position referencing no entry.
func (q *Deque[T]) End() Iterator[T] {
	return Iterator[T]{q: q}
}

// Value returns the entry the iterator references.
// It returns [ErrInvalidPosition] at the end sentinel.
func (it Iterator[T]) Value() (T, error) {
	if it.n == nil {
		var zero T
		return zero, ErrInvalidPosition
	}
	return it.n.value, nil
}

// Set overwrites the entry the iterator references.
// It returns [ErrInvalidPosition] at the end sentinel.
func (it Iterator[T]) Set(v T) error {
	if it.n == nil {
		return ErrInvalidPosition
	}
	it.n.value = v
	return nil
}

// Next returns an iterator advanced by one entry toward the back.
// Advancing from the back entry yields the end sentinel; advancing from
// the sentinel returns [ErrInvalidPosition].
func (it Iterator[T]) Next() (Iterator[T], error) {
	if it.n == nil {
		return it, ErrInvalidPosition
	}
	return Iterator[T]{q: it.q, n: it.n.next}, nil
}

// Prev returns an iterator retreated by one entry toward the front.
// Retreating from the front entry yields the end sentinel. Retreating from
// the sentinel of a non-empty deque yields the back entry, so a backward
// walk can start at [Deque.End]; on an empty deque it returns
// [ErrInvalidPosition].
func (it Iterator[T]) Prev() (Iterator[T], error) {
	if it.n == nil {
		if it.q == nil || it.q.tail == nil {
			return it, ErrInvalidPosition
		}
		return Iterator[T]{q: it.q, n: it.q.tail}, nil
	}
	return Iterator[T]{q: it.q, n: it.n.prev}, nil
}

// Equal reports whether two iterators reference the same entry of the same
// deque. All end sentinels of one deque are equal to each other and to no
// iterator of any other deque.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.q == other.q && it.n == other.n
}
