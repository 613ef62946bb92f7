package queue

import (
	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/lib/list"
)

var _ Queue[struct{}] = (*linkedQueue[struct{}])(nil) // Type check assertion

// linkedQueue enqueues at the tail and dequeues at the head, O(1) both.
type linkedQueue[E any] struct {
	head, tail *list.LinkedNode[E]
	size       int
}

func NewLinkedQueue[E any]() Queue[E] {
	return &linkedQueue[E]{}
}

func (q *linkedQueue[E]) Enqueue(item E) {
	n := list.NewLinkedNode[E](item)
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.SetNext(n)
	}
	q.tail = n
	q.size++
}

func (q *linkedQueue[E]) Dequeue() (item E, err error) {
	if q.head == nil {
		return item, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[linked-queue] dequeue")
	}
	n := q.head
	q.head = n.Next()
	if q.head == nil {
		q.tail = nil
	}
	n.SetNext(nil)
	q.size--
	return n.Value, nil
}

func (q *linkedQueue[E]) Peek() (item E, err error) {
	if q.head == nil {
		return item, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[linked-queue] peek")
	}
	return q.head.Value, nil
}

func (q *linkedQueue[E]) IsEmpty() bool {
	return q.size == 0
}

func (q *linkedQueue[E]) Size() int {
	return q.size
}
