package queue

import (
	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/lib/list"
)

var _ Deque[struct{}] = (*linkedDeque[struct{}])(nil) // Type check assertion

// linkedDeque delegates to the doubly linked list, O(1) at both ends.
type linkedDeque[E comparable] struct {
	l list.DoublyLinkedList[E]
}

func NewLinkedDeque[E comparable]() Deque[E] {
	return &linkedDeque[E]{
		l: list.NewDoublyLinkedList[E](),
	}
}

func (d *linkedDeque[E]) AddFront(item E) {
	d.l.Prepend(item)
}

func (d *linkedDeque[E]) AddRear(item E) {
	d.l.Append(item)
}

func (d *linkedDeque[E]) RemoveFront() (item E, err error) {
	if d.l.IsEmpty() {
		return item, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[linked-deque] remove front")
	}
	return d.l.PopFront()
}

func (d *linkedDeque[E]) RemoveRear() (item E, err error) {
	if d.l.IsEmpty() {
		return item, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[linked-deque] remove rear")
	}
	return d.l.PopBack()
}

func (d *linkedDeque[E]) PeekFront() (item E, err error) {
	front := d.l.Front()
	if front == nil {
		return item, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[linked-deque] peek front")
	}
	return front.Value, nil
}

func (d *linkedDeque[E]) PeekRear() (item E, err error) {
	back := d.l.Back()
	if back == nil {
		return item, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[linked-deque] peek rear")
	}
	return back.Value, nil
}

func (d *linkedDeque[E]) IsEmpty() bool {
	return d.l.IsEmpty()
}

func (d *linkedDeque[E]) Size() int {
	return int(d.l.Len())
}
