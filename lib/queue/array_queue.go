package queue

import "github.com/benz9527/xdsa/lib/infra"

var _ Queue[struct{}] = (*arrayQueue[struct{}])(nil) // Type check assertion

// arrayQueue keeps the rear at index 0 and the front at the end of the slice.
// Enqueue shifts every item, O(n). Dequeue is O(1).
type arrayQueue[E any] struct {
	items []E
}

func NewArrayQueue[E any]() Queue[E] {
	return &arrayQueue[E]{
		items: make([]E, 0, 8),
	}
}

func (q *arrayQueue[E]) Enqueue(item E) {
	var zero E
	q.items = append(q.items, zero)
	copy(q.items[1:], q.items[:len(q.items)-1])
	q.items[0] = item
}

func (q *arrayQueue[E]) Dequeue() (item E, err error) {
	if len(q.items) == 0 {
		return item, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[array-queue] dequeue")
	}
	last := len(q.items) - 1
	item = q.items[last]
	var zero E
	q.items[last] = zero
	q.items = q.items[:last]
	return item, nil
}

func (q *arrayQueue[E]) Peek() (item E, err error) {
	if len(q.items) == 0 {
		return item, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[array-queue] peek")
	}
	return q.items[len(q.items)-1], nil
}

func (q *arrayQueue[E]) IsEmpty() bool {
	return len(q.items) == 0
}

func (q *arrayQueue[E]) Size() int {
	return len(q.items)
}
