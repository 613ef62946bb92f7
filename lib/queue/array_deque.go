package queue

import "github.com/benz9527/xdsa/lib/infra"

var _ Deque[struct{}] = (*arrayDeque[struct{}])(nil) // Type check assertion

// arrayDeque keeps the rear at the end of the slice.
// Rear operations are O(1), front operations shift every item, O(n).
type arrayDeque[E any] struct {
	items []E
}

func NewArrayDeque[E any]() Deque[E] {
	return &arrayDeque[E]{
		items: make([]E, 0, 8),
	}
}

func (d *arrayDeque[E]) AddFront(item E) {
	var zero E
	d.items = append(d.items, zero)
	copy(d.items[1:], d.items[:len(d.items)-1])
	d.items[0] = item
}

func (d *arrayDeque[E]) AddRear(item E) {
	d.items = append(d.items, item)
}

func (d *arrayDeque[E]) RemoveFront() (item E, err error) {
	if len(d.items) == 0 {
		return item, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[array-deque] remove front")
	}
	item = d.items[0]
	copy(d.items, d.items[1:])
	var zero E
	d.items[len(d.items)-1] = zero
	d.items = d.items[:len(d.items)-1]
	return item, nil
}

func (d *arrayDeque[E]) RemoveRear() (item E, err error) {
	if len(d.items) == 0 {
		return item, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[array-deque] remove rear")
	}
	last := len(d.items) - 1
	item = d.items[last]
	var zero E
	d.items[last] = zero
	d.items = d.items[:last]
	return item, nil
}

func (d *arrayDeque[E]) PeekFront() (item E, err error) {
	if len(d.items) == 0 {
		return item, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[array-deque] peek front")
	}
	return d.items[0], nil
}

func (d *arrayDeque[E]) PeekRear() (item E, err error) {
	if len(d.items) == 0 {
		return item, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[array-deque] peek rear")
	}
	return d.items[len(d.items)-1], nil
}

func (d *arrayDeque[E]) IsEmpty() bool {
	return len(d.items) == 0
}

func (d *arrayDeque[E]) Size() int {
	return len(d.items)
}
