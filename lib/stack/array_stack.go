package stack

import "github.com/benz9527/xdsa/lib/infra"

var _ Stack[struct{}] = (*arrayStack[struct{}])(nil) // Type check assertion

// arrayStack keeps the top at the end of the slice, amortized O(1).
type arrayStack[T any] struct {
	items []T
}

func NewArrayStack[T any](capacity ...int) Stack[T] {
	c := 0
	if len(capacity) > 0 && capacity[0] > 0 {
		c = capacity[0]
	}
	return &arrayStack[T]{
		items: make([]T, 0, c),
	}
}

func (s *arrayStack[T]) Push(v T) {
	s.items = append(s.items, v)
}

func (s *arrayStack[T]) Pop() (v T, err error) {
	if len(s.items) == 0 {
		return v, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[array-stack] pop")
	}
	last := len(s.items) - 1
	v = s.items[last]
	var zero T
	s.items[last] = zero // release the reference
	s.items = s.items[:last]
	return v, nil
}

func (s *arrayStack[T]) Peek() (v T, err error) {
	if len(s.items) == 0 {
		return v, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[array-stack] peek")
	}
	return s.items[len(s.items)-1], nil
}

func (s *arrayStack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *arrayStack[T]) Size() int {
	return len(s.items)
}

func (s *arrayStack[T]) Values() []T {
	values := make([]T, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		values = append(values, s.items[i])
	}
	return values
}

func (s *arrayStack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
