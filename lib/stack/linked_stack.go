package stack

import (
	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/lib/list"
)

var _ Stack[struct{}] = (*linkedStack[struct{}])(nil) // Type check assertion

// linkedStack pushes and pops at the head of a node chain, O(1) worst case.
type linkedStack[T any] struct {
	top  *list.LinkedNode[T]
	size int
}

func NewLinkedStack[T any]() Stack[T] {
	return &linkedStack[T]{}
}

func (s *linkedStack[T]) Push(v T) {
	n := list.NewLinkedNode[T](v)
	n.SetNext(s.top)
	s.top = n
	s.size++
}

func (s *linkedStack[T]) Pop() (v T, err error) {
	if s.top == nil {
		return v, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[linked-stack] pop")
	}
	n := s.top
	s.top = n.Next()
	n.SetNext(nil)
	s.size--
	return n.Value, nil
}

func (s *linkedStack[T]) Peek() (v T, err error) {
	if s.top == nil {
		return v, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[linked-stack] peek")
	}
	return s.top.Value, nil
}

func (s *linkedStack[T]) IsEmpty() bool {
	return s.size == 0
}

func (s *linkedStack[T]) Size() int {
	return s.size
}

func (s *linkedStack[T]) Values() []T {
	values := make([]T, 0, s.size)
	for n := s.top; n != nil; n = n.Next() {
		values = append(values, n.Value)
	}
	return values
}

func (s *linkedStack[T]) Clear() {
	s.top = nil
	s.size = 0
}
