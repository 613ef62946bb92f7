package list

import (
	"fmt"
	"strings"

	"github.com/benz9527/xdsa/lib/infra"
)

var _ SinglyLinkedList[struct{}] = (*singlyLinkedList[struct{}])(nil) // Type check assertion

type singlyLinkedList[T comparable] struct {
	head *LinkedNode[T]
	len  int64
	name string
}

func NewSinglyLinkedList[T comparable](values ...T) SinglyLinkedList[T] {
	l := &singlyLinkedList[T]{name: "singly-linked-list"}
	for _, v := range values {
		l.Append(v)
	}
	return l
}

func (l *singlyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *singlyLinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *singlyLinkedList[T]) Head() *LinkedNode[T] {
	return l.head
}

func (l *singlyLinkedList[T]) Add(v T) {
	n := NewLinkedNode[T](v)
	n.next = l.head
	l.head = n
	l.len++
}

func (l *singlyLinkedList[T]) Append(v T) {
	n := NewLinkedNode[T](v)
	if l.head == nil {
		l.head = n
		l.len++
		return
	}
	tail := l.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = n
	l.len++
}

func (l *singlyLinkedList[T]) Search(v T) bool {
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		if iterator.Value == v {
			return true
		}
	}
	return false
}

// Remove keeps the (previous, current) pair while walking, the head
// is the only node without a previous one.
func (l *singlyLinkedList[T]) Remove(v T) error {
	if l.head == nil {
		return infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "["+l.name+"] remove")
	}
	var prev *LinkedNode[T]
	for current := l.head; current != nil; prev, current = current, current.next {
		if current.Value != v {
			continue
		}
		l.unlink(prev, current)
		return nil
	}
	return infra.WrapErrorStackWithMessage(infra.ErrNotFound, fmt.Sprintf("[%s] remove %v", l.name, v))
}

func (l *singlyLinkedList[T]) unlink(prev, current *LinkedNode[T]) {
	if prev == nil {
		l.head = current.next
	} else {
		prev.next = current.next
	}
	// avoid memory leaks
	current.next = nil
	l.len--
}

func (l *singlyLinkedList[T]) checkIndex(op string, idx, upper int64) error {
	if idx < 0 || idx >= upper {
		return infra.WrapErrorStackWithMessage(
			infra.ErrIndexOutOfRange,
			fmt.Sprintf("[%s] %s index %d, len %d", l.name, op, idx, l.len),
		)
	}
	return nil
}

func (l *singlyLinkedList[T]) Insert(v T, idx int64) error {
	if err := l.checkIndex("insert", idx, l.len+1); err != nil {
		return err
	}
	if idx == 0 {
		l.Add(v)
		return nil
	}
	prev := l.nodeAt(idx - 1)
	n := NewLinkedNode[T](v)
	n.next = prev.next
	prev.next = n
	l.len++
	return nil
}

// nodeAt expects a checked idx.
func (l *singlyLinkedList[T]) nodeAt(idx int64) *LinkedNode[T] {
	iterator := l.head
	for i := int64(0); i < idx; i++ {
		iterator = iterator.next
	}
	return iterator
}

func (l *singlyLinkedList[T]) Pop(idx int64) (v T, err error) {
	if l.head == nil {
		return v, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "["+l.name+"] pop")
	}
	if err = l.checkIndex("pop", idx, l.len); err != nil {
		return v, err
	}
	var prev *LinkedNode[T]
	if idx > 0 {
		prev = l.nodeAt(idx - 1)
	}
	current := l.head
	if prev != nil {
		current = prev.next
	}
	l.unlink(prev, current)
	return current.Value, nil
}

func (l *singlyLinkedList[T]) At(idx int64) (v T, err error) {
	if err = l.checkIndex("at", idx, l.len); err != nil {
		return v, err
	}
	return l.nodeAt(idx).Value, nil
}

func (l *singlyLinkedList[T]) IndexOf(v T) (int64, error) {
	var idx int64
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		if iterator.Value == v {
			return idx, nil
		}
		idx++
	}
	return -1, infra.WrapErrorStackWithMessage(infra.ErrNotFound, fmt.Sprintf("[%s] index of %v", l.name, v))
}

func (l *singlyLinkedList[T]) Foreach(fn func(idx int64, v T) error) error {
	if fn == nil {
		return nil
	}
	var idx int64
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		if err := fn(idx, iterator.Value); err != nil {
			return err
		}
		idx++
	}
	return nil
}

func (l *singlyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.len)
	_ = l.Foreach(func(_ int64, v T) error {
		values = append(values, v)
		return nil
	})
	return values
}

func (l *singlyLinkedList[T]) String() string {
	return joinValues(l.Values(), " -> ")
}

func joinValues[T any](values []T, sep string) string {
	builder := strings.Builder{}
	builder.WriteString("[")
	for i, v := range values {
		if i > 0 {
			builder.WriteString(sep)
		}
		builder.WriteString(fmt.Sprint(v))
	}
	builder.WriteString("]")
	return builder.String()
}
