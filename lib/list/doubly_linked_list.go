package list

import (
	"fmt"

	"github.com/benz9527/xdsa/lib/infra"
)

var _ DoublyLinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

// doublyLinkedList is a ring closed by a sentinel root element.
// root.next is the head and root.prev is the tail, an empty list has
// both pointing at root. The sentinel never escapes the package, so
// head.prev and tail.next look absent to callers.
type doublyLinkedList[T comparable] struct {
	root *NodeElement[T]
	len  int64
}

func NewDoublyLinkedList[T comparable](values ...T) DoublyLinkedList[T] {
	l := new(doublyLinkedList[T]).init()
	for _, v := range values {
		l.Append(v)
	}
	return l
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &NodeElement[T]{
		listRef: l,
	}
	l.root.next = l.root
	l.root.prev = l.root
	l.len = 0
	return l
}

func (l *doublyLinkedList[T]) getRoot() *NodeElement[T] {
	return l.root
}

func (l *doublyLinkedList[T]) getRootHead() *NodeElement[T] {
	return l.root.next
}

func (l *doublyLinkedList[T]) getRootTail() *NodeElement[T] {
	return l.root.prev
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *doublyLinkedList[T]) IsEmpty() bool {
	return l.len == 0
}

// contains is a mem address check, a released element has nil links.
func (l *doublyLinkedList[T]) contains(targetE *NodeElement[T]) bool {
	return targetE != nil && targetE != l.root && targetE.listRef == l &&
		targetE.prev != nil && targetE.next != nil
}

// link places e right after at, at may be the root.
func (l *doublyLinkedList[T]) link(e, at *NodeElement[T]) *NodeElement[T] {
	e.listRef = l
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	l.len++
	return e
}

func (l *doublyLinkedList[T]) unlink(e *NodeElement[T]) *NodeElement[T] {
	e.prev.next = e.next
	e.next.prev = e.prev
	// avoid memory leaks
	e.listRef = nil
	e.next = nil
	e.prev = nil
	l.len--
	return e
}

func (l *doublyLinkedList[T]) Front() *NodeElement[T] {
	if l.len == 0 {
		return nil
	}
	return l.getRootHead()
}

func (l *doublyLinkedList[T]) Back() *NodeElement[T] {
	if l.len == 0 {
		return nil
	}
	return l.getRootTail()
}

func (l *doublyLinkedList[T]) Append(v T) *NodeElement[T] {
	return l.link(newNodeElement(v, l), l.getRootTail())
}

func (l *doublyLinkedList[T]) Prepend(v T) *NodeElement[T] {
	return l.link(newNodeElement(v, l), l.root)
}

func (l *doublyLinkedList[T]) InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.link(newNodeElement(v, l), dstE)
}

func (l *doublyLinkedList[T]) InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.link(newNodeElement(v, l), dstE.prev)
}

func (l *doublyLinkedList[T]) RemoveElement(targetE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(targetE) {
		return nil
	}
	return l.unlink(targetE)
}

func (l *doublyLinkedList[T]) Remove(v T) error {
	if l.len == 0 {
		return infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[doubly-linked-list] remove")
	}
	e, _, ok := l.findFirst(v)
	if !ok {
		return infra.WrapErrorStackWithMessage(infra.ErrNotFound, fmt.Sprintf("[doubly-linked-list] remove %v", v))
	}
	l.unlink(e)
	return nil
}

func (l *doublyLinkedList[T]) findFirst(v T) (*NodeElement[T], int64, bool) {
	var idx int64
	for iterator := l.getRootHead(); iterator != l.root; iterator = iterator.next {
		if iterator.Value == v {
			return iterator, idx, true
		}
		idx++
	}
	return nil, -1, false
}

// normalizeIndex maps idx in [-len, len-1] onto [0, len-1].
func (l *doublyLinkedList[T]) normalizeIndex(op string, idx int64) (int64, error) {
	if idx < 0 {
		idx += l.len
	}
	if idx < 0 || idx >= l.len {
		return 0, infra.WrapErrorStackWithMessage(
			infra.ErrIndexOutOfRange,
			fmt.Sprintf("[doubly-linked-list] %s index out of [-%d, %d]", op, l.len, l.len-1),
		)
	}
	return idx, nil
}

// elementAt walks from the nearer end.
func (l *doublyLinkedList[T]) elementAt(idx int64) *NodeElement[T] {
	if idx < l.len/2 {
		iterator := l.getRootHead()
		for i := int64(0); i < idx; i++ {
			iterator = iterator.next
		}
		return iterator
	}
	iterator := l.getRootTail()
	for i := l.len - 1; i > idx; i-- {
		iterator = iterator.prev
	}
	return iterator
}

func (l *doublyLinkedList[T]) Pop(idx int64) (v T, err error) {
	if l.len == 0 {
		return v, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[doubly-linked-list] pop")
	}
	if idx, err = l.normalizeIndex("pop", idx); err != nil {
		return v, err
	}
	return l.unlink(l.elementAt(idx)).Value, nil
}

func (l *doublyLinkedList[T]) PopFront() (T, error) {
	return l.Pop(0)
}

func (l *doublyLinkedList[T]) PopBack() (T, error) {
	return l.Pop(-1)
}

func (l *doublyLinkedList[T]) Search(v T) bool {
	_, _, ok := l.findFirst(v)
	return ok
}

func (l *doublyLinkedList[T]) At(idx int64) (v T, err error) {
	if idx, err = l.normalizeIndex("at", idx); err != nil {
		return v, err
	}
	return l.elementAt(idx).Value, nil
}

func (l *doublyLinkedList[T]) IndexOf(v T) (int64, error) {
	_, idx, ok := l.findFirst(v)
	if !ok {
		return -1, infra.WrapErrorStackWithMessage(infra.ErrNotFound, fmt.Sprintf("[doubly-linked-list] index of %v", v))
	}
	return idx, nil
}

// Foreach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, e *NodeElement[T]) error) error {
	if fn == nil {
		return nil
	}
	var (
		iterator       = l.getRootHead()
		idx      int64 = 0
	)
	for iterator != l.root {
		n := iterator.next
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = n
		idx++
	}
	return nil
}

// ReverseForeach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, e *NodeElement[T]) error) error {
	if fn == nil {
		return nil
	}
	var (
		iterator       = l.getRootTail()
		idx      int64 = 0
	)
	for iterator != l.root {
		p := iterator.prev
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = p
		idx++
	}
	return nil
}

func (l *doublyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.len)
	_ = l.Foreach(func(_ int64, e *NodeElement[T]) error {
		values = append(values, e.Value)
		return nil
	})
	return values
}

func (l *doublyLinkedList[T]) String() string {
	return joinValues(l.Values(), " <-> ")
}
