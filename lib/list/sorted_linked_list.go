package list

import (
	"fmt"

	"github.com/benz9527/xdsa/lib/infra"
)

var _ SortedLinkedList[int] = (*sortedLinkedList[int])(nil) // Type check assertion

// sortedLinkedList reuses the singly linked list for every operation
// that cannot break the ordering. Every lookup goes through cmp so that
// values equal under the comparator (NaN included) are found by all of them.
type sortedLinkedList[T infra.OrderedKey] struct {
	*singlyLinkedList[T]
	cmp infra.OrderedKeyComparator[T]
}

func NewSortedLinkedList[T infra.OrderedKey](values ...T) SortedLinkedList[T] {
	l := &sortedLinkedList[T]{
		singlyLinkedList: &singlyLinkedList[T]{name: "sorted-linked-list"},
		cmp:              infra.DefaultOrderedKeyComparator[T],
	}
	for _, v := range values {
		l.Add(v)
	}
	return l
}

// Add stops at the first node whose value is equal to or greater than v
// and links v in front of it. Duplicates therefore keep the newest first.
func (l *sortedLinkedList[T]) Add(v T) {
	var prev *LinkedNode[T]
	current := l.head
	for current != nil && l.cmp(current.Value, v) < 0 {
		prev, current = current, current.next
	}
	n := NewLinkedNode[T](v)
	n.next = current
	if prev == nil {
		l.head = n
	} else {
		prev.next = n
	}
	l.len++
}

// Search stops as soon as a value greater than v shows up.
func (l *sortedLinkedList[T]) Search(v T) bool {
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		switch res := l.cmp(iterator.Value, v); {
		case res == 0:
			return true
		case res > 0:
			return false
		}
	}
	return false
}

func (l *sortedLinkedList[T]) Remove(v T) error {
	if l.head == nil {
		return infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "["+l.name+"] remove")
	}
	var prev *LinkedNode[T]
	current := l.head
	for current != nil && l.cmp(current.Value, v) < 0 {
		prev, current = current, current.next
	}
	if current != nil && l.cmp(current.Value, v) == 0 {
		l.unlink(prev, current)
		return nil
	}
	return infra.WrapErrorStackWithMessage(infra.ErrNotFound, fmt.Sprintf("[%s] remove %v", l.name, v))
}

func (l *sortedLinkedList[T]) IndexOf(v T) (int64, error) {
	var idx int64
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		res := l.cmp(iterator.Value, v)
		if res == 0 {
			return idx, nil
		}
		if res > 0 {
			break
		}
		idx++
	}
	return -1, infra.WrapErrorStackWithMessage(infra.ErrNotFound, fmt.Sprintf("[%s] index of %v", l.name, v))
}
