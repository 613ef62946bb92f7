package list

import "github.com/benz9527/xdsa/lib/infra"

// Note that none of the linked lists are thread safe.
// Positional arguments are zero based. Failures are reported with the
// infra error taxonomy (ErrNotFound, ErrIndexOutOfRange, ErrEmptyContainer)
// wrapped with the caller stack.

// BasicLinkedList holds the read and remove operations shared by the
// singly and the sorted linked list.
type BasicLinkedList[T comparable] interface {
	Len() int64
	IsEmpty() bool
	// Head returns the first node or nil if the list is empty.
	Head() *LinkedNode[T]
	// Search reports whether v is in the list.
	Search(v T) bool
	// Remove unlinks the first node holding v.
	Remove(v T) error
	// Pop unlinks the node at idx and returns its value.
	Pop(idx int64) (T, error)
	// At returns the value at idx.
	At(idx int64) (T, error)
	// IndexOf returns the position of the first node holding v.
	IndexOf(v T) (int64, error)
	// Foreach traverses the list and executes function fn for each value.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, v T) error) error
	Values() []T
	String() string
}

// SinglyLinkedList is an unordered node chain reachable only from its head.
type SinglyLinkedList[T comparable] interface {
	BasicLinkedList[T]
	// Add prepends v, O(1).
	Add(v T)
	// Append walks to the tail, O(n). There is no tail pointer.
	Append(v T)
	// Insert links v so that it ends up at idx. idx == Len() appends.
	Insert(v T, idx int64) error
}

// SortedLinkedList keeps values non-decreasing from head to tail.
type SortedLinkedList[T infra.OrderedKey] interface {
	BasicLinkedList[T]
	// Add links v in front of the first node whose value is >= v.
	Add(v T)
}

// DoublyLinkedList is the doubly linked list interface.
type DoublyLinkedList[T comparable] interface {
	Len() int64
	IsEmpty() bool
	// Front returns the first element of doubly linked list l or nil if the list is empty.
	Front() *NodeElement[T]
	// Back returns the last element of doubly linked list l or nil if the list is empty.
	Back() *NodeElement[T]
	// Append links v after the tail, O(1).
	Append(v T) *NodeElement[T]
	// Prepend links v before the head, O(1).
	Prepend(v T) *NodeElement[T]
	// InsertAfter inserts a value v as a new element immediately after element dstE and returns new element.
	// If dstE is not an element of the list, the value v will not be inserted.
	InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T]
	// InsertBefore inserts a value v as a new element immediately before element dstE and returns new element.
	// If dstE is not an element of the list, the value v will not be inserted.
	InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T]
	// Remove unlinks the first element holding v.
	Remove(v T) error
	// RemoveElement removes targetE from l if targetE is an element of list l and returns targetE
	// or nil if it is not.
	RemoveElement(targetE *NodeElement[T]) *NodeElement[T]
	// Pop unlinks the element at idx. Negative idx counts from the tail, -1 is the tail.
	Pop(idx int64) (T, error)
	PopFront() (T, error)
	PopBack() (T, error)
	Search(v T) bool
	At(idx int64) (T, error)
	IndexOf(v T) (int64, error)
	// Foreach allows removing the visited element while iterating.
	Foreach(fn func(idx int64, e *NodeElement[T]) error) error
	// ReverseForeach iterates the list from the tail.
	ReverseForeach(fn func(idx int64, e *NodeElement[T]) error) error
	Values() []T
	String() string
}
