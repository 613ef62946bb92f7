package list

// LinkedNode is the singly linked cell shared by every node-chain container
// (singly and sorted lists, linked stack, linked queue). A node belongs to
// exactly one container at a time.
type LinkedNode[T any] struct {
	next  *LinkedNode[T]
	Value T
}

func NewLinkedNode[T any](v T) *LinkedNode[T] {
	return &LinkedNode[T]{Value: v}
}

func (n *LinkedNode[T]) Next() *LinkedNode[T] {
	if n == nil {
		return nil
	}
	return n.next
}

func (n *LinkedNode[T]) SetNext(next *LinkedNode[T]) {
	if n == nil {
		return
	}
	n.next = next
}

func (n *LinkedNode[T]) HasNext() bool {
	return n != nil && n.next != nil
}

// NodeElement is the doubly linked cell. The prev link is a back-reference
// only, forward links own the chain.
type NodeElement[T comparable] struct {
	prev, next *NodeElement[T]
	listRef    *doublyLinkedList[T]
	Value      T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

func newNodeElement[T comparable](v T, list *doublyLinkedList[T]) *NodeElement[T] {
	return &NodeElement[T]{
		Value:   v,
		listRef: list,
	}
}

func (e *NodeElement[T]) HasNext() bool {
	if e == nil || e.listRef == nil {
		return false
	}
	return e.next != nil && e.next != e.listRef.getRoot()
}

func (e *NodeElement[T]) HasPrev() bool {
	if e == nil || e.listRef == nil {
		return false
	}
	return e.prev != nil && e.prev != e.listRef.getRoot()
}

// Next returns the successor or nil at the tail.
func (e *NodeElement[T]) Next() *NodeElement[T] {
	if !e.HasNext() {
		return nil
	}
	return e.next
}

// Prev returns the predecessor or nil at the head.
func (e *NodeElement[T]) Prev() *NodeElement[T] {
	if !e.HasPrev() {
		return nil
	}
	return e.prev
}
