package queue

// Queue is a FIFO container. Not thread safe.
// Dequeue and Peek on an empty queue fail with infra.ErrEmptyContainer.
type Queue[E any] interface {
	Enqueue(item E)
	Dequeue() (E, error)
	// Peek returns the front item without removing it.
	Peek() (E, error)
	IsEmpty() bool
	Size() int
}

// Deque is a double-ended queue. Not thread safe.
// Removes and peeks on an empty deque fail with infra.ErrEmptyContainer.
type Deque[E any] interface {
	AddFront(item E)
	AddRear(item E)
	RemoveFront() (E, error)
	RemoveRear() (E, error)
	PeekFront() (E, error)
	PeekRear() (E, error)
	IsEmpty() bool
	Size() int
}
