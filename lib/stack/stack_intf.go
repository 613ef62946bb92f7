package stack

// Stack is a LIFO container. Not thread safe.
// Pop and Peek on an empty stack fail with infra.ErrEmptyContainer.
type Stack[T any] interface {
	Push(v T)
	Pop() (T, error)
	// Peek returns the top value without removing it.
	Peek() (T, error)
	IsEmpty() bool
	Size() int
	// Values returns a snapshot from top to bottom.
	Values() []T
	Clear()
}
