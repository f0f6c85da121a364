// Package Queues holds a growable FIFO queue backed by a circular array.
package Queues

// ArrayQueue is a FIFO queue backed by a circular array. Not safe for concurrent use.
type ArrayQueue[T any] interface {
	Push(item T)
	// Pop the oldest item. Returns *EmptyQueueError if the queue is empty.
	Pop() (T, error)
	// Peek at the oldest item, or the zero T if the queue is empty.
	Peek() T
	Empty() bool
	Size() uint
	// Shrink the backing array to fit the items.
	Shrink()
	// Clear the queue, keeping the backing array.
	Clear()
}

// EmptyQueueError is returned by Pop on an empty queue.
type EmptyQueueError struct{}

func (*EmptyQueueError) Error() string {
	return "Queues: Pop from an empty queue"
}
