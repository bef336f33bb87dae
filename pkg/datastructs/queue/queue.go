package queue

// FIFO is the contract shared by the bounded queues in this package.
type FIFO[T any] interface {
	// Enqueue appends item at the rear, reporting false when the queue
	// is full and nothing was stored.
	Enqueue(item T) bool

	// Dequeue removes the oldest item. The flag is false when the queue
	// is empty, in which case the item is the zero value.
	Dequeue() (T, bool)

	// Capacity returns the fixed maximum number of items.
	Capacity() int
}
