package queue

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-fixedcap/pkg/datastructs/optional"
)

var _ FIFO[int] = (*Bounded[int])(nil)

// ErrInvalidCapacity is returned by NewBounded for a non-positive capacity.
var ErrInvalidCapacity = errors.New("queue: capacity must be positive")

// Bounded is a fixed-capacity circular FIFO queue.
//
// Storage is a fixed array of optional slots allocated once at construction;
// no operation allocates afterwards. count alone decides full versus empty,
// so front and rear never need sentinel values and may wrap indefinitely.
// It is NOT safe for concurrent use; callers sharing an instance across
// goroutines must supply their own mutual exclusion.
type Bounded[T any] struct {
	slots  []optional.Value[T]
	front  int // index of the oldest value when count > 0
	rear   int // index the next enqueue writes to
	count  int
	onDrop func(T)
}

// NewBounded creates an empty queue holding at most capacity values.
// The capacity is used exactly as given, never rounded.
func NewBounded[T any](capacity int, opts ...Option[T]) (*Bounded[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}

	q := &Bounded[T]{
		slots: make([]optional.Value[T], capacity),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q, nil
}

// Enqueue adds an item at the rear of the queue.
// Returns false without mutating anything if the queue is full.
func (q *Bounded[T]) Enqueue(item T) bool {
	if q.IsFull() {
		return false
	}

	// The slot at rear is absent: occupied slots never exceed count.
	q.slots[q.rear].Set(item)
	q.rear = (q.rear + 1) % len(q.slots)
	q.count++
	return true
}

// ForceEnqueue adds an item at the rear of the queue, evicting the oldest
// item first if the queue is full. It always succeeds; on a full queue the
// net effect is oldest dropped, item appended, size unchanged.
func (q *Bounded[T]) ForceEnqueue(item T) {
	if q.IsFull() {
		q.dropFront()
	}
	q.Enqueue(item)
}

// Dequeue removes and returns the oldest item.
// Returns (zero, false) without mutating anything if the queue is empty.
func (q *Bounded[T]) Dequeue() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}

	item, _ := q.slots[q.front].Take()
	q.front = (q.front + 1) % len(q.slots)
	q.count--
	return item, true
}

// Clear drains the queue, reporting each remaining value to the drop
// callback, and resets the cursors.
func (q *Bounded[T]) Clear() {
	for !q.IsEmpty() {
		q.dropFront()
	}
	q.front = 0
	q.rear = 0
}

// Size returns the number of items currently enqueued.
func (q *Bounded[T]) Size() int { return q.count }

// Capacity returns the maximum number of items the queue can hold.
func (q *Bounded[T]) Capacity() int { return len(q.slots) }

// IsFull returns true if the queue is full.
func (q *Bounded[T]) IsFull() bool { return q.count == len(q.slots) }

// IsEmpty returns true if the queue is empty.
func (q *Bounded[T]) IsEmpty() bool { return q.count == 0 }

// dropFront discards the oldest value. Caller guarantees count > 0.
func (q *Bounded[T]) dropFront() {
	old, _ := q.slots[q.front].Take()
	q.front = (q.front + 1) % len(q.slots)
	q.count--
	if q.onDrop != nil {
		q.onDrop(old)
	}
}
