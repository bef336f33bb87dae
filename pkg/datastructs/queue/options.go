package queue

// Option configures a Bounded queue at construction time.
type Option[T any] func(*Bounded[T])

// WithOnDrop registers fn to be called exactly once for every value the
// queue discards on its own: the evicted oldest value when ForceEnqueue
// runs against a full queue, and each value drained by Clear.
// Values handed back by Dequeue are never reported.
func WithOnDrop[T any](fn func(T)) Option[T] {
	return func(q *Bounded[T]) {
		q.onDrop = fn
	}
}
