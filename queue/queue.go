// Package queue provides a slice backed FIFO container with optional
// destructor and comparator hooks.
package queue

// Option configures a queue at construction time.
type Option[T any] func(*Queue[T])

// WithDestructor sets a hook invoked on every element discarded by Clear or
// Free.
func WithDestructor[T any](destructor func(T)) Option[T] {
	return func(q *Queue[T]) { q.destructor = destructor }
}

// WithComparator sets the ordering hook used by Contains. It must return 0
// when the operands are equal.
func WithComparator[T any](comparator func(first, second T) int) Option[T] {
	return func(q *Queue[T]) { q.comparator = comparator }
}

// Queue holds elements in first-in first-out order. Value based storage, no
// pointer indirection; popped slots are zeroed so the values can be
// collected.
type Queue[T any] struct {
	items      []T
	destructor func(T)
	comparator func(first, second T) int
}

// New constructs an empty queue.
func New[T any](options ...Option[T]) *Queue[T] {
	q := &Queue[T]{}
	for _, option := range options {
		option(q)
	}
	return q
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Enqueue appends a value to the back of the queue.
func (q *Queue[T]) Enqueue(value T) {
	q.items = append(q.items, value)
}

// Dequeue removes and returns the front element. It reports false on an
// empty queue.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q == nil || len(q.items) == 0 {
		return zero, false
	}
	value := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return value, true
}

// Peek returns the front element without removing it. It reports false on an
// empty queue.
func (q *Queue[T]) Peek() (T, bool) {
	if q == nil || len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// Contains reports whether any queued element compares equal to value. It is
// always false for a queue constructed without a comparator.
func (q *Queue[T]) Contains(value T) bool {
	if q == nil || q.comparator == nil {
		return false
	}
	for _, item := range q.items {
		if q.comparator(item, value) == 0 {
			return true
		}
	}
	return false
}

// Clear discards every element in order, invoking the destructor on each if
// one was set. The backing storage is kept for reuse.
func (q *Queue[T]) Clear() {
	if q == nil {
		return
	}
	var zero T
	for i, item := range q.items {
		if q.destructor != nil {
			q.destructor(item)
		}
		q.items[i] = zero
	}
	q.items = q.items[:0]
}

// Free clears the queue and drops the backing storage. It is safe to call on
// a nil queue and more than once.
func (q *Queue[T]) Free() {
	if q == nil {
		return
	}
	q.Clear()
	q.items = nil
}
