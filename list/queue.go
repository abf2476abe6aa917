package list

// Queue is the list-backed FIFO: O(1) Enqueue and Dequeue with no
// slice-shifting. The zero value is ready to use.
type Queue[T any] struct {
	l List[T]
}

// NewQueue returns an empty queue. Equivalent to new(Queue[T]).
func NewQueue[T any]() *Queue[T] { return new(Queue[T]) }

// Len reports the number of queued items.
func (q *Queue[T]) Len() int { return q.l.Len() }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.l.Len() == 0 }

// Enqueue appends v at the back.
func (q *Queue[T]) Enqueue(v T) { q.l.PushBack(v) }

// Dequeue removes and returns the front item.
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	v, err := q.l.PopFront()
	if err != nil {
		var zero T
		return zero, ErrEmptyQueue
	}

	return v, nil
}

// Peek returns the front item without removing it.
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[T]) Peek() (T, error) {
	v, err := q.l.Front()
	if err != nil {
		var zero T
		return zero, ErrEmptyQueue
	}

	return v, nil
}
