package queue

import (
	"github.com/iotaledger/linkedds/ds/chain"
	"github.com/iotaledger/linkedds/ds/collection"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/syncutils"
)

// Queue is a first-in-first-out container backed by a FIFO Chain.
type Queue[T any] struct {
	chain *chain.Chain[T]
}

// New creates a new empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		chain: chain.New[T](chain.FIFO),
	}
}

// Enqueue adds an element to the end of the queue.
func (q *Queue[T]) Enqueue(element T) {
	q.chain.Add(element)
}

// Dequeue removes and returns the oldest element of the queue. It fails with ds.ErrEmptyContainer if the queue is
// empty.
func (q *Queue[T]) Dequeue() (T, error) {
	return q.chain.Remove()
}

// TryDequeue removes and returns the oldest element of the queue and true if successful.
func (q *Queue[T]) TryDequeue() (T, bool) {
	return q.chain.TryRemove()
}

// Peek returns the oldest element of the queue without removing it.
func (q *Queue[T]) Peek() (T, error) {
	return q.chain.Peek()
}

// TryPeek returns the oldest element of the queue without removing it and true if it exists.
func (q *Queue[T]) TryPeek() (T, bool) {
	return q.chain.TryPeek()
}

// Add adds an element to the end of the queue.
func (q *Queue[T]) Add(element T) {
	q.Enqueue(element)
}

// Remove removes and returns the oldest element of the queue.
func (q *Queue[T]) Remove() (T, error) {
	return q.Dequeue()
}

// TryRemove removes and returns the oldest element of the queue and true if successful.
func (q *Queue[T]) TryRemove() (T, bool) {
	return q.TryDequeue()
}

// Clear removes all elements from the queue.
func (q *Queue[T]) Clear() {
	q.chain.Clear()
}

// Count returns the number of elements in the queue.
func (q *Queue[T]) Count() uint32 {
	return q.chain.Count()
}

// IsEmpty returns true if the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.chain.IsEmpty()
}

// Iterator returns a fail-fast Iterator that walks the queue from the oldest to the newest element.
func (q *Queue[T]) Iterator() iterator.Iterator[T] {
	return q.chain.Iterator()
}

// Values returns the elements of the queue from the oldest to the newest element.
func (q *Queue[T]) Values() []T {
	return q.chain.Values()
}

// Policy returns chain.FIFO.
func (q *Queue[T]) Policy() chain.Policy {
	return q.chain.Policy()
}

// SyncRoot returns the mutex callers can use to coordinate access to the queue.
func (q *Queue[T]) SyncRoot() *syncutils.RWMutex {
	return q.chain.SyncRoot()
}

// code contract - make sure the type implements the interface.
var _ collection.Container[int] = &Queue[int]{}
