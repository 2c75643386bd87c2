package readonly

import (
	"github.com/iotaledger/linkedds/constraints"
	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/ds/priorityqueue"
	"github.com/iotaledger/linkedds/ierrors"
)

// PriorityQueue is a read-only view of a priorityqueue.PriorityQueue.
type PriorityQueue[K constraints.Ordered, V any] struct {
	queue *priorityqueue.PriorityQueue[K, V]
}

// NewPriorityQueue creates a read-only view of the given PriorityQueue.
func NewPriorityQueue[K constraints.Ordered, V any](queue *priorityqueue.PriorityQueue[K, V]) *PriorityQueue[K, V] {
	return &PriorityQueue[K, V]{
		queue: queue,
	}
}

// region mutations ////////////////////////////////////////////////////////////////////////////////////////////////////

// Enqueue panics with ds.ErrReadOnlyContainer.
func (p *PriorityQueue[K, V]) Enqueue(K, V) {
	panic(ierrors.WithStack(ds.ErrReadOnlyContainer))
}

// Dequeue fails with ds.ErrReadOnlyContainer.
func (p *PriorityQueue[K, V]) Dequeue() (key K, value V, err error) {
	return key, value, ierrors.Wrap(ds.ErrReadOnlyContainer, "unable to dequeue value")
}

// TryDequeue panics with ds.ErrReadOnlyContainer.
func (p *PriorityQueue[K, V]) TryDequeue() (K, V, bool) {
	panic(ierrors.WithStack(ds.ErrReadOnlyContainer))
}

// DequeueAll panics with ds.ErrReadOnlyContainer.
func (p *PriorityQueue[K, V]) DequeueAll(K) []V {
	panic(ierrors.WithStack(ds.ErrReadOnlyContainer))
}

// Clear panics with ds.ErrReadOnlyContainer.
func (p *PriorityQueue[K, V]) Clear() {
	panic(ierrors.WithStack(ds.ErrReadOnlyContainer))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region reads ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Peek returns the key and the value that the wrapped PriorityQueue would dequeue next.
func (p *PriorityQueue[K, V]) Peek() (K, V, error) {
	return p.queue.Peek()
}

// TryPeek returns the key and the value that the wrapped PriorityQueue would dequeue next and true if it exists.
func (p *PriorityQueue[K, V]) TryPeek() (K, V, bool) {
	return p.queue.TryPeek()
}

// Count returns the number of values in the wrapped PriorityQueue.
func (p *PriorityQueue[K, V]) Count() uint32 {
	return p.queue.Count()
}

// IsEmpty returns true if the wrapped PriorityQueue holds no values.
func (p *PriorityQueue[K, V]) IsEmpty() bool {
	return p.queue.IsEmpty()
}

// KeyCount returns the number of distinct keys in the wrapped PriorityQueue.
func (p *PriorityQueue[K, V]) KeyCount() int {
	return p.queue.KeyCount()
}

// Keys returns the distinct keys of the wrapped PriorityQueue in ascending order.
func (p *PriorityQueue[K, V]) Keys() []K {
	return p.queue.Keys()
}

// Iterator returns a fail-fast Iterator that walks the Items in dequeue order.
func (p *PriorityQueue[K, V]) Iterator() iterator.Iterator[priorityqueue.Item[K, V]] {
	return p.queue.Iterator()
}

// IteratorReversed returns a fail-fast Iterator that walks the Items in reverse dequeue order.
func (p *PriorityQueue[K, V]) IteratorReversed() iterator.Iterator[priorityqueue.Item[K, V]] {
	return p.queue.IteratorReversed()
}

// Values returns the values of the wrapped PriorityQueue in dequeue order.
func (p *PriorityQueue[K, V]) Values() []V {
	return p.queue.Values()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
