package observable

import (
	"github.com/iotaledger/linkedds/constraints"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/ds/priorityqueue"
)

// PriorityQueue is an observable view of a priorityqueue.PriorityQueue. Notifications carry the affected Item.
// Dequeued Items are reported at index 0, the position of enqueued Items and of Items removed by DequeueAll is reported
// as -1.
type PriorityQueue[K constraints.Ordered, V any] struct {
	queue *priorityqueue.PriorityQueue[K, V]

	*notifier[priorityqueue.Item[K, V]]
}

// NewPriorityQueue creates an observable view of the given PriorityQueue.
func NewPriorityQueue[K constraints.Ordered, V any](queue *priorityqueue.PriorityQueue[K, V], opts ...Option) *PriorityQueue[K, V] {
	return &PriorityQueue[K, V]{
		queue:    queue,
		notifier: newNotifier[priorityqueue.Item[K, V]](opts),
	}
}

// Events returns the Events of the PriorityQueue.
func (p *PriorityQueue[K, V]) Events() *Events[priorityqueue.Item[K, V]] {
	return p.events
}

// Enqueue adds a value with the given key and raises an Added notification.
func (p *PriorityQueue[K, V]) Enqueue(key K, value V) {
	oldCount := p.queue.Count()
	p.queue.Enqueue(key, value)

	p.notify(Added, priorityqueue.Item[K, V]{Key: key, Value: value}, -1, oldCount, p.queue.Count())
}

// Dequeue removes the value with the smallest key and raises a Removed notification.
func (p *PriorityQueue[K, V]) Dequeue() (key K, value V, err error) {
	oldCount := p.queue.Count()
	if key, value, err = p.queue.Dequeue(); err != nil {
		return key, value, err
	}

	p.notify(Removed, priorityqueue.Item[K, V]{Key: key, Value: value}, 0, oldCount, p.queue.Count())

	return key, value, nil
}

// TryDequeue removes the value with the smallest key and raises a Removed notification if it existed.
func (p *PriorityQueue[K, V]) TryDequeue() (key K, value V, exists bool) {
	oldCount := p.queue.Count()
	if key, value, exists = p.queue.TryDequeue(); exists {
		p.notify(Removed, priorityqueue.Item[K, V]{Key: key, Value: value}, 0, oldCount, p.queue.Count())
	}

	return key, value, exists
}

// DequeueAll removes all values of the given key. Every removed value raises a Removed notification, the count change
// is raised once afterwards.
func (p *PriorityQueue[K, V]) DequeueAll(key K) []V {
	oldCount := p.queue.Count()
	values := p.queue.DequeueAll(key)

	items := make([]priorityqueue.Item[K, V], len(values))
	for i, value := range values {
		items[i] = priorityqueue.Item[K, V]{Key: key, Value: value}
	}
	p.notifyRemovals(items, oldCount, p.queue.Count())

	return values
}

// Clear removes all values and raises a Reset notification. Clearing an empty PriorityQueue raises nothing.
func (p *PriorityQueue[K, V]) Clear() {
	oldCount := p.queue.Count()
	if oldCount == 0 {
		return
	}

	p.queue.Clear()
	p.notifyReset(oldCount, p.queue.Count())
}

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

// Keys returns the distinct keys of the wrapped PriorityQueue in ascending order.
func (p *PriorityQueue[K, V]) Keys() []K {
	return p.queue.Keys()
}

// Iterator returns a fail-fast Iterator that walks the Items in dequeue order.
func (p *PriorityQueue[K, V]) Iterator() iterator.Iterator[priorityqueue.Item[K, V]] {
	return p.queue.Iterator()
}

// Values returns the values of the wrapped PriorityQueue in dequeue order.
func (p *PriorityQueue[K, V]) Values() []V {
	return p.queue.Values()
}
