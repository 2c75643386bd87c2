package priorityqueue

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/iotaledger/linkedds/constraints"
	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/ds/list"
	"github.com/iotaledger/linkedds/ierrors"
	"github.com/iotaledger/linkedds/lo"
	"github.com/iotaledger/linkedds/syncutils"
)

// PriorityQueue is a queue that dequeues its values in ascending key order. Values that share a key are dequeued in the
// order they were enqueued.
//
// All values live in a single shared List whose order is the dequeue order. A red-black tree maps every key to the run
// of Elements (head and tail) that hold the values of that key, which keeps the runs contiguous and allows to find the
// insertion point of a new key in O(log n).
type PriorityQueue[K constraints.Ordered, V any] struct {
	// runs maps the keys to their *run in the shared list.
	runs *redblacktree.Tree

	// items holds all values in dequeue order.
	items *list.List[Item[K, V]]
}

// New creates a new empty PriorityQueue.
func New[K constraints.Ordered, V any]() *PriorityQueue[K, V] {
	return &PriorityQueue[K, V]{
		runs: redblacktree.NewWith(func(a, b interface{}) int {
			return lo.Comparator(a.(K), b.(K))
		}),
		items: list.New[Item[K, V]](),
	}
}

// Enqueue adds a value with the given key. It is dequeued after all values with a smaller key and after all values that
// were enqueued with the same key before.
func (p *PriorityQueue[K, V]) Enqueue(key K, value V) {
	item := Item[K, V]{Key: key, Value: value}

	if existingRun, exists := p.run(key); exists {
		existingRun.tail = lo.PanicOnErr(p.items.AddAfter(existingRun.tail, item))

		return
	}

	var element *list.Element[Item[K, V]]
	if ceiling, found := p.runs.Ceiling(key); found {
		greaterRun := ceiling.Value.(*run[K, V])
		p.assertRunBoundary(key, greaterRun)

		element = lo.PanicOnErr(p.items.AddBefore(greaterRun.head, item))
	} else {
		element = p.items.AddLast(item)
	}

	p.runs.Put(key, &run[K, V]{head: element, tail: element})
}

// Peek returns the key and the value that would be dequeued next.
func (p *PriorityQueue[K, V]) Peek() (key K, value V, err error) {
	if p.items.IsEmpty() {
		return key, value, ierrors.Wrap(ds.ErrEmptyContainer, "unable to peek into priority queue")
	}

	item := p.items.First().Value()

	return item.Key, item.Value, nil
}

// TryPeek returns the key and the value that would be dequeued next and true if the PriorityQueue is not empty.
func (p *PriorityQueue[K, V]) TryPeek() (key K, value V, exists bool) {
	if p.items.IsEmpty() {
		return key, value, false
	}

	item := p.items.First().Value()

	return item.Key, item.Value, true
}

// Dequeue removes and returns the value with the smallest key (and the oldest among those).
func (p *PriorityQueue[K, V]) Dequeue() (key K, value V, err error) {
	if p.items.IsEmpty() {
		return key, value, ierrors.Wrap(ds.ErrEmptyContainer, "unable to dequeue from priority queue")
	}

	key, value = p.dequeue()

	return key, value, nil
}

// TryDequeue removes and returns the value with the smallest key and true if the PriorityQueue is not empty.
func (p *PriorityQueue[K, V]) TryDequeue() (key K, value V, exists bool) {
	if p.items.IsEmpty() {
		return key, value, false
	}

	key, value = p.dequeue()

	return key, value, true
}

// DequeueAll removes and returns all values that were enqueued with the given key.
func (p *PriorityQueue[K, V]) DequeueAll(key K) (values []V) {
	existingRun, exists := p.run(key)
	if !exists {
		return nil
	}

	p.runs.Remove(key)

	for element := existingRun.head; ; {
		next, last := element.Next(), element == existingRun.tail

		values = append(values, lo.PanicOnErr(p.items.Remove(element)).Value)
		if last {
			return values
		}

		element = next
	}
}

// Clear removes all values from the PriorityQueue.
func (p *PriorityQueue[K, V]) Clear() {
	p.runs.Clear()
	p.items.Clear()
}

// Count returns the number of values in the PriorityQueue.
func (p *PriorityQueue[K, V]) Count() uint32 {
	return p.items.Count()
}

// IsEmpty returns true if the PriorityQueue holds no values.
func (p *PriorityQueue[K, V]) IsEmpty() bool {
	return p.items.IsEmpty()
}

// KeyCount returns the number of distinct keys in the PriorityQueue.
func (p *PriorityQueue[K, V]) KeyCount() int {
	return p.runs.Size()
}

// Keys returns the distinct keys of the PriorityQueue in ascending order.
func (p *PriorityQueue[K, V]) Keys() []K {
	keys := make([]K, 0, p.runs.Size())
	for _, key := range p.runs.Keys() {
		keys = append(keys, key.(K))
	}

	return keys
}

// Iterator returns a fail-fast Iterator that walks the Items in dequeue order.
func (p *PriorityQueue[K, V]) Iterator() iterator.Iterator[Item[K, V]] {
	return p.items.Iterator()
}

// IteratorReversed returns a fail-fast Iterator that walks the Items in reverse dequeue order.
func (p *PriorityQueue[K, V]) IteratorReversed() iterator.Iterator[Item[K, V]] {
	return p.items.IteratorReversed()
}

// Values returns the values of the PriorityQueue in dequeue order.
func (p *PriorityQueue[K, V]) Values() []V {
	values := make([]V, 0, p.items.Count())
	p.items.Range(func(item Item[K, V]) {
		values = append(values, item.Value)
	})

	return values
}

// SyncRoot returns the mutex callers can use to coordinate access to the PriorityQueue.
func (p *PriorityQueue[K, V]) SyncRoot() *syncutils.RWMutex {
	return p.items.SyncRoot()
}

// run returns the run of the given key.
func (p *PriorityQueue[K, V]) run(key K) (existingRun *run[K, V], exists bool) {
	value, exists := p.runs.Get(key)
	if !exists {
		return nil, false
	}

	return value.(*run[K, V]), true
}

// dequeue removes the head of the run with the smallest key.
func (p *PriorityQueue[K, V]) dequeue() (key K, value V) {
	smallest := p.runs.Left()
	smallestRun := smallest.Value.(*run[K, V])

	head := smallestRun.head
	if head == smallestRun.tail {
		p.runs.Remove(smallest.Key)
	} else {
		smallestRun.head = head.Next()
	}

	item := lo.PanicOnErr(p.items.Remove(head))

	return item.Key, item.Value
}

// assertRunBoundary panics if the run in front of the run of the next greater key is not the run of the next smaller
// key, which would mean that the runs of the shared list interleave.
func (p *PriorityQueue[K, V]) assertRunBoundary(key K, greaterRun *run[K, V]) {
	var expectedPredecessor *list.Element[Item[K, V]]
	if floor, found := p.runs.Floor(key); found {
		expectedPredecessor = floor.Value.(*run[K, V]).tail
	}

	if greaterRun.head.Prev() != expectedPredecessor {
		panic(ierrors.Wrapf(ds.ErrInvariantViolation, "run of key %v is not adjacent to the run of the next smaller key", greaterRun.head.Value().Key))
	}
}

// Item is a value of the PriorityQueue together with its key.
type Item[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// run is the contiguous sequence of Elements of the shared list that hold the values of a single key.
type run[K constraints.Ordered, V any] struct {
	head *list.Element[Item[K, V]]
	tail *list.Element[Item[K, V]]
}
