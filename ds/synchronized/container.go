package synchronized

import (
	"github.com/iotaledger/linkedds/ds/collection"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/syncutils"
)

// Container is a thread-safe view of a collection.Container. Every entry point is serialized through the mutex that is
// exposed by SyncRoot.
type Container[T any] struct {
	container collection.Container[T]
	mutex     syncutils.RWMutex
}

// NewContainer creates a thread-safe view of the given Container. The wrapped Container must not be accessed directly
// afterwards.
func NewContainer[T any](container collection.Container[T]) *Container[T] {
	return &Container[T]{
		container: container,
	}
}

// Add adds an element to the Container.
func (c *Container[T]) Add(element T) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.container.Add(element)
}

// Remove removes and returns the element at the removal end of the Container.
func (c *Container[T]) Remove() (T, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.container.Remove()
}

// TryRemove removes and returns the element at the removal end of the Container and true if it exists.
func (c *Container[T]) TryRemove() (T, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.container.TryRemove()
}

// Peek returns the element at the removal end of the Container without removing it.
func (c *Container[T]) Peek() (T, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.container.Peek()
}

// TryPeek returns the element at the removal end of the Container without removing it and true if it exists.
func (c *Container[T]) TryPeek() (T, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.container.TryPeek()
}

// Clear removes all elements from the Container.
func (c *Container[T]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.container.Clear()
}

// Count returns the number of elements in the Container.
func (c *Container[T]) Count() uint32 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.container.Count()
}

// IsEmpty returns true if the Container holds no elements.
func (c *Container[T]) IsEmpty() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.container.IsEmpty()
}

// Values returns a snapshot of the elements of the Container in removal order.
func (c *Container[T]) Values() []T {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.container.Values()
}

// Iterator returns a fail-fast Iterator over the Container whose methods are serialized through the same mutex. A
// single Iterator must still only be used by one goroutine at a time.
func (c *Container[T]) Iterator() iterator.Iterator[T] {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return &lockedIterator[T]{
		iterator: c.container.Iterator(),
		mutex:    &c.mutex,
	}
}

// SyncRoot returns the mutex that serializes the entry points of the Container.
func (c *Container[T]) SyncRoot() *syncutils.RWMutex {
	return &c.mutex
}

// code contract - make sure the type implements the interface.
var _ collection.Container[int] = &Container[int]{}

// lockedIterator serializes the calls to an Iterator with the mutex of its Container.
type lockedIterator[T any] struct {
	iterator iterator.Iterator[T]
	mutex    *syncutils.RWMutex
}

func (l *lockedIterator[T]) MoveNext() (bool, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.iterator.MoveNext()
}

func (l *lockedIterator[T]) Current() (T, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.iterator.Current()
}

func (l *lockedIterator[T]) Reset() error {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.iterator.Reset()
}

func (l *lockedIterator[T]) Validate() error {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.iterator.Validate()
}

func (l *lockedIterator[T]) State() iterator.State {
	return l.iterator.State()
}

func (l *lockedIterator[T]) Dispose() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.iterator.Dispose()
}
