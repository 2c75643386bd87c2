package observable

import (
	"github.com/iotaledger/linkedds/ds/chain"
	"github.com/iotaledger/linkedds/ds/collection"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/lo"
)

// SequentialContainer is a collection.Container that knows on which end new values are added.
type SequentialContainer[T any] interface {
	collection.Container[T]

	Policy() chain.Policy
}

// Container is an observable view of a SequentialContainer. The policy of the wrapped Container determines the index
// that is reported for added values: FIFO containers add at the end, LIFO containers at the front. Removals always
// happen at index 0.
type Container[T any] struct {
	container SequentialContainer[T]

	*notifier[T]
}

// NewContainer creates an observable view of the given Container.
func NewContainer[T any](container SequentialContainer[T], opts ...Option) *Container[T] {
	return &Container[T]{
		container: container,
		notifier:  newNotifier[T](opts),
	}
}

// Events returns the Events of the Container.
func (c *Container[T]) Events() *Events[T] {
	return c.events
}

// Add adds an element and raises an Added notification.
func (c *Container[T]) Add(element T) {
	oldCount := c.container.Count()
	c.container.Add(element)

	newCount := c.container.Count()
	c.notify(Added, element, lo.Cond(c.Policy() == chain.FIFO, int(newCount)-1, 0), oldCount, newCount)
}

// Remove removes the element at the removal end and raises a Removed notification.
func (c *Container[T]) Remove() (element T, err error) {
	oldCount := c.container.Count()
	if element, err = c.container.Remove(); err != nil {
		return element, err
	}

	c.notify(Removed, element, 0, oldCount, c.container.Count())

	return element, nil
}

// TryRemove removes the element at the removal end and raises a Removed notification if it existed.
func (c *Container[T]) TryRemove() (element T, removed bool) {
	oldCount := c.container.Count()
	if element, removed = c.container.TryRemove(); removed {
		c.notify(Removed, element, 0, oldCount, c.container.Count())
	}

	return element, removed
}

// Clear removes all elements and raises a Reset notification. Clearing an empty Container raises nothing.
func (c *Container[T]) Clear() {
	oldCount := c.container.Count()
	if oldCount == 0 {
		return
	}

	c.container.Clear()
	c.notifyReset(oldCount, c.container.Count())
}

// Peek returns the element at the removal end of the wrapped Container.
func (c *Container[T]) Peek() (T, error) {
	return c.container.Peek()
}

// TryPeek returns the element at the removal end of the wrapped Container and true if it exists.
func (c *Container[T]) TryPeek() (T, bool) {
	return c.container.TryPeek()
}

// Count returns the number of elements in the wrapped Container.
func (c *Container[T]) Count() uint32 {
	return c.container.Count()
}

// IsEmpty returns true if the wrapped Container holds no elements.
func (c *Container[T]) IsEmpty() bool {
	return c.container.IsEmpty()
}

// Iterator returns a fail-fast Iterator over the wrapped Container.
func (c *Container[T]) Iterator() iterator.Iterator[T] {
	return c.container.Iterator()
}

// Policy returns the Policy of the wrapped Container.
func (c *Container[T]) Policy() chain.Policy {
	return c.container.Policy()
}

// Values returns the elements of the wrapped Container in removal order.
func (c *Container[T]) Values() []T {
	return c.container.Values()
}

// code contract - make sure the type implements the interface.
var _ SequentialContainer[int] = &Container[int]{}
