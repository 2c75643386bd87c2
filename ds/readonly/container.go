package readonly

import (
	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ds/collection"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/ierrors"
)

// Container is a read-only view of a collection.Container. Mutations fail with ds.ErrReadOnlyContainer: methods with an
// error result return it, all others panic with it.
type Container[T any] struct {
	container collection.Container[T]
}

// NewContainer creates a read-only view of the given Container.
func NewContainer[T any](container collection.Container[T]) *Container[T] {
	return &Container[T]{
		container: container,
	}
}

// Add panics with ds.ErrReadOnlyContainer.
func (c *Container[T]) Add(T) {
	panic(ierrors.WithStack(ds.ErrReadOnlyContainer))
}

// Remove fails with ds.ErrReadOnlyContainer.
func (c *Container[T]) Remove() (value T, err error) {
	return value, ierrors.Wrap(ds.ErrReadOnlyContainer, "unable to remove element")
}

// TryRemove panics with ds.ErrReadOnlyContainer.
func (c *Container[T]) TryRemove() (T, bool) {
	panic(ierrors.WithStack(ds.ErrReadOnlyContainer))
}

// Clear panics with ds.ErrReadOnlyContainer.
func (c *Container[T]) Clear() {
	panic(ierrors.WithStack(ds.ErrReadOnlyContainer))
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

// Values returns the elements of the wrapped Container in removal order.
func (c *Container[T]) Values() []T {
	return c.container.Values()
}

// code contract - make sure the type implements the interface.
var _ collection.Container[int] = &Container[int]{}
