package collection

import (
	"github.com/iotaledger/linkedds/ds/iterator"
)

// Enumerable is a collection that can be walked with a fail-fast Iterator.
type Enumerable[T any] interface {
	// Iterator returns a fail-fast Iterator over the elements of the collection.
	Iterator() iterator.Iterator[T]

	// Count returns the number of elements in the collection.
	Count() uint32
}

// Container is a collection with a fixed removal end (i.e. a Queue or a Stack).
type Container[T any] interface {
	Enumerable[T]

	// Add adds an element to the Container.
	Add(element T)

	// Remove removes and returns the element at the removal end of the Container.
	Remove() (T, error)

	// TryRemove removes and returns the element at the removal end of the Container and true if it exists.
	TryRemove() (T, bool)

	// Peek returns the element at the removal end of the Container without removing it.
	Peek() (T, error)

	// TryPeek returns the element at the removal end of the Container without removing it and true if it exists.
	TryPeek() (T, bool)

	// Clear removes all elements from the Container.
	Clear()

	// IsEmpty returns true if the Container holds no elements.
	IsEmpty() bool

	// Values returns the elements of the Container in removal order.
	Values() []T
}
