package collection

import (
	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/ierrors"
)

// Adapter exposes bulk copy-out and containment checks on top of any Enumerable. All methods walk the collection with
// its fail-fast Iterator, so they fail with ds.ErrConcurrentModification if the collection changes while they run.
type Adapter[T any] struct {
	source       Enumerable[T]
	equalityFunc func(a, b T) bool
}

// NewAdapter creates an Adapter for the given Enumerable that uses ds.Equal for Contains.
func NewAdapter[T any](source Enumerable[T]) *Adapter[T] {
	return NewAdapterWithEquality(source, ds.Equal[T])
}

// NewAdapterWithEquality creates an Adapter for the given Enumerable that uses the given equality for Contains.
func NewAdapterWithEquality[T any](source Enumerable[T], equalityFunc func(a, b T) bool) *Adapter[T] {
	return &Adapter[T]{
		source:       source,
		equalityFunc: equalityFunc,
	}
}

// CopyTo copies the elements of the collection into the buffer, starting at the given offset.
func (a *Adapter[T]) CopyTo(buffer []T, offset int) error {
	if offset < 0 || offset > len(buffer) {
		return ierrors.Wrapf(ds.ErrCapacityExceeded, "offset %d is outside of a buffer of length %d", offset, len(buffer))
	}

	if count := int(a.source.Count()); len(buffer)-offset < count {
		return ierrors.Wrapf(ds.ErrCapacityExceeded, "%d elements do not fit into a buffer of length %d at offset %d", count, len(buffer), offset)
	}

	index := offset

	return iterator.ForEach(a.source.Iterator(), func(value T) error {
		if index >= len(buffer) {
			return ierrors.Wrapf(ds.ErrCapacityExceeded, "buffer of length %d exhausted", len(buffer))
		}

		buffer[index] = value
		index++

		return nil
	})
}

// ToArray returns a new slice that holds the elements of the collection. The containers of this module never report
// more than ds.MaxCount elements, so only foreign Enumerables can fail with ds.ErrCapacityExceeded.
func (a *Adapter[T]) ToArray() ([]T, error) {
	count := a.source.Count()
	if count > ds.MaxCount {
		return nil, ierrors.Wrapf(ds.ErrCapacityExceeded, "%d elements exceed the maximum array length", count)
	}

	values := make([]T, count)
	if err := a.CopyTo(values, 0); err != nil {
		return nil, err
	}

	return values, nil
}

// Contains returns true if the collection holds an element that equals the given value.
func (a *Adapter[T]) Contains(value T) (contains bool, err error) {
	if err = iterator.ForEach(a.source.Iterator(), func(element T) error {
		if a.equalityFunc(element, value) {
			return errStopIteration
		}

		return nil
	}); err != nil {
		if ierrors.Is(err, errStopIteration) {
			return true, nil
		}

		return false, err
	}

	return false, nil
}

// Count returns the number of elements in the collection.
func (a *Adapter[T]) Count() uint32 {
	return a.source.Count()
}

// errStopIteration aborts the iteration of Contains once a match was found.
var errStopIteration = ierrors.New("stop iteration")
