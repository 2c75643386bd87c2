package list

import (
	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ierrors"
	"github.com/iotaledger/linkedds/lo"
)

// Element is a handle to a value stored in a List. It stays valid until the value is removed from the List.
type Element[T any] struct {
	value   T
	prev    *Element[T]
	next    *Element[T]
	list    *List[T]
	cleared bool
}

// Value returns the value of the Element. It panics if the Element was removed from its List.
func (e *Element[T]) Value() T {
	e.assertNotCleared()

	return e.value
}

// Next returns the next Element of the List or nil if e is the last Element.
func (e *Element[T]) Next() *Element[T] {
	e.assertNotCleared()

	return e.next
}

// Prev returns the previous Element of the List or nil if e is the first Element.
func (e *Element[T]) Prev() *Element[T] {
	e.assertNotCleared()

	return e.prev
}

// Cleared returns true if the Element was removed from its List.
func (e *Element[T]) Cleared() bool {
	return e.cleared
}

func (e *Element[T]) clear() {
	e.value = lo.Zero[T]()
	e.prev = nil
	e.next = nil
	e.list = nil
	e.cleared = true
}

func (e *Element[T]) assertNotCleared() {
	if e.cleared {
		panic(ierrors.WithStack(ds.ErrClearedNodeAccess))
	}
}
