package readonly

import (
	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ds/chain"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/ds/list"
	"github.com/iotaledger/linkedds/ierrors"
)

// List is a read-only view of a list.List. The Elements it hands out can be used to walk the List, but every mutation
// fails with ds.ErrReadOnlyContainer.
type List[T any] struct {
	list *list.List[T]
}

// NewList creates a read-only view of the given List.
func NewList[T any](l *list.List[T]) *List[T] {
	return &List[T]{
		list: l,
	}
}

// region mutations ////////////////////////////////////////////////////////////////////////////////////////////////////

// AddFirst panics with ds.ErrReadOnlyContainer.
func (l *List[T]) AddFirst(T) *list.Element[T] {
	panic(ierrors.WithStack(ds.ErrReadOnlyContainer))
}

// AddLast panics with ds.ErrReadOnlyContainer.
func (l *List[T]) AddLast(T) *list.Element[T] {
	panic(ierrors.WithStack(ds.ErrReadOnlyContainer))
}

// AddBefore fails with ds.ErrReadOnlyContainer.
func (l *List[T]) AddBefore(*list.Element[T], T) (*list.Element[T], error) {
	return nil, ierrors.Wrap(ds.ErrReadOnlyContainer, "unable to add before element")
}

// AddAfter fails with ds.ErrReadOnlyContainer.
func (l *List[T]) AddAfter(*list.Element[T], T) (*list.Element[T], error) {
	return nil, ierrors.Wrap(ds.ErrReadOnlyContainer, "unable to add after element")
}

// Remove fails with ds.ErrReadOnlyContainer.
func (l *List[T]) Remove(*list.Element[T]) (value T, err error) {
	return value, ierrors.Wrap(ds.ErrReadOnlyContainer, "unable to remove element")
}

// RemoveFirst fails with ds.ErrReadOnlyContainer.
func (l *List[T]) RemoveFirst() (value T, err error) {
	return value, ierrors.Wrap(ds.ErrReadOnlyContainer, "unable to remove first element")
}

// RemoveLast fails with ds.ErrReadOnlyContainer.
func (l *List[T]) RemoveLast() (value T, err error) {
	return value, ierrors.Wrap(ds.ErrReadOnlyContainer, "unable to remove last element")
}

// TryRemoveFirst panics with ds.ErrReadOnlyContainer.
func (l *List[T]) TryRemoveFirst() (T, bool) {
	panic(ierrors.WithStack(ds.ErrReadOnlyContainer))
}

// TryRemoveLast panics with ds.ErrReadOnlyContainer.
func (l *List[T]) TryRemoveLast() (T, bool) {
	panic(ierrors.WithStack(ds.ErrReadOnlyContainer))
}

// RemoveValue panics with ds.ErrReadOnlyContainer.
func (l *List[T]) RemoveValue(T) (T, bool) {
	panic(ierrors.WithStack(ds.ErrReadOnlyContainer))
}

// MoveBefore fails with ds.ErrReadOnlyContainer.
func (l *List[T]) MoveBefore(_, _ *list.Element[T]) error {
	return ierrors.Wrap(ds.ErrReadOnlyContainer, "unable to move element")
}

// MoveAfter fails with ds.ErrReadOnlyContainer.
func (l *List[T]) MoveAfter(_, _ *list.Element[T]) error {
	return ierrors.Wrap(ds.ErrReadOnlyContainer, "unable to move element")
}

// MoveToFirst fails with ds.ErrReadOnlyContainer.
func (l *List[T]) MoveToFirst(*list.Element[T]) error {
	return ierrors.Wrap(ds.ErrReadOnlyContainer, "unable to move element to the front")
}

// MoveToLast fails with ds.ErrReadOnlyContainer.
func (l *List[T]) MoveToLast(*list.Element[T]) error {
	return ierrors.Wrap(ds.ErrReadOnlyContainer, "unable to move element to the back")
}

// Swap fails with ds.ErrReadOnlyContainer.
func (l *List[T]) Swap(_, _ *list.Element[T]) error {
	return ierrors.Wrap(ds.ErrReadOnlyContainer, "unable to swap elements")
}

// PushBackList panics with ds.ErrReadOnlyContainer.
func (l *List[T]) PushBackList(*list.List[T]) {
	panic(ierrors.WithStack(ds.ErrReadOnlyContainer))
}

// Clear panics with ds.ErrReadOnlyContainer.
func (l *List[T]) Clear() {
	panic(ierrors.WithStack(ds.ErrReadOnlyContainer))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region reads ////////////////////////////////////////////////////////////////////////////////////////////////////////

// First returns the first Element of the wrapped List or nil if it is empty.
func (l *List[T]) First() *list.Element[T] {
	return l.list.First()
}

// Last returns the last Element of the wrapped List or nil if it is empty.
func (l *List[T]) Last() *list.Element[T] {
	return l.list.Last()
}

// Count returns the number of Elements in the wrapped List.
func (l *List[T]) Count() uint32 {
	return l.list.Count()
}

// IsEmpty returns true if the wrapped List holds no Elements.
func (l *List[T]) IsEmpty() bool {
	return l.list.IsEmpty()
}

// Find returns the first Element that holds the given value or nil if there is none.
func (l *List[T]) Find(value T) *list.Element[T] {
	return l.list.Find(value)
}

// FindLast returns the last Element that holds the given value or nil if there is none.
func (l *List[T]) FindLast(value T) *list.Element[T] {
	return l.list.FindLast(value)
}

// Iterator returns a fail-fast Iterator that walks the wrapped List from the first to the last Element.
func (l *List[T]) Iterator() iterator.Iterator[T] {
	return l.list.Iterator()
}

// IteratorReversed returns a fail-fast Iterator that walks the wrapped List from the last to the first Element.
func (l *List[T]) IteratorReversed() iterator.Iterator[T] {
	return l.list.IteratorReversed()
}

// Traverse returns a fail-fast Iterator that walks the wrapped List in the given order.
func (l *List[T]) Traverse(order chain.Policy) iterator.Iterator[T] {
	return l.list.Traverse(order)
}

// ForEach executes the given callback for the value of each Element in the wrapped List.
func (l *List[T]) ForEach(callback func(value T) error) error {
	return l.list.ForEach(callback)
}

// ForEachReverse executes the given callback for the value of each Element in the wrapped List in reverse order.
func (l *List[T]) ForEachReverse(callback func(value T) error) error {
	return l.list.ForEachReverse(callback)
}

// Values returns a slice of all values in the wrapped List.
func (l *List[T]) Values() []T {
	return l.list.Values()
}

// ValuesReversed returns a slice of all values in the wrapped List in reverse order.
func (l *List[T]) ValuesReversed() []T {
	return l.list.ValuesReversed()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
