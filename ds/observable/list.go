package observable

import (
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/ds/list"
)

// List is an observable view of a list.List. Values added or removed at the ends report their index, all other
// positions are reported as -1. Moves and swaps raise a Reset notification.
type List[T any] struct {
	list *list.List[T]

	*notifier[T]
}

// NewList creates an observable view of the given List.
func NewList[T any](l *list.List[T], opts ...Option) *List[T] {
	return &List[T]{
		list:     l,
		notifier: newNotifier[T](opts),
	}
}

// Events returns the Events of the List.
func (l *List[T]) Events() *Events[T] {
	return l.events
}

// AddFirst inserts a new Element at the front of the List.
func (l *List[T]) AddFirst(value T) *list.Element[T] {
	oldCount := l.list.Count()
	element := l.list.AddFirst(value)
	l.notify(Added, value, 0, oldCount, l.list.Count())

	return element
}

// AddLast inserts a new Element at the back of the List.
func (l *List[T]) AddLast(value T) *list.Element[T] {
	oldCount := l.list.Count()
	element := l.list.AddLast(value)
	l.notify(Added, value, int(oldCount), oldCount, l.list.Count())

	return element
}

// AddBefore inserts a new Element immediately before the given Element.
func (l *List[T]) AddBefore(anchor *list.Element[T], value T) (*list.Element[T], error) {
	oldCount := l.list.Count()
	element, err := l.list.AddBefore(anchor, value)
	if err != nil {
		return nil, err
	}

	l.notify(Added, value, -1, oldCount, l.list.Count())

	return element, nil
}

// AddAfter inserts a new Element immediately after the given Element.
func (l *List[T]) AddAfter(anchor *list.Element[T], value T) (*list.Element[T], error) {
	oldCount := l.list.Count()
	element, err := l.list.AddAfter(anchor, value)
	if err != nil {
		return nil, err
	}

	l.notify(Added, value, -1, oldCount, l.list.Count())

	return element, nil
}

// Remove removes the given Element.
func (l *List[T]) Remove(element *list.Element[T]) (value T, err error) {
	oldCount := l.list.Count()
	if value, err = l.list.Remove(element); err != nil {
		return value, err
	}

	l.notify(Removed, value, -1, oldCount, l.list.Count())

	return value, nil
}

// RemoveFirst removes the first Element.
func (l *List[T]) RemoveFirst() (value T, err error) {
	oldCount := l.list.Count()
	if value, err = l.list.RemoveFirst(); err != nil {
		return value, err
	}

	l.notify(Removed, value, 0, oldCount, l.list.Count())

	return value, nil
}

// RemoveLast removes the last Element.
func (l *List[T]) RemoveLast() (value T, err error) {
	oldCount := l.list.Count()
	if value, err = l.list.RemoveLast(); err != nil {
		return value, err
	}

	l.notify(Removed, value, int(l.list.Count()), oldCount, l.list.Count())

	return value, nil
}

// TryRemoveFirst removes the first Element if the List is not empty.
func (l *List[T]) TryRemoveFirst() (value T, removed bool) {
	oldCount := l.list.Count()
	if value, removed = l.list.TryRemoveFirst(); removed {
		l.notify(Removed, value, 0, oldCount, l.list.Count())
	}

	return value, removed
}

// TryRemoveLast removes the last Element if the List is not empty.
func (l *List[T]) TryRemoveLast() (value T, removed bool) {
	oldCount := l.list.Count()
	if value, removed = l.list.TryRemoveLast(); removed {
		l.notify(Removed, value, int(l.list.Count()), oldCount, l.list.Count())
	}

	return value, removed
}

// RemoveValue removes the first Element that holds the given value. The notification carries the stored value.
func (l *List[T]) RemoveValue(value T) (removedValue T, removed bool) {
	oldCount := l.list.Count()
	if removedValue, removed = l.list.RemoveValue(value); removed {
		l.notify(Removed, removedValue, -1, oldCount, l.list.Count())
	}

	return removedValue, removed
}

// MoveBefore moves the given Element immediately before the anchor.
func (l *List[T]) MoveBefore(element, anchor *list.Element[T]) error {
	return l.relink(func() error { return l.list.MoveBefore(element, anchor) })
}

// MoveAfter moves the given Element immediately after the anchor.
func (l *List[T]) MoveAfter(element, anchor *list.Element[T]) error {
	return l.relink(func() error { return l.list.MoveAfter(element, anchor) })
}

// MoveToFirst moves the given Element to the front of the List.
func (l *List[T]) MoveToFirst(element *list.Element[T]) error {
	return l.relink(func() error { return l.list.MoveToFirst(element) })
}

// MoveToLast moves the given Element to the back of the List.
func (l *List[T]) MoveToLast(element *list.Element[T]) error {
	return l.relink(func() error { return l.list.MoveToLast(element) })
}

// Swap exchanges the positions of the two Elements.
func (l *List[T]) Swap(x, y *list.Element[T]) error {
	return l.relink(func() error { return l.list.Swap(x, y) })
}

// Clear removes all Elements. Clearing an empty List raises nothing.
func (l *List[T]) Clear() {
	oldCount := l.list.Count()
	if oldCount == 0 {
		return
	}

	l.list.Clear()
	l.notifyReset(oldCount, l.list.Count())
}

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

// Values returns a slice of all values in the wrapped List.
func (l *List[T]) Values() []T {
	return l.list.Values()
}

// relink applies a move or a swap and raises a Reset notification if it succeeded.
func (l *List[T]) relink(move func() error) error {
	if err := move(); err != nil {
		return err
	}

	l.notifyReset(l.list.Count(), l.list.Count())

	return nil
}
