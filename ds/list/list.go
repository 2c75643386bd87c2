package list

import (
	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ds/chain"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/ierrors"
	"github.com/iotaledger/linkedds/options"
	"github.com/iotaledger/linkedds/syncutils"
)

// region List /////////////////////////////////////////////////////////////////////////////////////////////////////////

// List is a doubly linked list that hands out Element handles for O(1) insertion, removal and relocation anywhere in
// the List. A List is not safe for concurrent use.
type List[T any] struct {
	// first is the head of the List (nil if the List is empty).
	first *Element[T]

	// last is the tail of the List (nil if the List is empty).
	last *Element[T]

	// count is the number of Elements in the List.
	count uint32

	// guard invalidates the Iterators of the List on structural mutations.
	guard iterator.Guard

	// equalityFunc is used by the value based lookups.
	equalityFunc func(a, b T) bool

	syncRoot syncutils.RWMutex
}

// New creates a new empty List.
func New[T any](opts ...options.Option[List[T]]) *List[T] {
	return options.Apply(&List[T]{
		equalityFunc: ds.Equal[T],
	}, opts)
}

// First returns the first Element of the List or nil if it is empty.
func (l *List[T]) First() *Element[T] {
	return l.first
}

// Last returns the last Element of the List or nil if it is empty.
func (l *List[T]) Last() *Element[T] {
	return l.last
}

// Count returns the number of Elements in the List.
func (l *List[T]) Count() uint32 {
	return l.count
}

// IsEmpty returns true if the List holds no Elements.
func (l *List[T]) IsEmpty() bool {
	return l.count == 0
}

// AddFirst inserts and returns a new Element with the given value at the front of the List.
func (l *List[T]) AddFirst(value T) *Element[T] {
	return l.insert(nil, value, l.first)
}

// AddLast inserts and returns a new Element with the given value at the back of the List.
func (l *List[T]) AddLast(value T) *Element[T] {
	return l.insert(l.last, value, nil)
}

// AddBefore inserts and returns a new Element with the given value immediately before the given Element.
func (l *List[T]) AddBefore(element *Element[T], value T) (*Element[T], error) {
	if err := l.checkOwnership(element); err != nil {
		return nil, ierrors.Wrap(err, "unable to add before element")
	}

	return l.insert(element.prev, value, element), nil
}

// AddAfter inserts and returns a new Element with the given value immediately after the given Element.
func (l *List[T]) AddAfter(element *Element[T], value T) (*Element[T], error) {
	if err := l.checkOwnership(element); err != nil {
		return nil, ierrors.Wrap(err, "unable to add after element")
	}

	return l.insert(element, value, element.next), nil
}

// PushBackList inserts the values of the other List at the back of this List.
func (l *List[T]) PushBackList(other *List[T]) {
	for _, value := range other.Values() {
		l.AddLast(value)
	}
}

// Remove removes the given Element from the List and returns its value. The Element is cleared afterwards.
func (l *List[T]) Remove(element *Element[T]) (value T, err error) {
	if err = l.checkOwnership(element); err != nil {
		return value, ierrors.Wrap(err, "unable to remove element")
	}

	return l.remove(element), nil
}

// RemoveFirst removes the first Element of the List and returns its value.
func (l *List[T]) RemoveFirst() (value T, err error) {
	if l.first == nil {
		return value, ierrors.Wrap(ds.ErrEmptyContainer, "unable to remove first element")
	}

	return l.remove(l.first), nil
}

// TryRemoveFirst removes the first Element of the List and returns its value if the List is not empty.
func (l *List[T]) TryRemoveFirst() (value T, removed bool) {
	if l.first == nil {
		return value, false
	}

	return l.remove(l.first), true
}

// RemoveLast removes the last Element of the List and returns its value.
func (l *List[T]) RemoveLast() (value T, err error) {
	if l.last == nil {
		return value, ierrors.Wrap(ds.ErrEmptyContainer, "unable to remove last element")
	}

	return l.remove(l.last), nil
}

// TryRemoveLast removes the last Element of the List and returns its value if the List is not empty.
func (l *List[T]) TryRemoveLast() (value T, removed bool) {
	if l.last == nil {
		return value, false
	}

	return l.remove(l.last), true
}

// RemoveValue removes the first Element (in FIFO order) that holds the given value. It returns the value that was
// stored in the removed Element, which can differ from the given one if a custom equality is used.
func (l *List[T]) RemoveValue(value T) (removedValue T, removed bool) {
	element := l.Find(value)
	if element == nil {
		return removedValue, false
	}

	return l.remove(element), true
}

// Find returns the first Element (in FIFO order) that holds the given value or nil if there is none.
func (l *List[T]) Find(value T) *Element[T] {
	for element := l.first; element != nil; element = element.next {
		if l.equalityFunc(element.value, value) {
			return element
		}
	}

	return nil
}

// FindLast returns the last Element (the first one in LIFO order) that holds the given value or nil if there is none.
func (l *List[T]) FindLast(value T) *Element[T] {
	for element := l.last; element != nil; element = element.prev {
		if l.equalityFunc(element.value, value) {
			return element
		}
	}

	return nil
}

// MoveBefore moves the given Element immediately before the anchor.
func (l *List[T]) MoveBefore(element, anchor *Element[T]) error {
	if err := l.checkOwnership(element, anchor); err != nil {
		return ierrors.Wrap(err, "unable to move element")
	}

	if element == anchor || anchor.prev == element {
		return nil
	}

	l.unlink(element)
	l.link(anchor.prev, element, anchor)
	l.guard.NoteMutation()

	return nil
}

// MoveAfter moves the given Element immediately after the anchor.
func (l *List[T]) MoveAfter(element, anchor *Element[T]) error {
	if err := l.checkOwnership(element, anchor); err != nil {
		return ierrors.Wrap(err, "unable to move element")
	}

	if element == anchor || anchor.next == element {
		return nil
	}

	l.unlink(element)
	l.link(anchor, element, anchor.next)
	l.guard.NoteMutation()

	return nil
}

// MoveToFirst moves the given Element to the front of the List.
func (l *List[T]) MoveToFirst(element *Element[T]) error {
	if err := l.checkOwnership(element); err != nil {
		return ierrors.Wrap(err, "unable to move element to the front")
	}

	if l.first == element {
		return nil
	}

	l.unlink(element)
	l.link(nil, element, l.first)
	l.guard.NoteMutation()

	return nil
}

// MoveToLast moves the given Element to the back of the List.
func (l *List[T]) MoveToLast(element *Element[T]) error {
	if err := l.checkOwnership(element); err != nil {
		return ierrors.Wrap(err, "unable to move element to the back")
	}

	if l.last == element {
		return nil
	}

	l.unlink(element)
	l.link(l.last, element, nil)
	l.guard.NoteMutation()

	return nil
}

// Swap exchanges the positions of the two Elements. The values stay with their Elements, so existing handles keep
// pointing at the same values.
func (l *List[T]) Swap(x, y *Element[T]) error {
	if err := l.checkOwnership(x, y); err != nil {
		return ierrors.Wrap(err, "unable to swap elements")
	}

	switch {
	case x == y:
		return nil
	case x.next == y:
		l.unlink(x)
		l.link(y, x, y.next)
	case y.next == x:
		l.unlink(y)
		l.link(x, y, x.next)
	default:
		xPrev, xNext := x.prev, x.next
		yPrev, yNext := y.prev, y.next

		l.unlink(x)
		l.unlink(y)
		l.link(xPrev, y, xNext)
		l.link(yPrev, x, yNext)
	}

	l.guard.NoteMutation()

	return nil
}

// Clear removes all Elements from the List and clears them.
func (l *List[T]) Clear() {
	if l.first == nil {
		return
	}

	for element := l.first; element != nil; {
		next := element.next
		element.clear()
		element = next
	}

	l.first, l.last, l.count = nil, nil, 0
	l.guard.NoteMutation()
}

// Iterator returns a fail-fast Iterator that walks the List from the first to the last Element.
func (l *List[T]) Iterator() iterator.Iterator[T] {
	return l.Traverse(chain.FIFO)
}

// IteratorReversed returns a fail-fast Iterator that walks the List from the last to the first Element.
func (l *List[T]) IteratorReversed() iterator.Iterator[T] {
	return l.Traverse(chain.LIFO)
}

// Traverse returns a fail-fast Iterator that walks the List in the given order (FIFO starts at the first Element, LIFO
// at the last one).
func (l *List[T]) Traverse(order chain.Policy) iterator.Iterator[T] {
	return iterator.NewEnumerator[T](&l.guard, &stepper[T]{list: l, order: order})
}

// ForEach executes the given callback for the value of each Element in the List. The iteration is aborted if the
// callback returns an error or the List is modified by the callback.
func (l *List[T]) ForEach(callback func(value T) error) error {
	return iterator.ForEach(l.Iterator(), callback)
}

// ForEachReverse executes the given callback for the value of each Element in the List in reverse order. The iteration
// is aborted if the callback returns an error or the List is modified by the callback.
func (l *List[T]) ForEachReverse(callback func(value T) error) error {
	return iterator.ForEach(l.IteratorReversed(), callback)
}

// Range executes the given callback for the value of each Element in the List. It panics if the callback modifies the
// List.
func (l *List[T]) Range(callback func(value T)) {
	l.rangeIterator(l.Iterator(), callback)
}

// RangeReverse executes the given callback for the value of each Element in the List in reverse order. It panics if the
// callback modifies the List.
func (l *List[T]) RangeReverse(callback func(value T)) {
	l.rangeIterator(l.IteratorReversed(), callback)
}

// Values returns a slice of all values in the List.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.count)
	for element := l.first; element != nil; element = element.next {
		values = append(values, element.value)
	}

	return values
}

// ValuesReversed returns a slice of all values in the List in reverse order.
func (l *List[T]) ValuesReversed() []T {
	values := make([]T, 0, l.count)
	for element := l.last; element != nil; element = element.prev {
		values = append(values, element.value)
	}

	return values
}

// SyncRoot returns the mutex callers can use to coordinate access to the List from multiple goroutines. The List
// itself never locks it.
func (l *List[T]) SyncRoot() *syncutils.RWMutex {
	return &l.syncRoot
}

// checkOwnership returns an error if one of the given Elements was cleared or belongs to another List.
func (l *List[T]) checkOwnership(elements ...*Element[T]) error {
	for _, element := range elements {
		switch {
		case element == nil:
			return ierrors.Wrap(ds.ErrForeignNode, "element is nil")
		case element.cleared:
			return ierrors.WithStack(ds.ErrClearedNodeAccess)
		case element.list != l:
			return ierrors.WithStack(ds.ErrForeignNode)
		}
	}

	return nil
}

// insert creates a new Element between prev and next.
func (l *List[T]) insert(prev *Element[T], value T, next *Element[T]) *Element[T] {
	element := &Element[T]{value: value, list: l}
	l.link(prev, element, next)

	l.count = ds.IncreaseCount(l.count)
	l.guard.NoteMutation()

	return element
}

// remove unlinks and clears the given Element and returns its value.
func (l *List[T]) remove(element *Element[T]) T {
	value := element.value

	l.unlink(element)
	element.clear()

	l.count = ds.DecreaseCount(l.count)
	l.guard.NoteMutation()

	return value
}

// link welds the Element between prev and next (previous to new first, then new to next).
func (l *List[T]) link(prev, element, next *Element[T]) {
	element.prev = prev
	if prev == nil {
		l.first = element
	} else {
		prev.next = element
	}

	element.next = next
	if next == nil {
		l.last = element
	} else {
		next.prev = element
	}
}

// unlink welds the neighbors of the Element together and detaches it.
func (l *List[T]) unlink(element *Element[T]) {
	prev, next := element.prev, element.next

	if prev == nil {
		l.first = next
	} else {
		prev.next = next
	}

	if next == nil {
		l.last = prev
	} else {
		next.prev = prev
	}

	element.prev, element.next = nil, nil
}

func (l *List[T]) rangeIterator(it iterator.Iterator[T], callback func(value T)) {
	if err := iterator.ForEach(it, func(value T) error {
		callback(value)

		return nil
	}); err != nil {
		panic(err)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Options //////////////////////////////////////////////////////////////////////////////////////////////////////

// WithEqualityFunc sets the equality that is used by Find, FindLast and RemoveValue.
func WithEqualityFunc[T any](equalityFunc func(a, b T) bool) options.Option[List[T]] {
	return func(l *List[T]) {
		l.equalityFunc = equalityFunc
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region stepper //////////////////////////////////////////////////////////////////////////////////////////////////////

// stepper walks the Elements of a List in FIFO (first to last) or LIFO (last to first) order.
type stepper[T any] struct {
	list    *List[T]
	order   chain.Policy
	current *Element[T]
	started bool
}

func (s *stepper[T]) Step() (value T, ok bool, err error) {
	switch {
	case !s.started:
		s.started = true
		s.current = s.list.last
		if s.order == chain.FIFO {
			s.current = s.list.first
		}
	case s.current == nil:
	case s.order == chain.FIFO:
		s.current = s.current.next
	default:
		s.current = s.current.prev
	}

	if s.current == nil {
		return value, false, nil
	}

	return s.current.value, true, nil
}

func (s *stepper[T]) Rewind() error {
	s.current, s.started = nil, false

	return nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
