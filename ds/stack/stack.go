package stack

import (
	"github.com/iotaledger/linkedds/ds/chain"
	"github.com/iotaledger/linkedds/ds/collection"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/syncutils"
)

// Stack is a last-in-first-out container backed by a LIFO Chain.
type Stack[T any] struct {
	chain *chain.Chain[T]
}

// New returns a new empty Stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{
		chain: chain.New[T](chain.LIFO),
	}
}

// Push pushes an element onto the top of this Stack.
func (s *Stack[T]) Push(element T) {
	s.chain.Add(element)
}

// Pop removes and returns the top element of this Stack. It fails with ds.ErrEmptyContainer if the Stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	return s.chain.Remove()
}

// TryPop removes and returns the top element of this Stack and whether the element exists.
func (s *Stack[T]) TryPop() (T, bool) {
	return s.chain.TryRemove()
}

// Peek returns the top element of this Stack without removing it.
func (s *Stack[T]) Peek() (T, error) {
	return s.chain.Peek()
}

// TryPeek returns the top element of this Stack without removing it and whether the element exists.
func (s *Stack[T]) TryPeek() (T, bool) {
	return s.chain.TryPeek()
}

// Add pushes an element onto the top of this Stack.
func (s *Stack[T]) Add(element T) {
	s.Push(element)
}

// Remove removes and returns the top element of this Stack.
func (s *Stack[T]) Remove() (T, error) {
	return s.Pop()
}

// TryRemove removes and returns the top element of this Stack and whether the element exists.
func (s *Stack[T]) TryRemove() (T, bool) {
	return s.TryPop()
}

// Clear removes all elements from this Stack.
func (s *Stack[T]) Clear() {
	s.chain.Clear()
}

// Count returns the amount of elements in this Stack.
func (s *Stack[T]) Count() uint32 {
	return s.chain.Count()
}

// IsEmpty checks if this Stack is empty.
func (s *Stack[T]) IsEmpty() bool {
	return s.chain.IsEmpty()
}

// Iterator returns a fail-fast Iterator that walks the Stack from the top to the bottom.
func (s *Stack[T]) Iterator() iterator.Iterator[T] {
	return s.chain.Iterator()
}

// Values returns the elements of this Stack from the top to the bottom.
func (s *Stack[T]) Values() []T {
	return s.chain.Values()
}

// Policy returns chain.LIFO.
func (s *Stack[T]) Policy() chain.Policy {
	return s.chain.Policy()
}

// SyncRoot returns the mutex callers can use to coordinate access to the Stack.
func (s *Stack[T]) SyncRoot() *syncutils.RWMutex {
	return s.chain.SyncRoot()
}

// code contract - make sure the type implements the interface.
var _ collection.Container[int] = &Stack[int]{}
