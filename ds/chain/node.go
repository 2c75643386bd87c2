package chain

import (
	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ierrors"
	"github.com/iotaledger/linkedds/lo"
)

// Node is a storage unit of a Chain that holds a value and a link to the next Node.
type Node[T any] struct {
	value   T
	next    *Node[T]
	cleared bool
}

// Value returns the value of the Node. It panics if the Node was already removed from its Chain.
func (n *Node[T]) Value() T {
	n.assertNotCleared()

	return n.value
}

// Next returns the next Node of the Chain or nil if n is the last Node. It panics if the Node was already removed from
// its Chain.
func (n *Node[T]) Next() *Node[T] {
	n.assertNotCleared()

	return n.next
}

// Cleared returns true if the Node was removed from its Chain.
func (n *Node[T]) Cleared() bool {
	return n.cleared
}

// clear drops the value and the link of the Node.
func (n *Node[T]) clear() {
	n.value = lo.Zero[T]()
	n.next = nil
	n.cleared = true
}

func (n *Node[T]) assertNotCleared() {
	if n.cleared {
		panic(ierrors.WithStack(ds.ErrClearedNodeAccess))
	}
}
