package chain

import (
	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/ierrors"
	"github.com/iotaledger/linkedds/syncutils"
)

// Chain is a singly linked list of Nodes whose insertion end is selected by a Policy. It is the common substrate of
// Queue and Stack. A Chain is not safe for concurrent use.
type Chain[T any] struct {
	policy Policy
	first  *Node[T]
	last   *Node[T]
	count  uint32
	guard  iterator.Guard

	syncRoot syncutils.RWMutex
}

// New creates an empty Chain with the given Policy.
func New[T any](policy Policy) *Chain[T] {
	return &Chain[T]{
		policy: policy,
	}
}

// Policy returns the Policy of the Chain.
func (c *Chain[T]) Policy() Policy {
	return c.policy
}

// Add weaves a new Node holding the given value into the Chain.
func (c *Chain[T]) Add(value T) {
	node := &Node[T]{value: value}

	switch c.policy {
	case LIFO:
		node.next = c.first
		c.first = node
	default:
		if c.last == nil {
			c.first = node
		} else {
			c.last.next = node
		}
		c.last = node
	}

	c.count = ds.IncreaseCount(c.count)
	c.guard.NoteMutation()
}

// Remove removes the front Node and returns its value.
func (c *Chain[T]) Remove() (value T, err error) {
	if c.first == nil {
		return value, ierrors.Wrapf(ds.ErrEmptyContainer, "unable to remove from %s chain", c.policy)
	}

	return c.removeFirst(), nil
}

// TryRemove removes the front Node and returns its value if the Chain is not empty.
func (c *Chain[T]) TryRemove() (value T, removed bool) {
	if c.first == nil {
		return value, false
	}

	return c.removeFirst(), true
}

// Peek returns the value of the front Node without removing it.
func (c *Chain[T]) Peek() (value T, err error) {
	if c.first == nil {
		return value, ierrors.Wrapf(ds.ErrEmptyContainer, "unable to peek into %s chain", c.policy)
	}

	return c.first.value, nil
}

// TryPeek returns the value of the front Node without removing it if the Chain is not empty.
func (c *Chain[T]) TryPeek() (value T, exists bool) {
	if c.first == nil {
		return value, false
	}

	return c.first.value, true
}

// Clear removes and clears all Nodes of the Chain.
func (c *Chain[T]) Clear() {
	if c.first == nil {
		return
	}

	for node := c.first; node != nil; {
		next := node.next
		node.clear()
		node = next
	}

	c.first, c.last, c.count = nil, nil, 0
	c.guard.NoteMutation()
}

// Count returns the number of values in the Chain.
func (c *Chain[T]) Count() uint32 {
	return c.count
}

// IsEmpty returns true if the Chain holds no values.
func (c *Chain[T]) IsEmpty() bool {
	return c.count == 0
}

// First returns the front Node of the Chain or nil if it is empty.
func (c *Chain[T]) First() *Node[T] {
	return c.first
}

// Iterator returns a fail-fast Iterator that walks the Chain in removal order.
func (c *Chain[T]) Iterator() iterator.Iterator[T] {
	return iterator.NewEnumerator[T](&c.guard, &stepper[T]{chain: c})
}

// Values returns the values of the Chain in removal order.
func (c *Chain[T]) Values() []T {
	values := make([]T, 0, c.count)
	for node := c.first; node != nil; node = node.next {
		values = append(values, node.value)
	}

	return values
}

// ForEach executes the callback for every value in removal order. The iteration is aborted if the callback or the
// underlying Iterator returns an error.
func (c *Chain[T]) ForEach(callback func(value T) error) error {
	return iterator.ForEach(c.Iterator(), callback)
}

// SyncRoot returns the mutex callers can use to coordinate access to the Chain from multiple goroutines. The Chain
// itself never locks it.
func (c *Chain[T]) SyncRoot() *syncutils.RWMutex {
	return &c.syncRoot
}

// removeFirst is the single place where Nodes are destroyed: it reads the value and the successor before clearing the
// Node and advancing the front.
func (c *Chain[T]) removeFirst() T {
	node := c.first
	value, next := node.value, node.next

	node.clear()
	c.first = next
	if next == nil {
		c.last = nil
	}

	c.count = ds.DecreaseCount(c.count)
	c.guard.NoteMutation()

	return value
}

// stepper walks the Nodes of a Chain.
type stepper[T any] struct {
	chain   *Chain[T]
	current *Node[T]
	started bool
}

func (s *stepper[T]) Step() (value T, ok bool, err error) {
	if !s.started {
		s.started = true
		s.current = s.chain.first
	} else if s.current != nil {
		s.current = s.current.next
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
