package ds

import (
	"github.com/iotaledger/linkedds/ierrors"
)

var (
	// ErrEmptyContainer is returned when a value is removed or peeked from an empty container.
	ErrEmptyContainer = ierrors.New("container is empty")

	// ErrConcurrentModification is returned when a container was modified while an iterator over it was live.
	ErrConcurrentModification = ierrors.New("container was modified during iteration")

	// ErrInvalidIteratorState is returned when an iterator is used in a state that does not permit the operation.
	ErrInvalidIteratorState = ierrors.New("invalid iterator state")

	// ErrForeignNode is returned when a node handle is passed to a container that does not own it.
	ErrForeignNode = ierrors.New("node does not belong to this container")

	// ErrReadOnlyContainer is returned when a mutation is attempted on a read-only view.
	ErrReadOnlyContainer = ierrors.New("container is read-only")

	// ErrClearedNodeAccess is returned when a node is accessed after it was removed from its container.
	ErrClearedNodeAccess = ierrors.New("node was cleared")

	// ErrCapacityExceeded is returned when a copy target cannot hold all elements of a container.
	ErrCapacityExceeded = ierrors.New("capacity exceeded")

	// ErrInvariantViolation is raised when the internal structure of a container is found to be inconsistent.
	ErrInvariantViolation = ierrors.New("container invariant violated")
)
