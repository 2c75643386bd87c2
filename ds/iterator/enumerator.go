package iterator

import (
	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ierrors"
	"github.com/iotaledger/linkedds/lo"
)

// Enumerator is the state machine shared by all Iterators of the module. It pins the version of the Guard of the
// underlying container when it is created and checks it before every step, so a modified container never leads to a
// traversal over stale nodes.
type Enumerator[T any] struct {
	guard         *Guard
	pinnedVersion uint32
	stepper       Stepper[T]
	state         State
	current       T
}

// NewEnumerator creates an Enumerator that walks the given Stepper. The guard may be nil for Steppers that do not read
// from a container directly (i.e. adapters that wrap other Iterators).
func NewEnumerator[T any](guard *Guard, stepper Stepper[T]) *Enumerator[T] {
	e := &Enumerator[T]{
		guard:   guard,
		stepper: stepper,
	}

	if guard != nil {
		e.pinnedVersion = guard.BeginIteration()
	}

	return e
}

// MoveNext advances the Enumerator to the next element and returns false once it moved past the last element.
func (e *Enumerator[T]) MoveNext() (success bool, err error) {
	if e.state == Disposed {
		return false, ierrors.Wrap(ds.ErrInvalidIteratorState, "unable to advance a disposed iterator")
	}

	if err = e.Validate(); err != nil {
		return false, err
	}

	if e.state == Completed {
		return false, nil
	}

	value, ok, err := e.stepper.Step()
	if err != nil {
		return false, err
	}

	if !ok {
		e.state = Completed
		e.current = lo.Zero[T]()

		return false, nil
	}

	e.state = Started
	e.current = value

	return true, nil
}

// Current returns the element the Enumerator currently points at.
func (e *Enumerator[T]) Current() (value T, err error) {
	if e.state == Disposed {
		return value, ierrors.Wrap(ds.ErrInvalidIteratorState, "unable to read from a disposed iterator")
	}

	if err = e.Validate(); err != nil {
		return value, err
	}

	if e.state != Started {
		return value, ierrors.Wrapf(ds.ErrInvalidIteratorState, "no current element in state %s", e.state)
	}

	return e.current, nil
}

// Reset moves the Enumerator back in front of the first element and pins the current version of the container. It
// fails if the Stepper does not implement Rewinder.
func (e *Enumerator[T]) Reset() error {
	if e.state == Disposed {
		return ierrors.Wrap(ds.ErrInvalidIteratorState, "unable to reset a disposed iterator")
	}

	rewinder, supportsReset := e.stepper.(Rewinder)
	if !supportsReset {
		if err := e.Validate(); err != nil {
			return err
		}

		return ierrors.Wrap(ds.ErrInvalidIteratorState, "iterator does not support reset")
	}

	if err := rewinder.Rewind(); err != nil {
		return err
	}

	if e.guard != nil {
		e.pinnedVersion = e.guard.Version()
	}

	e.state = NotStarted
	e.current = lo.Zero[T]()

	return nil
}

// Validate returns an error if the underlying container was modified since the Enumerator pinned its version.
func (e *Enumerator[T]) Validate() error {
	if e.guard != nil {
		return e.guard.Validate(e.pinnedVersion)
	}

	if validator, isValidator := e.stepper.(Validator); isValidator {
		return validator.Validate()
	}

	return nil
}

// State returns the State of the Enumerator.
func (e *Enumerator[T]) State() State {
	return e.state
}

// Dispose ends the iteration on the Guard and releases the Stepper.
func (e *Enumerator[T]) Dispose() {
	if e.state == Disposed {
		return
	}

	if e.guard != nil {
		e.guard.EndIteration()
	}

	if disposer, isDisposer := e.stepper.(Disposer); isDisposer {
		disposer.Dispose()
	}

	e.state = Disposed
	e.current = lo.Zero[T]()
}

// code contract - make sure the type implements the interface.
var _ Iterator[int] = &Enumerator[int]{}
