package iterator

// Iterator is a fail-fast cursor over the elements of a container.
type Iterator[T any] interface {
	// MoveNext advances the Iterator to the next element and returns false once it moved past the last element.
	MoveNext() (success bool, err error)

	// Current returns the element the Iterator currently points at.
	Current() (value T, err error)

	// Reset moves the Iterator back in front of the first element.
	Reset() error

	// Validate returns an error if the underlying container was modified since the Iterator pinned its version.
	Validate() error

	// State returns the State of the Iterator.
	State() State

	// Dispose releases the Iterator. Disposing an already disposed Iterator has no effect.
	Dispose()
}

// Stepper is the traversal step of an Enumerator. It is only invoked after the version of the underlying container was
// validated.
type Stepper[T any] interface {
	// Step returns the next element or false if the traversal is exhausted.
	Step() (value T, ok bool, err error)
}

// Rewinder is implemented by Steppers that support restarting the traversal.
type Rewinder interface {
	// Rewind restarts the traversal in front of the first element.
	Rewind() error
}

// Validator is implemented by Steppers that wrap other Iterators and validate them instead of a Guard.
type Validator interface {
	// Validate returns an error if a wrapped Iterator was invalidated.
	Validate() error
}

// Disposer is implemented by Steppers that hold resources which need to be released together with the Enumerator.
type Disposer interface {
	// Dispose releases the resources of the Stepper.
	Dispose()
}
