package iterator

import (
	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ierrors"
	"github.com/iotaledger/linkedds/lo"
)

// region Map //////////////////////////////////////////////////////////////////////////////////////////////////////////

// Map returns an Iterator that yields the elements of source transformed by mapper.
func Map[S, T any](source Iterator[S], mapper func(S) T) Iterator[T] {
	return NewEnumerator[T](nil, &mapStepper[S, T]{
		wrappedStepper: wrappedStepper[S]{source: source},
		mapper:         mapper,
	})
}

type mapStepper[S, T any] struct {
	wrappedStepper[S]

	mapper func(S) T
}

func (m *mapStepper[S, T]) Step() (value T, ok bool, err error) {
	sourceValue, ok, err := m.next()
	if !ok || err != nil {
		return value, false, err
	}

	return m.mapper(sourceValue), true, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Filter ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Filter returns an Iterator that only yields the elements of source that match the predicate.
func Filter[T any](source Iterator[T], predicate func(T) bool) Iterator[T] {
	return NewEnumerator[T](nil, &filterStepper[T]{
		wrappedStepper: wrappedStepper[T]{source: source},
		predicate:      predicate,
	})
}

type filterStepper[T any] struct {
	wrappedStepper[T]

	predicate func(T) bool
}

func (f *filterStepper[T]) Step() (value T, ok bool, err error) {
	for {
		if value, ok, err = f.next(); !ok || err != nil {
			return value, false, err
		}

		if f.predicate(value) {
			return value, true, nil
		}
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Join /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Flatten returns an Iterator that yields the elements of all Iterators produced by source, one after another.
func Flatten[T any](source Iterator[Iterator[T]]) Iterator[T] {
	return Join(source)
}

// Join returns an Iterator that yields the elements of all Iterators produced by source and emits the separator values
// between two consecutive sequences. Every nested Iterator is disposed once it is exhausted.
func Join[T any](source Iterator[Iterator[T]], separator ...T) Iterator[T] {
	return NewEnumerator[T](nil, &joinStepper[T]{
		wrappedStepper: wrappedStepper[Iterator[T]]{source: source},
		separator:      separator,
	})
}

type joinStepper[T any] struct {
	wrappedStepper[Iterator[T]]

	separator        []T
	pendingSeparator []T
	currentSequence  Iterator[T]
	sequenceStarted  bool
}

func (j *joinStepper[T]) Step() (value T, ok bool, err error) {
	for {
		if len(j.pendingSeparator) > 0 {
			value, j.pendingSeparator = j.pendingSeparator[0], j.pendingSeparator[1:]

			return value, true, nil
		}

		if j.currentSequence != nil {
			if ok, err = j.currentSequence.MoveNext(); err != nil {
				return value, false, err
			} else if ok {
				value, err = j.currentSequence.Current()

				return value, err == nil, err
			}

			j.currentSequence.Dispose()
			j.currentSequence = nil
		}

		nextSequence, hasNext, nextErr := j.next()
		if !hasNext || nextErr != nil {
			return value, false, nextErr
		}

		if j.sequenceStarted {
			j.pendingSeparator = j.separator
		}
		j.sequenceStarted = true
		j.currentSequence = nextSequence
	}
}

func (j *joinStepper[T]) Rewind() error {
	j.releaseSequence()
	j.pendingSeparator = nil
	j.sequenceStarted = false

	return j.wrappedStepper.Rewind()
}

func (j *joinStepper[T]) Validate() error {
	if err := j.wrappedStepper.Validate(); err != nil {
		return err
	}

	if j.currentSequence != nil {
		return j.currentSequence.Validate()
	}

	return nil
}

func (j *joinStepper[T]) Dispose() {
	j.releaseSequence()
	j.wrappedStepper.Dispose()
}

func (j *joinStepper[T]) releaseSequence() {
	if j.currentSequence != nil {
		j.currentSequence.Dispose()
		j.currentSequence = nil
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Repeat ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Repeat returns an Iterator that yields the elements of source the given number of times. The source is reset after
// every pass and therefore has to support Reset.
func Repeat[T any](source Iterator[T], times int) Iterator[T] {
	return NewEnumerator[T](nil, &repeatStepper[T]{
		wrappedStepper: wrappedStepper[T]{source: source},
		times:          times,
	})
}

type repeatStepper[T any] struct {
	wrappedStepper[T]

	times int
	pass  int
}

func (r *repeatStepper[T]) Step() (value T, ok bool, err error) {
	for r.pass < r.times {
		if value, ok, err = r.next(); err != nil {
			return value, false, err
		} else if ok {
			return value, true, nil
		}

		if r.pass++; r.pass < r.times {
			if err = r.source.Reset(); err != nil {
				return value, false, err
			}
		}
	}

	return value, false, nil
}

func (r *repeatStepper[T]) Rewind() error {
	r.pass = 0

	return r.wrappedStepper.Rewind()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Prefetch /////////////////////////////////////////////////////////////////////////////////////////////////////

// Prefetcher is an Iterator that can tell ahead of time whether there are elements left to be yielded.
type Prefetcher[T any] struct {
	*Enumerator[T]

	stepper *prefetchStepper[T]
}

// Prefetch wraps the source into a Prefetcher.
func Prefetch[T any](source Iterator[T]) *Prefetcher[T] {
	stepper := &prefetchStepper[T]{wrappedStepper: wrappedStepper[T]{source: source}}

	return &Prefetcher[T]{
		Enumerator: NewEnumerator[T](nil, stepper),
		stepper:    stepper,
	}
}

// IsEmpty returns true if the Prefetcher will not yield any further element. It advances the wrapped Iterator by at
// most one element and buffers it for the next call to MoveNext.
func (p *Prefetcher[T]) IsEmpty() (bool, error) {
	if p.State() == Disposed {
		return false, ierrors.Wrap(ds.ErrInvalidIteratorState, "unable to inspect a disposed iterator")
	}

	if err := p.Validate(); err != nil {
		return false, err
	}

	if p.State() == Completed {
		return true, nil
	}

	if err := p.stepper.fetch(); err != nil {
		return false, err
	}

	return !p.stepper.hasBuffered, nil
}

type prefetchStepper[T any] struct {
	wrappedStepper[T]

	fetched     bool
	hasBuffered bool
	buffered    T
}

func (p *prefetchStepper[T]) fetch() (err error) {
	if p.fetched {
		return nil
	}

	buffered, hasBuffered, err := p.next()
	if err != nil {
		return err
	}

	p.fetched, p.hasBuffered, p.buffered = true, hasBuffered, buffered

	return nil
}

func (p *prefetchStepper[T]) Step() (value T, ok bool, err error) {
	if !p.fetched {
		return p.next()
	}

	value, ok = p.buffered, p.hasBuffered
	p.fetched, p.hasBuffered, p.buffered = false, false, lo.Zero[T]()

	return value, ok, nil
}

func (p *prefetchStepper[T]) Rewind() error {
	p.fetched, p.hasBuffered, p.buffered = false, false, lo.Zero[T]()

	return p.wrappedStepper.Rewind()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region wrappedStepper ///////////////////////////////////////////////////////////////////////////////////////////////

// wrappedStepper contains the delegation logic shared by all adapters that wrap another Iterator.
type wrappedStepper[S any] struct {
	source Iterator[S]
}

// next advances the wrapped Iterator and returns its current element.
func (w *wrappedStepper[S]) next() (value S, ok bool, err error) {
	if ok, err = w.source.MoveNext(); !ok || err != nil {
		return value, false, err
	}

	if value, err = w.source.Current(); err != nil {
		return value, false, err
	}

	return value, true, nil
}

func (w *wrappedStepper[S]) Rewind() error {
	return w.source.Reset()
}

func (w *wrappedStepper[S]) Validate() error {
	return w.source.Validate()
}

func (w *wrappedStepper[S]) Dispose() {
	w.source.Dispose()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
