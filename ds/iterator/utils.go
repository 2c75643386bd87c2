package iterator

// FromSlice returns an Iterator over the given values. The slice is not copied and is not guarded against
// modifications.
func FromSlice[T any](values []T) Iterator[T] {
	return NewEnumerator[T](nil, &sliceStepper[T]{values: values, index: -1})
}

type sliceStepper[T any] struct {
	values []T
	index  int
}

func (s *sliceStepper[T]) Step() (value T, ok bool, err error) {
	if s.index+1 >= len(s.values) {
		s.index = len(s.values)

		return value, false, nil
	}

	s.index++

	return s.values[s.index], true, nil
}

func (s *sliceStepper[T]) Rewind() error {
	s.index = -1

	return nil
}

// ForEach calls the callback for every remaining element of the Iterator and disposes it afterwards. The iteration is
// aborted if the callback or the Iterator returns an error.
func ForEach[T any](it Iterator[T], callback func(value T) error) error {
	defer it.Dispose()

	for {
		hasNext, err := it.MoveNext()
		if err != nil {
			return err
		} else if !hasNext {
			return nil
		}

		value, err := it.Current()
		if err != nil {
			return err
		}

		if err = callback(value); err != nil {
			return err
		}
	}
}

// Collect returns all remaining elements of the Iterator and disposes it afterwards.
func Collect[T any](it Iterator[T]) ([]T, error) {
	values := make([]T, 0)
	if err := ForEach(it, func(value T) error {
		values = append(values, value)

		return nil
	}); err != nil {
		return nil, err
	}

	return values, nil
}

// Count returns the number of remaining elements of the Iterator and disposes it afterwards.
func Count[T any](it Iterator[T]) (count int, err error) {
	err = ForEach(it, func(T) error {
		count++

		return nil
	})

	return count, err
}
