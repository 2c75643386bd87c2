package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ds/chain"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/ierrors"
	"github.com/iotaledger/linkedds/lo"
)

func TestList_AddAndRemove(t *testing.T) {
	l := New[int]()
	require.True(t, l.IsEmpty())
	require.Nil(t, l.First())
	require.Nil(t, l.Last())

	two := l.AddLast(2)
	l.AddFirst(1)
	l.AddLast(4)
	three := lo.PanicOnErr(l.AddAfter(two, 3))
	lo.PanicOnErr(l.AddBefore(l.First(), 0))

	require.Equal(t, []int{0, 1, 2, 3, 4}, l.Values())
	require.Equal(t, []int{4, 3, 2, 1, 0}, l.ValuesReversed())
	require.Equal(t, uint32(5), l.Count())
	assertSymmetric(t, l)

	value, err := l.Remove(three)
	require.NoError(t, err)
	require.Equal(t, 3, value)
	require.True(t, three.Cleared())
	require.Nil(t, three.list)

	value, err = l.RemoveFirst()
	require.NoError(t, err)
	require.Equal(t, 0, value)

	value, err = l.RemoveLast()
	require.NoError(t, err)
	require.Equal(t, 4, value)

	require.Equal(t, []int{1, 2}, l.Values())
	assertSymmetric(t, l)

	value, removed := l.TryRemoveLast()
	require.True(t, removed)
	require.Equal(t, 2, value)

	value, removed = l.TryRemoveFirst()
	require.True(t, removed)
	require.Equal(t, 1, value)

	_, removed = l.TryRemoveFirst()
	require.False(t, removed)
	_, removed = l.TryRemoveLast()
	require.False(t, removed)

	_, err = l.RemoveFirst()
	require.True(t, ierrors.Is(err, ds.ErrEmptyContainer))
	_, err = l.RemoveLast()
	require.True(t, ierrors.Is(err, ds.ErrEmptyContainer))

	require.Nil(t, l.First())
	require.Nil(t, l.Last())
	require.Equal(t, uint32(0), l.Count())
}

func TestList_ForeignAndClearedElements(t *testing.T) {
	l := New[string]()
	other := New[string]()

	foreign := other.AddLast("foreign")
	anchor := l.AddLast("anchor")

	_, err := l.AddBefore(foreign, "x")
	require.True(t, ierrors.Is(err, ds.ErrForeignNode))
	_, err = l.AddAfter(foreign, "x")
	require.True(t, ierrors.Is(err, ds.ErrForeignNode))
	_, err = l.Remove(foreign)
	require.True(t, ierrors.Is(err, ds.ErrForeignNode))
	require.True(t, ierrors.Is(l.MoveBefore(anchor, foreign), ds.ErrForeignNode))
	require.True(t, ierrors.Is(l.Swap(anchor, foreign), ds.ErrForeignNode))
	_, err = l.Remove(nil)
	require.True(t, ierrors.Is(err, ds.ErrForeignNode))

	require.Equal(t, []string{"foreign"}, other.Values())

	lo.PanicOnErr(l.Remove(anchor))
	_, err = l.AddAfter(anchor, "x")
	require.True(t, ierrors.Is(err, ds.ErrClearedNodeAccess))
	_, err = l.Remove(anchor)
	require.True(t, ierrors.Is(err, ds.ErrClearedNodeAccess))

	require.PanicsWithError(t, ds.ErrClearedNodeAccess.Error(), func() { anchor.Value() })
	require.PanicsWithError(t, ds.ErrClearedNodeAccess.Error(), func() { anchor.Next() })
	require.PanicsWithError(t, ds.ErrClearedNodeAccess.Error(), func() { anchor.Prev() })
	require.True(t, l.IsEmpty())
}

func TestList_Find(t *testing.T) {
	l := New[*int]()
	one, two := 1, 2

	first := l.AddLast(&one)
	firstNil := l.AddLast(nil)
	l.AddLast(&two)
	lastNil := l.AddLast(nil)

	require.Equal(t, firstNil, l.Find(nil))
	require.Equal(t, lastNil, l.FindLast(nil))

	copyOfOne := 1
	require.Equal(t, first, l.Find(&one))
	require.Nil(t, l.Find(&copyOfOne), "pointers are compared by identity")

	removedValue, removed := l.RemoveValue(nil)
	require.True(t, removed)
	require.Nil(t, removedValue)
	require.True(t, firstNil.Cleared())
	require.Equal(t, lastNil, l.Find(nil))

	three := 3
	_, removed = l.RemoveValue(&three)
	require.False(t, removed)
	require.Equal(t, uint32(3), l.Count())
}

func TestList_WithEqualityFunc(t *testing.T) {
	type entry struct {
		id   int
		name string
	}

	l := New[entry](WithEqualityFunc(func(a, b entry) bool {
		return a.id == b.id
	}))

	l.AddLast(entry{1, "a"})
	second := l.AddLast(entry{2, "b"})
	l.AddLast(entry{2, "c"})

	require.Equal(t, second, l.Find(entry{id: 2}))
	require.Equal(t, "c", l.FindLast(entry{id: 2}).Value().name)
	require.Nil(t, l.Find(entry{id: 3}))

	removedValue, removed := l.RemoveValue(entry{id: 2})
	require.True(t, removed)
	require.Equal(t, entry{2, "b"}, removedValue)
	require.True(t, second.Cleared())
	require.Equal(t, []entry{{1, "a"}, {2, "c"}}, l.Values())
}

func TestList_Move(t *testing.T) {
	l := New[int]()
	elements := make([]*Element[int], 5)
	for i := range elements {
		elements[i] = l.AddLast(i)
	}

	require.NoError(t, l.MoveBefore(elements[4], elements[0]))
	require.Equal(t, []int{4, 0, 1, 2, 3}, l.Values())
	assertSymmetric(t, l)

	require.NoError(t, l.MoveAfter(elements[4], elements[3]))
	require.Equal(t, []int{0, 1, 2, 3, 4}, l.Values())
	assertSymmetric(t, l)

	require.NoError(t, l.MoveAfter(elements[1], elements[2]))
	require.Equal(t, []int{0, 2, 1, 3, 4}, l.Values())
	assertSymmetric(t, l)

	require.NoError(t, l.MoveToFirst(elements[3]))
	require.Equal(t, []int{3, 0, 2, 1, 4}, l.Values())
	assertSymmetric(t, l)

	require.NoError(t, l.MoveToLast(elements[3]))
	require.Equal(t, []int{0, 2, 1, 4, 3}, l.Values())
	assertSymmetric(t, l)

	// no-ops
	require.NoError(t, l.MoveBefore(elements[0], elements[0]))
	require.NoError(t, l.MoveBefore(elements[0], elements[2]))
	require.NoError(t, l.MoveAfter(elements[3], elements[4]))
	require.NoError(t, l.MoveToFirst(elements[0]))
	require.NoError(t, l.MoveToLast(elements[3]))
	require.Equal(t, []int{0, 2, 1, 4, 3}, l.Values())
	assertSymmetric(t, l)
}

func TestList_Swap(t *testing.T) {
	testCases := []struct {
		name     string
		x, y     int
		expected []int
	}{
		{"same element", 2, 2, []int{0, 1, 2, 3, 4}},
		{"adjacent", 1, 2, []int{0, 2, 1, 3, 4}},
		{"adjacent reversed", 2, 1, []int{0, 2, 1, 3, 4}},
		{"ends", 0, 4, []int{4, 1, 2, 3, 0}},
		{"adjacent at front", 0, 1, []int{1, 0, 2, 3, 4}},
		{"adjacent at back", 4, 3, []int{0, 1, 2, 4, 3}},
		{"one apart", 1, 3, []int{0, 3, 2, 1, 4}},
		{"one apart reversed", 3, 1, []int{0, 3, 2, 1, 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := New[int]()
			elements := make([]*Element[int], 5)
			for i := range elements {
				elements[i] = l.AddLast(i)
			}

			require.NoError(t, l.Swap(elements[tc.x], elements[tc.y]))
			require.Equal(t, tc.expected, l.Values())
			assertSymmetric(t, l)

			// handles keep their values
			for i, element := range elements {
				require.Equal(t, i, element.Value())
			}
		})
	}
}

func TestList_SymmetryAfterMixedOperations(t *testing.T) {
	l := New[int]()
	elements := make([]*Element[int], 0)
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			elements = append(elements, l.AddLast(i))
		} else {
			elements = append(elements, l.AddFirst(i))
		}
	}

	for i := 0; i < 20; i += 3 {
		require.NoError(t, l.Swap(elements[i], elements[19-i]))
		require.NoError(t, l.MoveAfter(elements[(i+5)%20], elements[(i+11)%20]))
		assertSymmetric(t, l)
	}

	for i := 0; i < 20; i += 4 {
		lo.PanicOnErr(l.Remove(elements[i]))
		assertSymmetric(t, l)
	}

	require.Equal(t, uint32(15), l.Count())
}

func TestList_Iterator(t *testing.T) {
	l := New[int]()
	for i := 0; i < 5; i++ {
		l.AddLast(i)
	}

	forward, err := iterator.Collect(l.Iterator())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, forward)

	backward, err := iterator.Collect(l.IteratorReversed())
	require.NoError(t, err)
	require.Equal(t, []int{4, 3, 2, 1, 0}, backward)

	backward, err = iterator.Collect(l.Traverse(chain.LIFO))
	require.NoError(t, err)
	require.Equal(t, []int{4, 3, 2, 1, 0}, backward)

	it := l.Iterator()
	require.True(t, lo.PanicOnErr(it.MoveNext()))
	require.True(t, lo.PanicOnErr(it.MoveNext()))
	require.Equal(t, 1, lo.PanicOnErr(it.Current()))
	require.NoError(t, it.Reset())
	require.Equal(t, iterator.NotStarted, it.State())
	require.True(t, lo.PanicOnErr(it.MoveNext()))
	require.Equal(t, 0, lo.PanicOnErr(it.Current()))
	it.Dispose()

	empty, err := iterator.Collect(New[int]().IteratorReversed())
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestList_FailFast(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(l *List[int], first, second *Element[int]) error
	}{
		{"add", func(l *List[int], _, _ *Element[int]) error {
			l.AddLast(3)

			return nil
		}},
		{"remove", func(l *List[int], _, second *Element[int]) error {
			_, err := l.Remove(second)

			return err
		}},
		{"move", func(l *List[int], first, _ *Element[int]) error {
			return l.MoveToLast(first)
		}},
		{"swap", func(l *List[int], first, second *Element[int]) error {
			return l.Swap(first, second)
		}},
		{"clear", func(l *List[int], _, _ *Element[int]) error {
			l.Clear()

			return nil
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := New[int]()
			first := l.AddLast(1)
			second := l.AddLast(2)

			it := l.Iterator()
			defer it.Dispose()

			require.True(t, lo.PanicOnErr(it.MoveNext()))
			require.NoError(t, tc.mutate(l, first, second))

			_, err := it.MoveNext()
			require.True(t, ierrors.Is(err, ds.ErrConcurrentModification))
			_, err = it.Current()
			require.True(t, ierrors.Is(err, ds.ErrConcurrentModification))
		})
	}

	l := New[int]()
	l.AddLast(1)
	l.AddLast(2)

	it := l.Iterator()
	l.AddLast(3)
	it.Dispose()

	// an Iterator created after the mutations does not fail
	values, err := iterator.Collect(l.Iterator())
	require.NoError(t, err)
	require.Len(t, values, int(l.Count()))

	err = l.ForEach(func(value int) error {
		l.AddFirst(value)

		return nil
	})
	require.True(t, ierrors.Is(err, ds.ErrConcurrentModification))

	require.Panics(t, func() {
		l.RangeReverse(func(value int) {
			l.AddLast(value)
		})
	})
}

func TestList_ForEachAndRange(t *testing.T) {
	l := New[int]()
	l.AddLast(1)
	l.AddLast(2)
	l.AddLast(3)

	var forward, backward []int
	require.NoError(t, l.ForEach(func(value int) error {
		forward = append(forward, value)

		return nil
	}))
	require.NoError(t, l.ForEachReverse(func(value int) error {
		backward = append(backward, value)

		return nil
	}))
	assert.Equal(t, []int{1, 2, 3}, forward)
	assert.Equal(t, []int{3, 2, 1}, backward)

	sum := 0
	l.Range(func(value int) { sum += value })
	l.RangeReverse(func(value int) { sum += value })
	assert.Equal(t, 12, sum)

	errStop := ierrors.New("stop")
	visited := 0
	err := l.ForEach(func(int) error {
		visited++

		return errStop
	})
	require.ErrorIs(t, err, errStop)
	require.Equal(t, 1, visited)
}

func TestList_Clear(t *testing.T) {
	l := New[int]()
	l.Clear()
	require.True(t, l.IsEmpty())

	elements := []*Element[int]{l.AddLast(1), l.AddLast(2), l.AddLast(3)}
	l.Clear()

	require.True(t, l.IsEmpty())
	require.Nil(t, l.First())
	require.Nil(t, l.Last())
	for _, element := range elements {
		require.True(t, element.Cleared())
	}

	l.AddLast(4)
	require.Equal(t, []int{4}, l.Values())
}

func TestList_PushBackList(t *testing.T) {
	l := New[int]()
	l.AddLast(1)

	other := New[int]()
	other.AddLast(2)
	other.AddLast(3)

	l.PushBackList(other)
	require.Equal(t, []int{1, 2, 3}, l.Values())
	require.Equal(t, []int{2, 3}, other.Values())

	l.PushBackList(l)
	require.Equal(t, []int{1, 2, 3, 1, 2, 3}, l.Values())
	require.NotNil(t, l.SyncRoot())
}

// assertSymmetric checks that the forward and backward walks of the List mirror each other and that all links are
// symmetric.
func assertSymmetric[T any](t *testing.T, l *List[T]) {
	t.Helper()

	forward := make([]*Element[T], 0)
	for element := l.First(); element != nil; element = element.Next() {
		forward = append(forward, element)
	}

	backward := make([]*Element[T], 0)
	for element := l.Last(); element != nil; element = element.Prev() {
		backward = append(backward, element)
	}

	require.Len(t, forward, int(l.Count()))
	require.Len(t, backward, int(l.Count()))

	for i := range forward {
		require.Same(t, forward[i], backward[len(backward)-1-i])
		require.Same(t, l, forward[i].list)

		if i+1 < len(forward) {
			require.Same(t, forward[i+1], forward[i].Next())
			require.Same(t, forward[i], forward[i+1].Prev())
		}
	}

	if len(forward) > 0 {
		require.Nil(t, l.First().Prev())
		require.Nil(t, l.Last().Next())
	}
}
