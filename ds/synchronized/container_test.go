package synchronized

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/ds/queue"
	"github.com/iotaledger/linkedds/ds/stack"
	"github.com/iotaledger/linkedds/ierrors"
)

func TestContainer_ConcurrentAdd(t *testing.T) {
	q := NewContainer[int](queue.New[int]())

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			q.Add(i)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, uint32(100), q.Count(), "wrong queue size")

	seen := make(map[int]bool)
	for !q.IsEmpty() {
		value, err := q.Remove()
		require.NoError(t, err)
		seen[value] = true
	}
	require.Len(t, seen, 100)
}

func TestContainer_ConcurrentAddAndRemove(t *testing.T) {
	s := NewContainer[int](stack.New[int]())

	var wg sync.WaitGroup
	var removedMutex sync.Mutex
	removed := 0

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()

			s.Add(i)
		}(i)
		go func() {
			defer wg.Done()

			if _, ok := s.TryRemove(); ok {
				removedMutex.Lock()
				removed++
				removedMutex.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, uint32(50-removed), s.Count())
}

func TestContainer_Delegates(t *testing.T) {
	q := NewContainer[string](queue.New[string]())

	_, err := q.Peek()
	require.True(t, ierrors.Is(err, ds.ErrEmptyContainer))
	_, exists := q.TryPeek()
	require.False(t, exists)

	q.Add("a")
	q.Add("b")

	peeked, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, "a", peeked)
	require.Equal(t, []string{"a", "b"}, q.Values())

	values, err := iterator.Collect(q.Iterator())
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, values)

	it := q.Iterator()
	_, err = it.MoveNext()
	require.NoError(t, err)
	q.Add("c")
	_, err = it.MoveNext()
	require.True(t, ierrors.Is(err, ds.ErrConcurrentModification))
	require.True(t, ierrors.Is(it.Validate(), ds.ErrConcurrentModification))
	require.Equal(t, iterator.Started, it.State())
	it.Dispose()
	require.Equal(t, iterator.Disposed, it.State())

	q.Clear()
	require.True(t, q.IsEmpty())

	require.Same(t, q.SyncRoot(), q.SyncRoot())
}
