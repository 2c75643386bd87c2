package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/linkedds/ds"
	"github.com/iotaledger/linkedds/ds/iterator"
	"github.com/iotaledger/linkedds/ierrors"
)

func TestNewQueue(t *testing.T) {
	q := New[int]()
	require.NotNil(t, q)
	assert.Equal(t, uint32(0), q.Count())
	assert.True(t, q.IsEmpty())
}

func TestQueueEnqueueDequeue(t *testing.T) {
	q := New[int]()
	require.NotNil(t, q)

	// enqueue elements
	{
		q.Enqueue(1)
		assert.Equal(t, uint32(1), q.Count())

		q.Enqueue(2)
		assert.Equal(t, uint32(2), q.Count())
	}

	// dequeue elements
	{
		dequeuedValue, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, 1, dequeuedValue)
		assert.Equal(t, uint32(1), q.Count())

		dequeuedValue, ok := q.TryDequeue()
		assert.True(t, ok)
		assert.Equal(t, 2, dequeuedValue)
		assert.Equal(t, uint32(0), q.Count())

		dequeuedValue, ok = q.TryDequeue()
		assert.False(t, ok)
		assert.Zero(t, dequeuedValue)

		_, err = q.Dequeue()
		assert.True(t, ierrors.Is(err, ds.ErrEmptyContainer))

		// enqueue into the drained queue again
		q.Enqueue(3)
		assert.Equal(t, uint32(1), q.Count())
		assert.Equal(t, []int{3}, q.Values())
	}
}

func TestQueueFIFOOrder(t *testing.T) {
	q := New[int]()
	for i := 0; i < 100; i++ {
		q.Enqueue(i)
	}

	peeked, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, 0, peeked)

	peeked, exists := q.TryPeek()
	require.True(t, exists)
	require.Equal(t, 0, peeked)

	values, err := iterator.Collect(q.Iterator())
	require.NoError(t, err)
	require.Len(t, values, 100)

	for i := 0; i < 100; i++ {
		value, err := q.Remove()
		require.NoError(t, err)
		require.Equal(t, i, value)
	}

	_, err = q.Peek()
	require.True(t, ierrors.Is(err, ds.ErrEmptyContainer))
}

func TestQueueFailFast(t *testing.T) {
	q := New[int]()
	q.Add(1)
	q.Add(2)

	it := q.Iterator()
	defer it.Dispose()

	_, err := it.MoveNext()
	require.NoError(t, err)

	_, removed := q.TryRemove()
	require.True(t, removed)

	_, err = it.MoveNext()
	require.True(t, ierrors.Is(err, ds.ErrConcurrentModification))
}

func TestQueueClear(t *testing.T) {
	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Clear()

	assert.True(t, q.IsEmpty())
	q.Clear()
	assert.True(t, q.IsEmpty())
	require.NotNil(t, q.SyncRoot())
}
