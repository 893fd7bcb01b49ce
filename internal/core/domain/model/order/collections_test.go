package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmissionStack(t *testing.T) {
	t.Run("should pop most recently pushed id first", func(t *testing.T) {
		var s order.AdmissionStack
		s.Push(1000)
		s.Push(1001)
		s.Push(1002)

		assert.Equal(t, []order.ID{1002, 1001, 1000}, s.IDs())

		top, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, order.ID(1002), top)
		assert.Equal(t, 2, s.Len())
		assert.False(t, s.Contains(1002))
		assert.True(t, s.Contains(1000))
	})

	t.Run("should report empty stack", func(t *testing.T) {
		var s order.AdmissionStack

		_, err := s.Pop()

		require.ErrorIs(t, err, order.ErrAdmissionStackIsEmpty)
		require.ErrorIs(t, err, errs.ErrCollectionIsEmpty)
		assert.Empty(t, s.IDs())
	})
}

func TestDispatchQueue(t *testing.T) {
	t.Run("should serve higher priority first and equal priorities in arrival order", func(t *testing.T) {
		var q order.DispatchQueue
		require.NoError(t, q.Enqueue(1000, order.Normal))
		require.NoError(t, q.Enqueue(1001, order.Express))
		require.NoError(t, q.Enqueue(1002, order.Normal))
		require.NoError(t, q.Enqueue(1003, order.Low))

		assert.Equal(t, []order.QueueEntry{
			{ID: 1001, Priority: order.Express},
			{ID: 1000, Priority: order.Normal},
			{ID: 1002, Priority: order.Normal},
			{ID: 1003, Priority: order.Low},
		}, q.Entries())

		var served []order.ID
		for q.Len() > 0 {
			e, err := q.Dequeue()
			require.NoError(t, err)
			served = append(served, e.ID)
		}
		assert.Equal(t, []order.ID{1001, 1000, 1002, 1003}, served)
	})

	t.Run("should keep fifo among many equal priorities", func(t *testing.T) {
		var q order.DispatchQueue
		for i := range 50 {
			require.NoError(t, q.Enqueue(order.FirstID+order.ID(i), order.High))
		}

		for i := range 50 {
			e, err := q.Dequeue()
			require.NoError(t, err)
			assert.Equal(t, order.FirstID+order.ID(i), e.ID)
		}
	})

	t.Run("should reject invalid priority", func(t *testing.T) {
		var q order.DispatchQueue

		require.ErrorIs(t, q.Enqueue(1000, order.UnknownPriority), errs.ErrValueIsInvalid)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("should report empty queue", func(t *testing.T) {
		var q order.DispatchQueue

		_, err := q.Dequeue()

		require.ErrorIs(t, err, order.ErrDispatchQueueIsEmpty)
		require.ErrorIs(t, err, errs.ErrCollectionIsEmpty)
	})

	t.Run("should report membership", func(t *testing.T) {
		var q order.DispatchQueue
		require.NoError(t, q.Enqueue(1005, order.Low))

		assert.True(t, q.Contains(1005))
		assert.False(t, q.Contains(1006))
	})
}

func TestHistoryIndex(t *testing.T) {
	t.Run("should stay balanced and iterate ascending", func(t *testing.T) {
		var h order.HistoryIndex
		for _, id := range []order.ID{1000, 1005, 1002, 1010, 1007} {
			require.NoError(t, h.Insert(id))
		}

		assert.Equal(t, 5, h.Len())
		assert.LessOrEqual(t, h.Height(), 3)
		assert.Equal(t, []order.ID{1000, 1002, 1005, 1007, 1010}, h.IDs())
		assert.True(t, h.Contains(1007))
		assert.False(t, h.Contains(1001))
	})

	t.Run("should reject duplicate id without growing", func(t *testing.T) {
		var h order.HistoryIndex
		require.NoError(t, h.Insert(1000))

		err := h.Insert(1000)

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		assert.Equal(t, 1, h.Len())
	})

	t.Run("should stop ascending when callback returns false", func(t *testing.T) {
		var h order.HistoryIndex
		for _, id := range []order.ID{1003, 1001, 1002} {
			require.NoError(t, h.Insert(id))
		}

		var seen []order.ID
		h.Ascend(func(id order.ID) bool {
			seen = append(seen, id)
			return len(seen) < 2
		})

		assert.Equal(t, []order.ID{1001, 1002}, seen)
	})
}

func TestStore(t *testing.T) {
	finalized := func(t *testing.T, id order.ID) *order.Order {
		t.Helper()
		o := mustNewOrder(t, id, order.Normal)
		require.NoError(t, o.AddLine(1, "Margherita Pizza", 1, kernel.MustMoney("12.99")))
		require.NoError(t, o.Finalize(kernel.Zero()))
		return o
	}

	t.Run("should add and get orders by id", func(t *testing.T) {
		s := order.NewStore()
		o := finalized(t, 1000)

		require.NoError(t, s.Add(o))
		got, err := s.Get(1000)

		require.NoError(t, err)
		assert.Same(t, o, got)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("should reject duplicate id", func(t *testing.T) {
		s := order.NewStore()
		require.NoError(t, s.Add(finalized(t, 1000)))

		err := s.Add(finalized(t, 1000))

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("should reject order without totals", func(t *testing.T) {
		s := order.NewStore()

		require.ErrorIs(t, s.Add(mustNewOrder(t, 1000, order.Low)), order.ErrOrderIsNotFinalized)
	})

	t.Run("should reject unconstructed order", func(t *testing.T) {
		s := order.NewStore()

		require.ErrorIs(t, s.Add(&order.Order{}), order.ErrOrderIsNotConstructed)
	})

	t.Run("should return not found for unknown id", func(t *testing.T) {
		s := order.NewStore()

		_, err := s.Get(9999)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
