package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventStore(events ...*model.Event) *Store[*model.Event] {
	s := NewStore[*model.Event]()
	s.Replace(events)
	return s
}

func TestOptimisticCommit(t *testing.T) {
	store := eventStore(makeEvent(1, 1, time.Now(), time.Now()))
	opt := NewOptimistic(store)

	txn, err := opt.Begin(1, func(events []*model.Event) []*model.Event {
		return append(events, makeEvent(2, 1, time.Now(), time.Now()))
	})
	require.NoError(t, err)

	assert.Len(t, store.Load(), 2)

	txn.Commit(nil)
	assert.Len(t, store.Load(), 2)

	// The key is released: a new update may begin.
	txn2, err := opt.Begin(1, func(events []*model.Event) []*model.Event { return events })
	require.NoError(t, err)
	txn2.Rollback()
}

func TestOptimisticRollbackRestoresExactState(t *testing.T) {
	original := makeEvent(1, 1,
		time.Date(2025, time.May, 1, 10, 0, 0, 0, time.Local),
		time.Date(2025, time.May, 1, 11, 0, 0, 0, time.Local),
	)
	store := eventStore(original)
	opt := NewOptimistic(store)

	txn, err := opt.Begin(1, func(events []*model.Event) []*model.Event {
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, store.Load())

	txn.Rollback()

	restored := store.Load()
	require.Len(t, restored, 1)
	assert.Same(t, original, restored[0])
}

func TestOptimisticRejectsConcurrentUpdate(t *testing.T) {
	store := eventStore(makeEvent(1, 1, time.Now(), time.Now()))
	opt := NewOptimistic(store)

	txn, err := opt.Begin(1, func(events []*model.Event) []*model.Event { return events })
	require.NoError(t, err)

	_, err = opt.Begin(1, func(events []*model.Event) []*model.Event { return events })
	assert.ErrorIs(t, err, ErrUpdateInFlight)

	// A different entity is unaffected.
	other, err := opt.Begin(2, func(events []*model.Event) []*model.Event { return events })
	require.NoError(t, err)
	other.Rollback()

	txn.Rollback()
}

func TestRescheduleEventSuccess(t *testing.T) {
	from := time.Date(2025, time.May, 2, 9, 0, 0, 0, time.Local)
	to := time.Date(2025, time.May, 2, 10, 0, 0, 0, time.Local)

	store := eventStore(makeEvent(1, 1,
		time.Date(2025, time.May, 1, 9, 0, 0, 0, time.Local),
		time.Date(2025, time.May, 1, 10, 0, 0, 0, time.Local),
	))
	opt := NewOptimistic(store)

	confirmed := makeEvent(1, 1, from, to)
	err := RescheduleEvent(context.Background(), opt, 1, from, to,
		func(_ context.Context, id int64, f, tt time.Time) (*model.Event, error) {
			assert.Equal(t, int64(1), id)
			assert.Equal(t, from, f)
			assert.Equal(t, to, tt)
			return confirmed, nil
		})
	require.NoError(t, err)

	got := store.Load()
	require.Len(t, got, 1)
	assert.Same(t, confirmed, got[0])
}

func TestRescheduleEventPersistFailureRollsBack(t *testing.T) {
	origFrom := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.Local)
	origTo := time.Date(2025, time.May, 1, 10, 0, 0, 0, time.Local)
	original := makeEvent(1, 1, origFrom, origTo)

	store := eventStore(original)
	opt := NewOptimistic(store)

	persistErr := errors.New("server unavailable")
	err := RescheduleEvent(context.Background(), opt, 1, origFrom.AddDate(0, 0, 1), origTo.AddDate(0, 0, 1),
		func(context.Context, int64, time.Time, time.Time) (*model.Event, error) {
			// The tentative move must be visible while persistence runs.
			moved := store.Load()
			require.Len(t, moved, 1)
			assert.Equal(t, origFrom.AddDate(0, 0, 1), moved[0].From)
			return nil, persistErr
		})
	require.ErrorIs(t, err, persistErr)

	restored := store.Load()
	require.Len(t, restored, 1)
	assert.Same(t, original, restored[0])
	assert.Equal(t, origFrom, restored[0].From)
}

func TestRescheduleEventUnknownID(t *testing.T) {
	store := eventStore(makeEvent(1, 1, time.Now(), time.Now()))
	opt := NewOptimistic(store)

	err := RescheduleEvent(context.Background(), opt, 42, time.Now(), time.Now(),
		func(context.Context, int64, time.Time, time.Time) (*model.Event, error) {
			t.Fatal("persist must not run for an unknown event")
			return nil, nil
		})
	assert.ErrorIs(t, err, model.ErrNoRecord)

	// The key is released after the aborted update.
	txn, err := opt.Begin(42, func(events []*model.Event) []*model.Event { return events })
	require.NoError(t, err)
	txn.Rollback()
}
