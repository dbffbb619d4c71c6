package view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/model"
)

// ErrUpdateInFlight rejects a second optimistic update for an entity
// whose previous update has not committed or rolled back yet.
var ErrUpdateInFlight = errors.New("update already in flight for entity")

// Optimistic applies tentative changes to a Store before persistence
// confirms them: Begin(apply) → Commit(reconcile) on success,
// Rollback() on failure. At most one update per key may be in flight.
type Optimistic[T any] struct {
	store    *Store[T]
	inFlight *Store[int64]
}

func NewOptimistic[T any](store *Store[T]) *Optimistic[T] {
	return &Optimistic[T]{
		store:    store,
		inFlight: NewStore[int64](),
	}
}

// Txn is one in-flight optimistic update. Exactly one of Commit or
// Rollback must be called.
type Txn[T any] struct {
	o    *Optimistic[T]
	key  int64
	prev []T
	done bool
}

// Begin snapshots the collection, applies the tentative change and
// marks key in flight.
func (o *Optimistic[T]) Begin(key int64, tentative func([]T) []T) (*Txn[T], error) {
	acquired := false
	o.inFlight.Update(func(keys []int64) []int64 {
		for _, k := range keys {
			if k == key {
				return keys
			}
		}
		acquired = true
		return append(append([]int64{}, keys...), key)
	})
	if !acquired {
		return nil, fmt.Errorf("%w: %v", ErrUpdateInFlight, key)
	}

	prev := o.store.Load()
	o.store.Update(tentative)

	return &Txn[T]{o: o, key: key, prev: prev}, nil
}

// Commit reconciles the collection with the confirmed server state and
// releases the key.
func (t *Txn[T]) Commit(reconcile func([]T) []T) {
	if t.done {
		return
	}
	t.done = true

	if reconcile != nil {
		t.o.store.Update(reconcile)
	}
	t.release()
}

// Rollback restores the exact pre-update collection and releases the key.
func (t *Txn[T]) Rollback() {
	if t.done {
		return
	}
	t.done = true

	t.o.store.Replace(t.prev)
	t.release()
}

func (t *Txn[T]) release() {
	t.o.inFlight.Update(func(keys []int64) []int64 {
		res := make([]int64, 0, len(keys))
		for _, k := range keys {
			if k != t.key {
				res = append(res, k)
			}
		}
		return res
	})
}

// PersistEvent pushes a rescheduled event to storage and returns the
// server's copy.
type PersistEvent func(ctx context.Context, id int64, from, to time.Time) (*model.Event, error)

// RescheduleEvent moves an event to a new time span optimistically: the
// in-memory list updates immediately, then persist runs; on failure the
// list is restored verbatim and the error is returned for the caller to
// surface.
func RescheduleEvent(ctx context.Context, opt *Optimistic[*model.Event], id int64, from, to time.Time, persist PersistEvent) error {
	found := false
	txn, err := opt.Begin(id, func(events []*model.Event) []*model.Event {
		res := make([]*model.Event, len(events))
		for i, e := range events {
			if e.ID == id {
				moved := *e
				moved.From = from
				moved.To = to
				res[i] = &moved
				found = true
				continue
			}
			res[i] = e
		}
		return res
	})
	if err != nil {
		return err
	}

	if !found {
		txn.Rollback()
		return model.ErrNoRecord
	}

	confirmed, err := persist(ctx, id, from, to)
	if err != nil {
		txn.Rollback()
		return fmt.Errorf("persist reschedule: %w", err)
	}

	txn.Commit(func(events []*model.Event) []*model.Event {
		res := make([]*model.Event, len(events))
		for i, e := range events {
			if e.ID == id {
				res[i] = confirmed
				continue
			}
			res[i] = e
		}
		return res
	})

	return nil
}
