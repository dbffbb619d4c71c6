package view

import (
	"sync"
	"sync/atomic"
)

// Store holds a shared collection with copy-on-write updates: writers
// build a new slice and swap the pointer, so a reader never observes a
// partially-updated collection. Writers are serialized, reads are
// lock-free.
type Store[T any] struct {
	mu sync.Mutex
	v  atomic.Pointer[[]T]
}

func NewStore[T any]() *Store[T] {
	s := &Store[T]{}
	empty := []T{}
	s.v.Store(&empty)
	return s
}

// Load returns the current collection. Callers must treat it as
// read-only; mutations go through Replace or Update.
func (s *Store[T]) Load() []T {
	return *s.v.Load()
}

// Replace swaps in a new collection wholesale.
func (s *Store[T]) Replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Store(&items)
}

// Update applies f to a snapshot of the collection and swaps in the
// result. f must return a fresh slice, not mutate its argument.
func (s *Store[T]) Update(f func([]T) []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := f(*s.v.Load())
	s.v.Store(&next)
}
