package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds a collection of entities of one type and broadcasts a change
// notification to subscribers after every committed mutation.
//
// All methods are safe for concurrent use. Reads return snapshot copies;
// a returned slice is not updated by later mutations.
type Store[T any] struct {
	mu      sync.RWMutex
	items   []T
	id      func(T) string
	clock   Clock
	subs    map[uint64]func()
	nextSub uint64
}

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithClock overrides the clock used for server-assigned timestamps.
func WithClock[T any](c Clock) Option[T] {
	return func(s *Store[T]) {
		s.clock = c
	}
}

// New creates an empty store for entities identified by the id accessor.
func New[T any](id func(T) string, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		id:    id,
		clock: SystemClock{},
		subs:  make(map[uint64]func()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// All returns a copy of the collection in insertion order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the entity with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if s.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of entities currently held.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Add appends the entity produced by build, which receives a server-assigned
// unique id and the creation timestamp, then notifies subscribers.
func (s *Store[T]) Add(build func(id string, createdAt time.Time) T) T {
	s.mu.Lock()
	item := build(uuid.NewString(), s.clock.Now())
	next := make([]T, len(s.items), len(s.items)+1)
	copy(next, s.items)
	s.items = append(next, item)
	s.mu.Unlock()

	s.notify()
	return item
}

// Update replaces the entity with the given id by the result of apply.
// Any domain side effect belongs inside apply so it commits atomically with
// the merge. An unknown id leaves the collection unchanged; subscribers are
// notified after every call regardless.
func (s *Store[T]) Update(id string, apply func(T) T) {
	s.mu.Lock()
	next := make([]T, len(s.items))
	for i, item := range s.items {
		if s.id(item) == id {
			next[i] = apply(item)
		} else {
			next[i] = item
		}
	}
	s.items = next
	s.mu.Unlock()

	s.notify()
}

// Upsert replaces the first entity matching match with the result of apply,
// or appends the entity produced by build when nothing matches. The lookup
// and the write happen under one lock, so concurrent upserts for the same
// key cannot both insert. Subscribers are notified either way.
func (s *Store[T]) Upsert(match func(T) bool, apply func(T) T, build func(id string, createdAt time.Time) T) T {
	s.mu.Lock()
	var result T
	replaced := false
	next := make([]T, len(s.items), len(s.items)+1)
	for i, item := range s.items {
		if !replaced && match(item) {
			result = apply(item)
			next[i] = result
			replaced = true
		} else {
			next[i] = item
		}
	}
	if !replaced {
		result = build(uuid.NewString(), s.clock.Now())
		next = append(next, result)
	}
	s.items = next
	s.mu.Unlock()

	s.notify()
	return result
}

// Delete removes the entity with the given id if present, then notifies
// subscribers. An unknown id is a silent no-op.
func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	next := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if s.id(item) != id {
			next = append(next, item)
		}
	}
	s.items = next
	s.mu.Unlock()

	s.notify()
}

// Subscribe registers fn to run synchronously after every mutation and
// returns the function that removes the subscription. Each call registers an
// independent subscription, even for the same callback. No ordering is
// guaranteed between distinct subscribers.
func (s *Store[T]) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// notify invokes subscriber callbacks with the lock released so a callback
// may re-read the store.
func (s *Store[T]) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
