package cache

import (
	"container/list"
	"sync"
	"time"
)

// DefaultMaxEntries bounds a store built with a non-positive limit.
const DefaultMaxEntries = 500

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

// Store is a bounded in-memory key/value cache where every entry expires
// after a fixed TTL.
//
// Behavior:
//   - Expired entries are never returned.
//   - Entries are kept in write order; with a fixed TTL that is also expiry
//     order, so each write only sweeps the expired head of the queue.
//   - When full, the oldest entry is evicted to make room.
//
// Safe for concurrent use.
type Store[V any] struct {
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	mu      sync.RWMutex
	order   *list.List // of *entry[V], oldest first
	entries map[string]*list.Element
}

// NewStore builds an empty store holding at most maxEntries values.
// A non-positive maxEntries uses DefaultMaxEntries; a nil now uses time.Now.
func NewStore[V any](ttl time.Duration, maxEntries int, now func() time.Time) *Store[V] {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if now == nil {
		now = time.Now
	}
	return &Store[V]{
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        now,
		order:      list.New(),
		entries:    make(map[string]*list.Element),
	}
}

// Get returns the value for key when present and not expired.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	el, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	e := el.Value.(*entry[V])
	if !s.now().Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key for the store's TTL, replacing any previous
// value. A non-positive TTL disables caching.
func (s *Store[V]) Set(key string, value V) {
	if s.ttl <= 0 {
		return
	}
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.entries[key]; ok {
		s.remove(el)
	}
	for front := s.order.Front(); front != nil; front = s.order.Front() {
		if now.Before(front.Value.(*entry[V]).expiresAt) {
			break
		}
		s.remove(front)
	}
	for s.order.Len() >= s.maxEntries {
		s.remove(s.order.Front())
	}

	s.entries[key] = s.order.PushBack(&entry[V]{key: key, value: value, expiresAt: now.Add(s.ttl)})
}

// remove must be called with mu held.
func (s *Store[V]) remove(el *list.Element) {
	s.order.Remove(el)
	delete(s.entries, el.Value.(*entry[V]).key)
}

// Len counts live and not-yet-swept entries.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// TTL is the lifetime of each entry.
func (s *Store[V]) TTL() time.Duration { return s.ttl }

// MaxEntries is the capacity of the store.
func (s *Store[V]) MaxEntries() int { return s.maxEntries }
