package lru

import "sync"

// SyncCache is a Cache guarded by a single mutex. Every method is one
// critical section, so callers never observe the key index and the recency
// list out of step.
//
// OnEvict runs with the lock held and must not call back into the cache.
type SyncCache[K comparable, V any] struct {
	mu    sync.Mutex
	cache *Cache[K, V]
}

// NewSync creates a concurrency-safe cache. See New for the capacity contract.
func NewSync[K comparable, V any](capacity int, opts ...Options[K, V]) (*SyncCache[K, V], error) {
	c, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncCache[K, V]{cache: c}, nil
}

func (s *SyncCache[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(key)
}

func (s *SyncCache[K, V]) Peek(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Peek(key)
}

func (s *SyncCache[K, V]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Contains(key)
}

func (s *SyncCache[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Put(key, value)
}

func (s *SyncCache[K, V]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Remove(key)
}

func (s *SyncCache[K, V]) Oldest() (K, V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Oldest()
}

func (s *SyncCache[K, V]) RemoveOldest() (K, V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.RemoveOldest()
}

// Keys returns a snapshot of the keys from most to least recently used.
func (s *SyncCache[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Keys()
}

func (s *SyncCache[K, V]) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Purge()
}

func (s *SyncCache[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

// Cap does not lock since capacity never changes after construction.
func (s *SyncCache[K, V]) Cap() int {
	return s.cache.Cap()
}
