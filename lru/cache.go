package lru

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCapacity   = errors.New("capacity must be at least one")
	ErrInvalidShardCount = errors.New("shard count must be at least one")
	ErrLockContended     = errors.New("cache lock is contended")
)

// Options configures a Cache.
type Options[K comparable, V any] struct {
	// OnEvict is called once the entry that made room for a new key has left
	// the cache and the new key has been inserted. It is not called for Remove,
	// RemoveOldest or Purge.
	OnEvict func(key K, value V)
}

// Cache is a fixed-capacity least-recently-used cache.
//
// Both reads and writes count as use. When a new key is inserted into a full
// cache, the entry that has gone the longest without a Get or Put is evicted.
//
// Cache is not safe for concurrent use; see SyncCache.
type Cache[K comparable, V any] struct {
	capacity int
	onEvict  func(key K, value V)

	// The arena owns all entries. index and recency only hold handles and
	// are always updated together.
	entries *arena[K, V]
	index   map[K]handle
	recency *recencyList[K, V]
}

// New creates a cache that holds at most capacity entries. A capacity below
// one is rejected with ErrInvalidCapacity.
func New[K comparable, V any](capacity int, opts ...Options[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	var options Options[K, V]
	if len(opts) > 0 {
		options = opts[0]
	}

	entries := newArena[K, V](capacity)
	return &Cache[K, V]{
		capacity: capacity,
		onEvict:  options.OnEvict,
		entries:  entries,
		index:    make(map[K]handle, capacity),
		recency:  newRecencyList(entries),
	}, nil
}

// MustNew is like New but panics on an invalid capacity.
func MustNew[K comparable, V any](capacity int, opts ...Options[K, V]) *Cache[K, V] {
	c, err := New(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the value for key and marks it as most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	h, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.recency.moveToFront(h)
	c.assertInvariants()
	return c.entries.at(h).value, true
}

// Peek returns the value for key without updating its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	h, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.entries.at(h).value, true
}

// Contains reports whether key is cached without updating its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Put inserts or replaces the value for key and marks it as most recently used.
// Replacing an existing key never evicts. Inserting a new key into a full
// cache evicts the least recently used entry first.
func (c *Cache[K, V]) Put(key K, value V) {
	if h, ok := c.index[key]; ok {
		c.entries.at(h).value = value
		c.recency.moveToFront(h)
		c.assertInvariants()
		return
	}

	var (
		evictedKey   K
		evictedValue V
		evicted      bool
	)
	if len(c.index) >= c.capacity {
		evictedKey, evictedValue, evicted = c.evictOldest()
	}

	h := c.entries.alloc(key, value)
	c.recency.pushFront(h)
	c.index[key] = h
	c.assertInvariants()

	// The callback sees a consistent cache that already holds the new key.
	if evicted && c.onEvict != nil {
		c.onEvict(evictedKey, evictedValue)
	}
}

// Remove deletes key and reports whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	h, ok := c.index[key]
	if !ok {
		return false
	}

	c.removeHandle(h)
	c.assertInvariants()
	return true
}

// Oldest returns the least recently used entry without updating its recency.
func (c *Cache[K, V]) Oldest() (K, V, bool) {
	h, ok := c.recency.back()
	if !ok {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}
	e := c.entries.at(h)
	return e.key, e.value, true
}

// RemoveOldest deletes and returns the least recently used entry.
func (c *Cache[K, V]) RemoveOldest() (K, V, bool) {
	key, value, ok := c.Oldest()
	if !ok {
		return key, value, false
	}
	c.removeHandle(c.index[key])
	c.assertInvariants()
	return key, value, true
}

// Keys returns the cached keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.recency.len())
	c.recency.each(func(h handle) bool {
		keys = append(keys, c.entries.at(h).key)
		return true
	})
	return keys
}

// Purge removes every entry. The capacity is unchanged.
func (c *Cache[K, V]) Purge() {
	clear(c.index)
	c.recency.reset()
	c.entries.reset()
	c.assertInvariants()
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// Cap returns the maximum number of entries.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// evictOldest drops the tail of the recency list to make room for an insert
// and returns what it dropped.
func (c *Cache[K, V]) evictOldest() (K, V, bool) {
	h, ok := c.recency.back()
	if !ok {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}

	e := c.entries.at(h)
	key, value := e.key, e.value
	c.removeHandle(h)
	return key, value, true
}

// removeHandle unlinks h from both indexes and frees its slot.
func (c *Cache[K, V]) removeHandle(h handle) {
	c.recency.detach(h)
	delete(c.index, c.entries.at(h).key)
	c.entries.release(h)
}
