package lru

// handle is a stable index into the arena. It never implies ownership.
type handle int32

const (
	// nilHandle marks a detached link.
	nilHandle handle = -1

	// The two list boundaries occupy the first arena slots for the lifetime of the cache.
	headSentinel handle = 0
	tailSentinel handle = 1

	sentinelSlots = 2
)

// entry is a cached key-value pair plus its recency links.
type entry[K comparable, V any] struct {
	key   K
	value V

	prev handle
	next handle
}

// arena owns every entry of a cache. The recency list and the key index
// only ever hold handles into it.
type arena[K comparable, V any] struct {
	slots []entry[K, V]
	// Released slots, reused LIFO before the slice is extended.
	free []handle
}

func newArena[K comparable, V any](capacity int) *arena[K, V] {
	a := &arena[K, V]{
		slots: make([]entry[K, V], sentinelSlots, capacity+sentinelSlots),
		free:  make([]handle, 0, capacity),
	}
	a.slots[headSentinel] = entry[K, V]{prev: nilHandle, next: tailSentinel}
	a.slots[tailSentinel] = entry[K, V]{prev: headSentinel, next: nilHandle}
	return a
}

// alloc stores a new detached entry and returns its handle.
func (a *arena[K, V]) alloc(key K, value V) handle {
	e := entry[K, V]{key: key, value: value, prev: nilHandle, next: nilHandle}
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[h] = e
		return h
	}
	a.slots = append(a.slots, e)
	return handle(len(a.slots) - 1)
}

// release zeroes the slot so the GC can reclaim whatever K and V point to,
// and makes it available to the next alloc.
func (a *arena[K, V]) release(h handle) {
	a.slots[h] = entry[K, V]{prev: nilHandle, next: nilHandle}
	a.free = append(a.free, h)
}

// at returns the entry for h. The pointer is only valid until the next alloc.
func (a *arena[K, V]) at(h handle) *entry[K, V] {
	return &a.slots[h]
}

// reset releases every live slot while keeping the backing storage.
func (a *arena[K, V]) reset() {
	clear(a.slots[sentinelSlots:])
	a.slots = a.slots[:sentinelSlots]
	a.free = a.free[:0]
	a.slots[headSentinel] = entry[K, V]{prev: nilHandle, next: tailSentinel}
	a.slots[tailSentinel] = entry[K, V]{prev: headSentinel, next: nilHandle}
}
