package lru

import (
	"fmt"

	"github.com/satmihir/justlru/internal/utils"
)

// assertInvariants aborts the process if the key index and the recency list
// have diverged. It is compiled to a no-op unless built with -tags lrudebug.
func (c *Cache[K, V]) assertInvariants() {
	if !debugAssertions {
		return
	}
	err := c.checkInvariants()
	utils.MustBeTrue(err == nil, fmt.Sprintf("lru: invariant violated: %v", err))
}

// checkInvariants walks both structures and reports the first inconsistency.
// It is O(n) and meant for tests and debug builds only.
func (c *Cache[K, V]) checkInvariants() error {
	if len(c.index) != c.recency.len() {
		return fmt.Errorf("index holds %d keys, list holds %d entries", len(c.index), c.recency.len())
	}
	if len(c.index) > c.capacity {
		return fmt.Errorf("%d entries exceed capacity %d", len(c.index), c.capacity)
	}

	head := c.entries.at(headSentinel)
	tail := c.entries.at(tailSentinel)
	if head.prev != nilHandle || tail.next != nilHandle {
		return fmt.Errorf("sentinels linked outside the list")
	}

	walked := 0
	prev := headSentinel
	for h := head.next; h != tailSentinel; h = c.entries.at(h).next {
		if h < sentinelSlots || int(h) >= len(c.entries.slots) {
			return fmt.Errorf("handle %d out of range", h)
		}
		walked++
		if walked > c.recency.len() {
			return fmt.Errorf("list longer than its size %d, cycle suspected", c.recency.len())
		}

		e := c.entries.at(h)
		if e.prev != prev {
			return fmt.Errorf("handle %d has prev %d, want %d", h, e.prev, prev)
		}
		if got, ok := c.index[e.key]; !ok || got != h {
			return fmt.Errorf("key %v at handle %d is not indexed to it", e.key, h)
		}
		prev = h
	}
	if tail.prev != prev {
		return fmt.Errorf("tail prev is %d, want %d", tail.prev, prev)
	}
	if walked != c.recency.len() {
		return fmt.Errorf("walked %d entries, list size is %d", walked, c.recency.len())
	}

	live := len(c.entries.slots) - sentinelSlots - len(c.entries.free)
	if live != walked {
		return fmt.Errorf("arena holds %d live slots, list holds %d", live, walked)
	}
	return nil
}
