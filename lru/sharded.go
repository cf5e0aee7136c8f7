package lru

import (
	"fmt"

	"github.com/satmihir/justlru/internal/constants"
	"github.com/satmihir/justlru/internal/rendezvous"
)

// ShardedOptions configures a Sharded cache.
type ShardedOptions[K ~string, V any] struct {
	// Shards is the number of independently locked partitions.
	// Zero means constants.DefaultShardCount.
	Shards int
	// Salt perturbs the key to shard assignment. Optional.
	Salt []byte
	// OnEvict is forwarded to every shard.
	OnEvict func(key K, value V)
}

// Sharded spreads keys over several SyncCaches to reduce lock contention.
// Recency is tracked per shard, so an eviction removes the least recently
// used entry of the shard that owns the inserted key, not of the whole cache.
type Sharded[K ~string, V any] struct {
	router rendezvous.Router
	shards []*SyncCache[K, V]
}

// NewSharded splits capacity as evenly as possible over the shards, giving
// the remainder to the lowest shards. Every shard must get at least one entry.
func NewSharded[K ~string, V any](capacity int, opts ...ShardedOptions[K, V]) (*Sharded[K, V], error) {
	var options ShardedOptions[K, V]
	if len(opts) > 0 {
		options = opts[0]
	}

	count := options.Shards
	if count == 0 {
		count = constants.DefaultShardCount
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidShardCount, count)
	}
	if capacity < count*constants.MinCapacity {
		return nil, fmt.Errorf("%w: %d entries cannot fill %d shards", ErrInvalidCapacity, capacity, count)
	}

	s := &Sharded[K, V]{
		router: rendezvous.NewRendezvousRouter(count, rendezvous.NewHashConfig(options.Salt)),
		shards: make([]*SyncCache[K, V], count),
	}

	base, extra := capacity/count, capacity%count
	for i := range s.shards {
		shardCapacity := base
		if i < extra {
			shardCapacity++
		}
		shard, err := NewSync(shardCapacity, Options[K, V]{OnEvict: options.OnEvict})
		if err != nil {
			return nil, err
		}
		s.shards[i] = shard
	}
	return s, nil
}

func (s *Sharded[K, V]) shardFor(key K) *SyncCache[K, V] {
	return s.shards[s.router.Owner(string(key))]
}

func (s *Sharded[K, V]) Get(key K) (V, bool) {
	return s.shardFor(key).Get(key)
}

func (s *Sharded[K, V]) Peek(key K) (V, bool) {
	return s.shardFor(key).Peek(key)
}

func (s *Sharded[K, V]) Contains(key K) bool {
	return s.shardFor(key).Contains(key)
}

func (s *Sharded[K, V]) Put(key K, value V) {
	s.shardFor(key).Put(key, value)
}

func (s *Sharded[K, V]) Remove(key K) bool {
	return s.shardFor(key).Remove(key)
}

// Purge empties the shards one at a time. Concurrent writers may repopulate
// a shard that has already been purged.
func (s *Sharded[K, V]) Purge() {
	for _, shard := range s.shards {
		shard.Purge()
	}
}

// Len sums the shard sizes. Under concurrent writes it is a point-in-time
// estimate, not an atomic snapshot.
func (s *Sharded[K, V]) Len() int {
	n := 0
	for _, shard := range s.shards {
		n += shard.Len()
	}
	return n
}

func (s *Sharded[K, V]) Cap() int {
	n := 0
	for _, shard := range s.shards {
		n += shard.Cap()
	}
	return n
}

func (s *Sharded[K, V]) ShardCount() int {
	return len(s.shards)
}
