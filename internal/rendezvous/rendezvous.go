// Package rendezvous assigns cache keys to shards with highest-random-weight hashing.
package rendezvous

import (
	"strconv"
)

// Shard is one partition of a sharded cache.
type Shard struct {
	index int

	identityString string // pre-computed, immutable string of shard identity
	identityHash   uint64 // pre-computed, immutable hash of shard identity
}

func NewShard(index int) *Shard {
	s := &Shard{index: index}
	s.identityString = "shard-" + strconv.Itoa(index)
	s.identityHash = DefaultUnsaltedHash64.Hash64([]byte(s.identityString))
	return s
}

// Index returns the position of the shard in its router.
func (s *Shard) Index() int {
	return s.index
}

// A Router tells a sharded cache which shard owns a key.
type Router interface {
	// Owner returns the index of the shard that owns key.
	Owner(key string) int
	// Len returns the number of shards.
	Len() int
}

// RendezvousRouter routes over a fixed set of shards and is safe for
// concurrent use since it is never mutated after construction.
type RendezvousRouter struct {
	shards []*Shard
	hasher Hash64
}

// NewRendezvousRouter builds a router over shards 0..count-1.
func NewRendezvousRouter(count int, hashConfig *HashConfig) *RendezvousRouter {
	shards := make([]*Shard, count)
	for i := range shards {
		shards[i] = NewShard(i)
	}
	return &RendezvousRouter{
		shards: shards,
		hasher: NewXXH3Hash64(hashConfig),
	}
}

func (r *RendezvousRouter) Len() int {
	return len(r.shards)
}

type shardScore struct {
	shard *Shard
	score uint64
}

// scoreBetter returns true if a is better than b (higher score, or same score with lower identity).
func scoreBetter(a, b shardScore) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return a.shard.identityString < b.shard.identityString
}

// Owner returns the shard with the highest score for key, or -1 if the
// router has no shards.
func (r *RendezvousRouter) Owner(key string) int {
	if len(r.shards) == 0 {
		return -1
	}
	if len(r.shards) == 1 {
		return 0
	}

	best := shardScore{shard: r.shards[0], score: r.hasher.ScoreString(key, r.shards[0].identityHash)}
	for _, shard := range r.shards[1:] {
		s := shardScore{shard: shard, score: r.hasher.ScoreString(key, shard.identityHash)}
		if scoreBetter(s, best) {
			best = s
		}
	}
	return best.shard.index
}
