package constants

const (
	// DefaultShardCount is used by sharded caches when no count is configured.
	DefaultShardCount = 16
	// MinCapacity is the smallest number of entries any cache or shard may hold.
	MinCapacity = 1
)
