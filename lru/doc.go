// Package lru implements fixed-capacity least-recently-used caches.
//
// Cache is the single-threaded core. Entries live in an arena and are
// addressed by integer handles; a map from key to handle and a doubly-linked
// recency list over those handles are always updated together, which keeps
// Get, Put and Remove O(1).
//
// SyncCache guards one Cache with a mutex and can also be polled with
// backoff instead of blocking. Sharded partitions string keys over several
// SyncCaches by rendezvous hashing.
//
// Building with -tags lrudebug verifies the cache invariants after every
// mutation and aborts the process on the first violation.
package lru
