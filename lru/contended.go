package lru

import (
	"context"

	"github.com/satmihir/justlru/internal/retry"
)

// BackoffConfig controls how GetContext and PutContext wait for the lock.
// MaxAttempts of 0 retries until the context is done.
type BackoffConfig = retry.Config

// DefaultBackoffConfig returns delays sized for an in-process mutex.
func DefaultBackoffConfig() BackoffConfig {
	return retry.DefaultConfig()
}

// TryGet is Get without blocking. acquired is false if the lock was busy,
// in which case nothing was read and recency is unchanged.
func (s *SyncCache[K, V]) TryGet(key K) (value V, found bool, acquired bool) {
	if !s.mu.TryLock() {
		return value, false, false
	}
	defer s.mu.Unlock()
	value, found = s.cache.Get(key)
	return value, found, true
}

// TryPut is Put without blocking. It reports whether the write happened.
func (s *SyncCache[K, V]) TryPut(key K, value V) bool {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()
	s.cache.Put(key, value)
	return true
}

type lookup[V any] struct {
	value V
	found bool
}

// GetContext polls TryGet with exponential backoff. It returns
// ErrLockContended if the lock stayed busy for every attempt and ctx.Err()
// if the context ended first. A miss is not an error.
func (s *SyncCache[K, V]) GetContext(ctx context.Context, key K, cfg BackoffConfig) (V, bool, error) {
	res, err := retry.Do(ctx, cfg, func() (lookup[V], error, bool) {
		value, found, acquired := s.TryGet(key)
		if !acquired {
			return lookup[V]{}, ErrLockContended, true
		}
		return lookup[V]{value: value, found: found}, nil, false
	})
	return res.value, res.found, err
}

// PutContext polls TryPut with exponential backoff, with the same error
// contract as GetContext.
func (s *SyncCache[K, V]) PutContext(ctx context.Context, key K, value V, cfg BackoffConfig) error {
	_, err := retry.Do(ctx, cfg, func() (struct{}, error, bool) {
		if !s.TryPut(key, value) {
			return struct{}{}, ErrLockContended, true
		}
		return struct{}{}, nil, false
	})
	return err
}
