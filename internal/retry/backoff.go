// Package retry provides exponential backoff with jitter for callers that
// poll a contended resource, such as a cache lock acquired with TryLock.
package retry

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Config configures the retry behavior.
type Config struct {
	// InitialDelay is the delay before the first retry.
	// Default: 50µs
	InitialDelay time.Duration

	// MaxDelay is the maximum delay between retries.
	// Default: 5ms
	MaxDelay time.Duration

	// Multiplier is the factor by which delay increases after each retry.
	// Default: 2.0
	Multiplier float64

	// MaxAttempts is the maximum number of attempts (including the first).
	// 0 means retry until the context is done.
	// Default: 8
	MaxAttempts int

	// JitterFraction is the fraction of the delay to randomize (0.0 to 1.0).
	// E.g., 0.2 means ±20% jitter.
	// Default: 0.2
	JitterFraction float64
}

// DefaultConfig returns delays sized for waiting on an in-process mutex,
// which is held for microseconds rather than a network round trip.
func DefaultConfig() Config {
	return Config{
		InitialDelay:   50 * time.Microsecond,
		MaxDelay:       5 * time.Millisecond,
		Multiplier:     2.0,
		MaxAttempts:    8,
		JitterFraction: 0.2,
	}
}

// Backoff tracks retry state and calculates delays.
type Backoff struct {
	config   Config
	attempt  int
	rng      *rand.Rand
	rngMutex sync.Mutex
}

// New creates a new Backoff with the given configuration.
func New(config Config) *Backoff {
	defaults := DefaultConfig()
	if config.InitialDelay <= 0 {
		config.InitialDelay = defaults.InitialDelay
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = defaults.MaxDelay
	}
	if config.MaxDelay < config.InitialDelay {
		config.MaxDelay = config.InitialDelay
	}
	if config.Multiplier < 1 {
		config.Multiplier = defaults.Multiplier
	}
	if config.JitterFraction < 0 {
		config.JitterFraction = 0
	}
	if config.JitterFraction > 1 {
		config.JitterFraction = 1
	}

	return &Backoff{
		config: config,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next returns the delay before the next retry attempt.
// Returns 0 once max attempts have been used up.
func (b *Backoff) Next() time.Duration {
	b.attempt++

	if b.config.MaxAttempts > 0 && b.attempt >= b.config.MaxAttempts {
		return 0
	}

	delay := float64(b.config.InitialDelay) * math.Pow(b.config.Multiplier, float64(b.attempt-1))
	if delay > float64(b.config.MaxDelay) {
		delay = float64(b.config.MaxDelay)
	}

	// delay * (1 ± jitterFraction)
	if b.config.JitterFraction > 0 {
		b.rngMutex.Lock()
		jitter := (b.rng.Float64()*2 - 1) * b.config.JitterFraction
		b.rngMutex.Unlock()
		delay = delay * (1 + jitter)
	}

	// Zero is reserved for "stop", so heavy jitter on a tiny delay still waits.
	if d := time.Duration(delay); d > 0 {
		return d
	}
	return time.Nanosecond
}

// Attempt returns the number of delays handed out so far.
func (b *Backoff) Attempt() int {
	return b.attempt
}

// Reset resets the backoff to its initial state.
func (b *Backoff) Reset() {
	b.attempt = 0
}

// Exhausted returns true if no further retry is allowed.
func (b *Backoff) Exhausted() bool {
	return b.config.MaxAttempts > 0 && b.attempt+1 >= b.config.MaxAttempts
}

// RetryableFunc is a function that can be retried.
// It should return (result, error, shouldRetry).
// If shouldRetry is false, Do() returns immediately.
type RetryableFunc[T any] func() (T, error, bool)

// Do calls fn until it succeeds, reports a non-retryable error, runs out of
// attempts, or ctx is done. It returns the last error fn reported, or
// ctx.Err() if the context ended first.
func Do[T any](ctx context.Context, config Config, fn RetryableFunc[T]) (T, error) {
	backoff := New(config)
	var zero T

	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err, shouldRetry := fn()
		if err == nil {
			return result, nil
		}
		if !shouldRetry {
			return zero, err
		}

		delay := backoff.Next()
		if delay <= 0 {
			return zero, err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}
