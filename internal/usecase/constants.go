package usecase

import "time"

const (
	// DefaultFetchTimeout bounds a single refresh when the caller's context has no deadline.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultCacheTTL is how long fetched collections are cached.
	DefaultCacheTTL = time.Minute

	// IdempotencyKeyTTL is how long idempotent responses are replayed
	IdempotencyKeyTTL = 24 * time.Hour
)
