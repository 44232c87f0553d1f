package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankview/internal/domain"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// TransactionFetcher retrieves the remote credit and debit collections.
type TransactionFetcher interface {
	FetchCredits(ctx context.Context) ([]domain.Transaction, error)
	FetchDebits(ctx context.Context) ([]domain.Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore remembers responses to mutating requests by key.
type IdempotencyStore interface {
	// Reserve claims key. Returns (reserved, storedResponse, error); storedResponse
	// is nil while another request holding the key is still in flight.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, []byte, error)
	// Complete stores the final response for key.
	Complete(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a reservation whose request failed.
	Release(ctx context.Context, key string) error
}

// MetricsRecorder receives account events for instrumentation.
type MetricsRecorder interface {
	ObserveFetch(kind domain.Kind, err error, duration time.Duration)
	TransactionAdded(kind domain.Kind)
	UserLoggedIn()
	BalanceChanged(balance decimal.Decimal)
}

type nopRecorder struct{}

func (nopRecorder) ObserveFetch(domain.Kind, error, time.Duration) {}
func (nopRecorder) TransactionAdded(domain.Kind)                   {}
func (nopRecorder) UserLoggedIn()                                  {}
func (nopRecorder) BalanceChanged(decimal.Decimal)                 {}
