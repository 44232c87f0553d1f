package remote

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/bankview/internal/domain"
	"github.com/iho/bankview/internal/usecase"
)

// CacheRecorder receives cache hit/miss events.
type CacheRecorder interface {
	CacheLookup(kind domain.Kind, hit bool)
}

// CachingFetcher serves collections from a cache and falls back to the
// wrapped fetcher on a miss. Cache failures never fail a fetch.
type CachingFetcher struct {
	next     usecase.TransactionFetcher
	cache    usecase.Cache
	ttl      time.Duration
	logger   zerolog.Logger
	recorder CacheRecorder
}

// NewCachingFetcher creates a new CachingFetcher. recorder may be nil.
func NewCachingFetcher(next usecase.TransactionFetcher, cache usecase.Cache, ttl time.Duration, logger zerolog.Logger, recorder CacheRecorder) *CachingFetcher {
	if ttl <= 0 {
		ttl = usecase.DefaultCacheTTL
	}

	return &CachingFetcher{
		next:     next,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
		recorder: recorder,
	}
}

// FetchCredits retrieves the credit collection.
func (f *CachingFetcher) FetchCredits(ctx context.Context) ([]domain.Transaction, error) {
	return f.fetch(ctx, domain.KindCredit, f.next.FetchCredits)
}

// FetchDebits retrieves the debit collection.
func (f *CachingFetcher) FetchDebits(ctx context.Context) ([]domain.Transaction, error) {
	return f.fetch(ctx, domain.KindDebit, f.next.FetchDebits)
}

// Invalidate drops both cached collections.
func (f *CachingFetcher) Invalidate(ctx context.Context) error {
	return errors.Join(
		f.cache.Delete(ctx, cacheKey(domain.KindCredit)),
		f.cache.Delete(ctx, cacheKey(domain.KindDebit)),
	)
}

func (f *CachingFetcher) fetch(ctx context.Context, kind domain.Kind, fetch func(context.Context) ([]domain.Transaction, error)) ([]domain.Transaction, error) {
	key := cacheKey(kind)

	data, err := f.cache.Get(ctx, key)
	switch {
	case err == nil:
		txs, decodeErr := DecodeTransactions(data)
		if decodeErr == nil {
			f.record(kind, true)
			return txs, nil
		}
		f.logger.Warn().Err(decodeErr).Str("key", key).Msg("discarding undecodable cache entry")
	case !errors.Is(err, usecase.ErrCacheMiss):
		f.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	f.record(kind, false)

	txs, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := EncodeTransactions(txs)
	if err == nil {
		err = f.cache.Set(ctx, key, encoded, f.ttl)
	}
	if err != nil {
		f.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}

	return txs, nil
}

func (f *CachingFetcher) record(kind domain.Kind, hit bool) {
	if f.recorder != nil {
		f.recorder.CacheLookup(kind, hit)
	}
}

func cacheKey(kind domain.Kind) string {
	return "transactions:" + kind.Plural()
}
