package usecase

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// RefreshService is implemented by AccountUseCase.
type RefreshService interface {
	Refresh(ctx context.Context) RefreshReport
}

// Refresher runs the initial fetch and, when an interval is set, keeps
// refreshing on a fixed schedule until the context is cancelled.
type Refresher struct {
	service  RefreshService
	interval time.Duration
	logger   zerolog.Logger
}

// NewRefresher creates a new Refresher. An interval of zero refreshes once.
func NewRefresher(service RefreshService, interval time.Duration, logger zerolog.Logger) *Refresher {
	return &Refresher{
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled, or returns after the single refresh
// when no interval is configured.
func (r *Refresher) Run(ctx context.Context) error {
	if r.interval <= 0 {
		r.refresh(ctx)
		return nil
	}

	r.logger.Info().Dur("interval", r.interval).Msg("refresher started")

	// The ticker fires once immediately, then every interval.
	ticker := backoff.NewTicker(backoff.WithContext(backoff.NewConstantBackOff(r.interval), ctx))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("refresher shutting down")
			return ctx.Err()
		case _, ok := <-ticker.C:
			if !ok {
				return ctx.Err()
			}
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	report := r.service.Refresh(ctx)
	r.logger.Debug().
		Int("credits", report.Credits.Count).
		Int("debits", report.Debits.Count).
		Bool("credits_failed", report.Credits.Err != nil).
		Bool("debits_failed", report.Debits.Err != nil).
		Msg("refresh completed")
}
