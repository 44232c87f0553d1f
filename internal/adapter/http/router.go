package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/iho/bankview/internal/adapter/http/handler"
	"github.com/iho/bankview/internal/adapter/http/middleware"
	"github.com/iho/bankview/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	HomeHandler        *handler.HomeHandler
	UserHandler        *handler.UserHandler
	TransactionHandler *handler.TransactionHandler
	RefreshHandler     *handler.RefreshHandler
	HealthHandler      *handler.HealthHandler
	MetricsHandler     http.Handler
	Logger             zerolog.Logger
	IdempotencyStore   usecase.IdempotencyStore
	RateLimiter        *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Group(func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		r.Get("/", cfg.HomeHandler.Get)

		r.Get("/login", cfg.UserHandler.Current)
		r.Post("/login", cfg.UserHandler.Login)
		r.Get("/user/{userName}", cfg.UserHandler.Profile)

		r.Post("/refresh", cfg.RefreshHandler.Refresh)

		r.Group(func(r chi.Router) {
			if cfg.IdempotencyStore != nil {
				r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore).Wrap)
			}

			r.Get("/credits", cfg.TransactionHandler.ListCredits)
			r.Post("/credits", cfg.TransactionHandler.AddCredit)
			r.Get("/debits", cfg.TransactionHandler.ListDebits)
			r.Post("/debits", cfg.TransactionHandler.AddDebit)
		})
	})

	return r
}
