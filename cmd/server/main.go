package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/bankview/internal/adapter/http"
	"github.com/iho/bankview/internal/adapter/http/handler"
	"github.com/iho/bankview/internal/adapter/http/middleware"
	"github.com/iho/bankview/internal/adapter/remote"
	redisRepo "github.com/iho/bankview/internal/adapter/repository/redis"
	"github.com/iho/bankview/internal/domain"
	"github.com/iho/bankview/internal/infrastructure/config"
	"github.com/iho/bankview/internal/infrastructure/idgen"
	applogger "github.com/iho/bankview/internal/infrastructure/logger"
	"github.com/iho/bankview/internal/infrastructure/metrics"
	"github.com/iho/bankview/internal/infrastructure/redis"
	"github.com/iho/bankview/internal/usecase"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := applogger.New(applogger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	user, err := defaultUser(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid demo user configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New(nil)

	var fetcher usecase.TransactionFetcher = remote.NewClient(remote.Config{
		CreditsURL: cfg.CreditsURL,
		DebitsURL:  cfg.DebitsURL,
		Timeout:    cfg.FetchTimeout,
	})

	var (
		redisClient      *goredis.Client
		idempotencyStore usecase.IdempotencyStore
		invalidator      handler.CacheInvalidator
	)
	if cfg.CacheEnabled() {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")

		cached := remote.NewCachingFetcher(fetcher, redisRepo.NewCache(redisClient), cfg.CacheTTL, logger, m)
		fetcher = cached
		invalidator = cached
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
	}

	accountUC := usecase.NewAccountUseCase(fetcher, idgen.NewULIDGenerator(), m, logger, user)

	go func() {
		if err := usecase.NewRefresher(accountUC, cfg.RefreshInterval, logger).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("refresher stopped")
		}
	}()

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go rateLimiter.RunCleanup(ctx, time.Minute)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		HomeHandler:        handler.NewHomeHandler(accountUC),
		UserHandler:        handler.NewUserHandler(accountUC),
		TransactionHandler: handler.NewTransactionHandler(accountUC),
		RefreshHandler:     handler.NewRefreshHandler(accountUC, invalidator),
		HealthHandler:      handler.NewHealthHandler(redisClient),
		MetricsHandler:     promhttp.Handler(),
		Logger:             logger,
		IdempotencyStore:   idempotencyStore,
		RateLimiter:        rateLimiter,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// defaultUser builds the logged-out demo user from configuration.
func defaultUser(cfg *config.Config) (domain.User, error) {
	if err := domain.ValidateDisplayName(cfg.DefaultUserName); err != nil {
		return domain.User{}, fmt.Errorf("DEFAULT_USER_NAME: %w", err)
	}

	memberSince, err := time.Parse(domain.DisplayDateLayout, cfg.MemberSince)
	if err != nil {
		return domain.User{}, fmt.Errorf("MEMBER_SINCE: %w", err)
	}

	return domain.NewUser(cfg.DefaultUserName, memberSince), nil
}
