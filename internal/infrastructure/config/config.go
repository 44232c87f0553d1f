package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Remote API
	CreditsURL      string        `env:"CREDITS_URL"      envDefault:"https://moj-api.herokuapp.com/credits"`
	DebitsURL       string        `env:"DEBITS_URL"       envDefault:"https://moj-api.herokuapp.com/debits"`
	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT"    envDefault:"10s"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"0s"`

	// Redis (optional - leave empty to disable the fetch cache)
	RedisURL string        `env:"REDIS_URL" envDefault:""`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"1m"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Rate limiting (optional - 0 disables)
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Demo user
	DefaultUserName string `env:"DEFAULT_USER_NAME" envDefault:"Bobby"`
	MemberSince     string `env:"MEMBER_SINCE"      envDefault:"1990-01-01"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// CacheEnabled reports whether a Redis fetch cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}
