package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment. It is built
// once at startup and handed to constructors; nothing re-reads the environment
// after that.
type Config struct {
	Port string `env:"PORT" envDefault:"8085"`

	ProductAPIKey  string `env:"PRODUCT_API_KEY"`
	ProductAPIHost string `env:"PRODUCT_API_HOST" envDefault:"real-time-amazon-data.p.rapidapi.com"`
	AffiliateTag   string `env:"AFFILIATE_TAG" envDefault:"shopscout0f-20"`
	SearchCountry  string `env:"SEARCH_COUNTRY" envDefault:"US"`

	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`

	RedisURL string        `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	RedisDB  int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"10m"`

	RateLimitPerSecond float64 `env:"RATE_LIMIT_PER_SECOND" envDefault:"10"`
	RateLimitBurst     int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// HasProductAPICredentials reports whether the live product API can be called.
// A missing credential is not fatal: the service still answers every search
// from the mock catalog.
func (c *Config) HasProductAPICredentials() bool {
	return strings.TrimSpace(c.ProductAPIKey) != "" && strings.TrimSpace(c.ProductAPIHost) != ""
}
