// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Cache    CacheConfig
	Provider ProviderConfig
	Pricing  PricingConfig
	Catalog  CatalogConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"40s"`
}

// TimeoutConfig holds timeout settings for pricing operations.
type TimeoutConfig struct {
	GlobalPricing time.Duration `env:"TIMEOUT_GLOBAL_PRICING" envDefault:"30s"`
	PerQuote      time.Duration `env:"TIMEOUT_PER_QUOTE" envDefault:"23s"`
}

// CacheConfig holds rate cache settings.
type CacheConfig struct {
	// Backend selects the cache store implementation (memory, redis)
	Backend string `env:"CACHE_BACKEND" envDefault:"memory"`

	// RedisAddr is the Redis server address, used when Backend is redis
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// SearchTTL is how long cached rate search results stay fresh
	SearchTTL time.Duration `env:"CACHE_SEARCH_TTL" envDefault:"30m"`

	// HotelMetaTTL is how long cached hotel metadata stays fresh
	HotelMetaTTL time.Duration `env:"CACHE_HOTEL_META_TTL" envDefault:"24h"`

	// EvictInterval is how often the in-memory store sweeps expired entries
	EvictInterval time.Duration `env:"CACHE_EVICT_INTERVAL" envDefault:"5m"`
}

// ProviderConfig holds hotel rate provider settings.
type ProviderConfig struct {
	// TBOBaseURL is the TBO hotel API base URL
	TBOBaseURL string `env:"TBO_BASE_URL" envDefault:"https://api.tbotechnology.in/TBOHolidays_HotelAPI"`

	// TBOAPIKey is the TBO API credential
	TBOAPIKey string `env:"TBO_API_KEY"`

	// Nationality is the default guest nationality for rate searches
	Nationality string `env:"DEFAULT_NATIONALITY" envDefault:"AE"`

	// Enabled controls whether live rates are fetched at all; when false
	// every request is priced from static data
	Enabled bool `env:"PROVIDER_ENABLED" envDefault:"true"`
}

// PricingConfig holds pricing composition settings.
type PricingConfig struct {
	// ServiceFeeRate is the fraction added as a service fee line, e.g.
	// 0.05 for 5%. Zero disables the fee line.
	ServiceFeeRate float64 `env:"SERVICE_FEE_RATE" envDefault:"0"`
}

// CatalogConfig holds the static catalog settings.
type CatalogConfig struct {
	// Path is the JSON file the package and hotel catalog is loaded from
	Path string `env:"CATALOG_PATH" envDefault:"catalog.json"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.GlobalPricing <= 0 {
		return fmt.Errorf("TIMEOUT_GLOBAL_PRICING must be positive")
	}
	if cfg.Timeouts.PerQuote <= 0 {
		return fmt.Errorf("TIMEOUT_PER_QUOTE must be positive")
	}

	// Validate per-quote timeout is less than global timeout
	if cfg.Timeouts.PerQuote >= cfg.Timeouts.GlobalPricing {
		return fmt.Errorf("TIMEOUT_PER_QUOTE (%s) should be less than TIMEOUT_GLOBAL_PRICING (%s)",
			cfg.Timeouts.PerQuote, cfg.Timeouts.GlobalPricing)
	}

	// Validate cache settings
	validBackends := map[string]bool{"memory": true, "redis": true}
	if !validBackends[cfg.Cache.Backend] {
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, redis; got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.SearchTTL <= 0 {
		return fmt.Errorf("CACHE_SEARCH_TTL must be positive")
	}
	if cfg.Cache.HotelMetaTTL <= 0 {
		return fmt.Errorf("CACHE_HOTEL_META_TTL must be positive")
	}
	if cfg.Cache.EvictInterval <= 0 {
		return fmt.Errorf("CACHE_EVICT_INTERVAL must be positive")
	}
	if cfg.Cache.Backend == "redis" && cfg.Cache.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND is redis")
	}

	// Validate provider settings
	if cfg.Provider.Enabled && cfg.Provider.TBOBaseURL == "" {
		return fmt.Errorf("TBO_BASE_URL is required when the provider is enabled")
	}

	// Validate pricing settings
	if cfg.Pricing.ServiceFeeRate < 0 || cfg.Pricing.ServiceFeeRate >= 1 {
		return fmt.Errorf("SERVICE_FEE_RATE must be in [0, 1), got %g", cfg.Pricing.ServiceFeeRate)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
