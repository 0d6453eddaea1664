// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on, 0 picks a free port
	Env  string // development, staging, production

	// Database
	DatabasePath string // Path to SQLite file holding stored analyses

	// Authentication
	APIKey string // API key for the analyses endpoints

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	// Conversion cache and metrics
	CacheSize      int  // Entries in the code-to-form conversion cache
	MetricsEnabled bool // Serve Prometheus metrics on /metrics

	// Per-client rate limiting of the API, 0 disables it
	RateLimit float64 // Sustained requests per second per client
	RateBurst int     // Requests a client may send at once
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

const (
	defaultPort      = 8080
	defaultDBPath    = "./data/calendrical.db"
	defaultCacheSize = 256
	maxCacheSize     = 100000
	defaultRateLimit = 20
	defaultRateBurst = 40
)

var (
	environments = []string{EnvDevelopment, EnvStaging, EnvProduction}
	logLevels    = []string{"debug", "info", "warn", "error"}
	logFormats   = []string{"json", "text"}
)

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present; values
// already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := &envReader{}
	cfg := &Config{
		Port:           env.getInt("PORT", defaultPort),
		Env:            env.getString("ENV", EnvDevelopment),
		DatabasePath:   env.getString("DATABASE_PATH", defaultDBPath),
		APIKey:         env.getString("API_KEY", ""),
		LogLevel:       strings.ToLower(env.getString("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(env.getString("LOG_FORMAT", "text")),
		CacheSize:      env.getInt("CACHE_SIZE", defaultCacheSize),
		MetricsEnabled: env.getBool("METRICS_ENABLED", true),
		RateLimit:      env.getFloat("RATE_LIMIT", defaultRateLimit),
		RateBurst:      env.getInt("RATE_BURST", defaultRateBurst),
	}

	// Malformed numbers are reported together with the semantic violations.
	if err := errors.Join(append(env.errs, cfg.Validate())...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
// Every violation is reported, not only the first.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 0 and 65535, got %d", c.Port))
	}
	errs = append(errs,
		oneOf("ENV", c.Env, environments),
		oneOf("LOG_LEVEL", c.LogLevel, logLevels),
		oneOf("LOG_FORMAT", c.LogFormat, logFormats),
	)

	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}

	// Development may run without a key; the analyses routes are then open.
	if c.Env == EnvProduction && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}

	if c.CacheSize < 1 || c.CacheSize > maxCacheSize {
		errs = append(errs, fmt.Errorf("CACHE_SIZE must be between 1 and %d, got %d", maxCacheSize, c.CacheSize))
	}

	if c.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT must not be negative, got %g", c.RateLimit))
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		errs = append(errs, fmt.Errorf("RATE_BURST must be at least 1 when rate limiting, got %d", c.RateBurst))
	}

	return errors.Join(errs...)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func oneOf(name, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s must be one of: %s; got %q", name, strings.Join(allowed, ", "), value)
}

// envReader reads typed environment variables, remembering values that are
// set but cannot be parsed instead of silently using the default.
type envReader struct {
	errs []error
}

func (r *envReader) getString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (r *envReader) getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s must be an integer, got %q", key, value))
		return defaultValue
	}
	return n
}

func (r *envReader) getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s must be a boolean, got %q", key, value))
		return defaultValue
	}
	return b
}

func (r *envReader) getFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s must be a number, got %q", key, value))
		return defaultValue
	}
	return f
}
