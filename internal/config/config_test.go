package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.DatabasePath != "./data/calendrical.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "./data/calendrical.db")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
	if cfg.CacheSize != 256 {
		t.Errorf("CacheSize = %d, want 256", cfg.CacheSize)
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled = false, want true")
	}
	if cfg.RateLimit != 20 || cfg.RateBurst != 40 {
		t.Errorf("RateLimit, RateBurst = %g, %d, want 20, 40", cfg.RateLimit, cfg.RateBurst)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()
	defer clearEnv()

	os.Setenv("PORT", "3000")
	os.Setenv("ENV", "production")
	os.Setenv("DATABASE_PATH", "/data/test.db")
	os.Setenv("API_KEY", "secret-key-123")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("CACHE_SIZE", "1024")
	os.Setenv("METRICS_ENABLED", "false")
	os.Setenv("RATE_LIMIT", "0.5")
	os.Setenv("RATE_BURST", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.DatabasePath != "/data/test.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/data/test.db")
	}
	if cfg.APIKey != "secret-key-123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "secret-key-123")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.CacheSize != 1024 {
		t.Errorf("CacheSize = %d, want 1024", cfg.CacheSize)
	}
	if cfg.MetricsEnabled {
		t.Error("MetricsEnabled = true, want false")
	}
	if cfg.RateLimit != 0.5 || cfg.RateBurst != 3 {
		t.Errorf("RateLimit, RateBurst = %g, %d, want 0.5, 3", cfg.RateLimit, cfg.RateBurst)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"cache size zero", map[string]string{"CACHE_SIZE": "0"}, "CACHE_SIZE must be between"},
		{"malformed port", map[string]string{"PORT": "eighty"}, "PORT must be an integer"},
		{"malformed bool", map[string]string{"METRICS_ENABLED": "sometimes"}, "METRICS_ENABLED must be a boolean"},
		{"malformed rate", map[string]string{"RATE_LIMIT": "fast"}, "RATE_LIMIT must be a number"},
		{"production without key", map[string]string{"ENV": "production"}, "API_KEY is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv()
			defer clearEnv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad_ReportsEveryViolation(t *testing.T) {
	clearEnv()
	defer clearEnv()

	os.Setenv("PORT", "x")
	os.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded, want error")
	}
	for _, want := range []string{"PORT", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Load() error = %q, want it to mention %s", err, want)
		}
	}
}

func TestLoad_NormalizesCase(t *testing.T) {
	clearEnv()
	defer clearEnv()

	os.Setenv("LOG_LEVEL", "DEBUG")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

// validConfig returns a development config that passes validation.
func validConfig() Config {
	return Config{
		Port:           8080,
		Env:            EnvDevelopment,
		DatabasePath:   "./data/test.db",
		LogLevel:       "info",
		LogFormat:      "text",
		CacheSize:      256,
		MetricsEnabled: true,
		RateLimit:      20,
		RateBurst:      40,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid development config", mutate: func(c *Config) {}},
		{name: "valid production config", mutate: func(c *Config) {
			c.Env = EnvProduction
			c.APIKey = "required-in-prod"
			c.LogFormat = "json"
		}},
		{name: "production requires API key", mutate: func(c *Config) { c.Env = EnvProduction }, wantErr: true},
		{name: "invalid port - negative", mutate: func(c *Config) { c.Port = -1 }, wantErr: true},
		{name: "port zero picks a free port", mutate: func(c *Config) { c.Port = 0 }},
		{name: "invalid port - too high", mutate: func(c *Config) { c.Port = 70000 }, wantErr: true},
		{name: "invalid environment", mutate: func(c *Config) { c.Env = "invalid" }, wantErr: true},
		{name: "invalid log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: true},
		{name: "invalid log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
		{name: "empty database path", mutate: func(c *Config) { c.DatabasePath = "" }, wantErr: true},
		{name: "cache too small", mutate: func(c *Config) { c.CacheSize = 0 }, wantErr: true},
		{name: "cache too large", mutate: func(c *Config) { c.CacheSize = 100001 }, wantErr: true},
		{name: "metrics disabled", mutate: func(c *Config) { c.MetricsEnabled = false }},
		{name: "negative rate limit", mutate: func(c *Config) { c.RateLimit = -1 }, wantErr: true},
		{name: "rate limit without burst", mutate: func(c *Config) { c.RateBurst = 0 }, wantErr: true},
		{name: "rate limiting disabled", mutate: func(c *Config) { c.RateLimit, c.RateBurst = 0, 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}

	cfg.Env = EnvProduction
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{Env: EnvProduction}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}

	cfg.Env = EnvDevelopment
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}
}

// clearEnv removes all config-related environment variables
func clearEnv() {
	vars := []string{
		"PORT", "ENV", "DATABASE_PATH", "API_KEY",
		"LOG_LEVEL", "LOG_FORMAT", "CACHE_SIZE", "METRICS_ENABLED",
		"RATE_LIMIT", "RATE_BURST",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
