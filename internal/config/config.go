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
	Server    ServerConfig
	Database  DatabaseConfig
	Lookup    LookupConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `env:"DATABASE_DSN" envDefault:"host=localhost user=postgres password=postgres dbname=baggage port=5432 sslmode=disable"`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" envDefault:"30m"`
	ConnectAttempts int           `env:"DATABASE_CONNECT_ATTEMPTS" envDefault:"5"`
	ConnectDelay    time.Duration `env:"DATABASE_CONNECT_DELAY" envDefault:"500ms"`
	ConnectMaxDelay time.Duration `env:"DATABASE_CONNECT_MAX_DELAY" envDefault:"10s"`
	QueryTimeout    time.Duration `env:"DATABASE_QUERY_TIMEOUT" envDefault:"5s"`
	SlowQuery       time.Duration `env:"DATABASE_SLOW_QUERY" envDefault:"500ms"`
}

// LookupConfig holds the default time window of the loading records view.
type LookupConfig struct {
	PastHours   int `env:"LOOKUP_PAST_HOURS" envDefault:"24"`
	FutureHours int `env:"LOOKUP_FUTURE_HOURS" envDefault:"24"`
}

// Past returns the lookback duration.
func (l LookupConfig) Past() time.Duration {
	return time.Duration(l.PastHours) * time.Hour
}

// Future returns the look-ahead duration.
func (l LookupConfig) Future() time.Duration {
	return time.Duration(l.FutureHours) * time.Hour
}

// CORSConfig holds cross-origin settings for the dashboard.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
}

// RateLimitConfig holds per-client rate limiting settings.
type RateLimitConfig struct {
	RPS       float64       `env:"RATE_LIMIT_RPS" envDefault:"20"`
	Burst     int           `env:"RATE_LIMIT_BURST" envDefault:"40"`
	ExpiresIn time.Duration `env:"RATE_LIMIT_EXPIRES_IN" envDefault:"3m"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Format      string `env:"LOG_FORMAT" envDefault:"json"`
	Caller      bool   `env:"LOG_CALLER" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"special-baggage"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
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
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"DATABASE_CONN_MAX_LIFETIME", cfg.Database.ConnMaxLifetime},
		{"DATABASE_QUERY_TIMEOUT", cfg.Database.QueryTimeout},
		{"DATABASE_SLOW_QUERY", cfg.Database.SlowQuery},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	if cfg.Database.DSN == "" {
		return fmt.Errorf("DATABASE_DSN is required")
	}
	if cfg.Database.MaxOpenConns < 1 {
		return fmt.Errorf("DATABASE_MAX_OPEN_CONNS must be at least 1, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns < 0 || cfg.Database.MaxIdleConns > cfg.Database.MaxOpenConns {
		return fmt.Errorf("DATABASE_MAX_IDLE_CONNS must be between 0 and DATABASE_MAX_OPEN_CONNS (%d), got %d",
			cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	}
	if cfg.Database.ConnectAttempts < 1 {
		return fmt.Errorf("DATABASE_CONNECT_ATTEMPTS must be at least 1, got %d", cfg.Database.ConnectAttempts)
	}
	if cfg.Database.ConnectDelay > cfg.Database.ConnectMaxDelay {
		return fmt.Errorf("DATABASE_CONNECT_DELAY must not exceed DATABASE_CONNECT_MAX_DELAY")
	}

	// The query timeout must leave room to write the response.
	if cfg.Database.QueryTimeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("DATABASE_QUERY_TIMEOUT (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Database.QueryTimeout, cfg.Server.WriteTimeout)
	}

	if cfg.Lookup.PastHours < 0 || cfg.Lookup.FutureHours < 0 {
		return fmt.Errorf("LOOKUP_PAST_HOURS and LOOKUP_FUTURE_HOURS must not be negative")
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}

	if cfg.RateLimit.RPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	if cfg.RateLimit.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", cfg.RateLimit.Burst)
	}
	if cfg.RateLimit.ExpiresIn <= 0 {
		return fmt.Errorf("RATE_LIMIT_EXPIRES_IN must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

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
