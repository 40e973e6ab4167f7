// Package postgres provides GORM-backed repositories over the baggage and
// flight tables in PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/baggage-tracking/special-baggage-service/internal/domain"
	"github.com/baggage-tracking/special-baggage-service/internal/infrastructure/retry"
)

// Config holds connection and pool settings.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectAttempts int
	SlowQuery       time.Duration

	// ConnectInitialDelay and ConnectMaxDelay override the backoff bounds
	// between connection attempts when positive.
	ConnectInitialDelay time.Duration
	ConnectMaxDelay     time.Duration
}

// SQLSTATE codes that no amount of waiting will fix.
var permanentConnectCodes = map[string]bool{
	"28000": true, // invalid_authorization_specification
	"28P01": true, // invalid_password
	"3D000": true, // invalid_catalog_name
}

// classifyConnectError marks authentication and unknown-database failures
// as permanent so startup fails fast instead of backing off.
func classifyConnectError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && permanentConnectCodes[pgErr.Code] {
		return retry.NewPermanent(err)
	}
	return err
}

// Open connects to PostgreSQL, retrying while the database is unreachable.
func Open(ctx context.Context, cfg Config, log zerolog.Logger) (*gorm.DB, error) {
	return OpenDialector(ctx, postgres.Open(cfg.DSN), cfg, log)
}

// OpenDialector is Open with an explicit dialector.
func OpenDialector(ctx context.Context, dialector gorm.Dialector, cfg Config, log zerolog.Logger) (*gorm.DB, error) {
	retryCfg := retry.ConnectConfig.
		WithOnRetry(func(attempt int, err error, wait time.Duration) {
			log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", wait).Msg("Database not reachable, retrying")
		}).
		WithRetryIf(retry.SkipPermanent)
	if cfg.ConnectAttempts > 0 {
		retryCfg = retryCfg.WithMaxAttempts(cfg.ConnectAttempts)
	}
	if cfg.ConnectInitialDelay > 0 {
		retryCfg = retryCfg.WithInitialDelay(cfg.ConnectInitialDelay)
	}
	if cfg.ConnectMaxDelay > 0 {
		retryCfg = retryCfg.WithMaxDelay(cfg.ConnectMaxDelay)
	}

	db, err := retry.DoWithResult(ctx, func() (*gorm.DB, error) {
		db, err := gorm.Open(dialector, &gorm.Config{
			Logger:                 NewGormLogger(log, cfg.SlowQuery),
			SkipDefaultTransaction: true,
		})
		return db, classifyConnectError(err)
	}, retryCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthChecker implements domain.HealthChecker by pinging the database.
type HealthChecker struct {
	db *gorm.DB
}

// NewHealthChecker creates a HealthChecker for db.
func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Ensure HealthChecker implements domain.HealthChecker.
var _ domain.HealthChecker = (*HealthChecker)(nil)

// Ping verifies the database is reachable.
func (h *HealthChecker) Ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return domain.NewStoreError(domain.OperationPing, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return domain.NewStoreError(domain.OperationPing, err)
	}
	return nil
}
