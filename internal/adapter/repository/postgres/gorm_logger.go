package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes GORM logs through zerolog.
type GormLogger struct {
	log       zerolog.Logger
	level     gormlogger.LogLevel
	slowQuery time.Duration
}

// NewGormLogger creates a GormLogger. Queries slower than slowQuery are
// logged at warn level; every query is logged at debug level.
func NewGormLogger(log zerolog.Logger, slowQuery time.Duration) *GormLogger {
	return &GormLogger{
		log:       log.With().Str("component", "postgres").Logger(),
		level:     gormlogger.Warn,
		slowQuery: slowQuery,
	}
}

// Ensure GormLogger implements gormlogger.Interface.
var _ gormlogger.Interface = (*GormLogger)(nil)

// LogMode returns a copy of the logger with the given level.
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.Info().Msg(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.Warn().Msg(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.log.Error().Msg(fmt.Sprintf(msg, args...))
	}
}

// Trace logs a finished query.
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		l.log.Error().Err(err).Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("Query failed")
	case l.slowQuery > 0 && elapsed > l.slowQuery && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.log.Warn().Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("Slow query")
	default:
		if e := l.log.Debug(); e.Enabled() {
			sql, rows := fc()
			e.Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("Query")
		}
	}
}
