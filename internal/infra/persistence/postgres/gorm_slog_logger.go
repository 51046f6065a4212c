package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"supermall/config"
	"supermall/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultSlowQueryThreshold = 200 * time.Millisecond
	maxLoggedSQLLength        = 2048
)

// gormSlogLogger routes GORM's query log into slog. Record-not-found is expected for lookups and never logged.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		logger:        base.With(slog.String("component", "gorm")),
		level:         logger.Warn,
		slowThreshold: defaultSlowQueryThreshold,
	}
	if cfg == nil {
		return l
	}

	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Postgres != nil && cfg.Postgres.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Postgres.SlowQueryThreshold
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < min {
		return
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf(msg, args...))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(queryAttrs(fc, elapsed), slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(queryAttrs(fc, elapsed), slog.Duration("threshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "slow query", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "query", queryAttrs(fc, elapsed)...)
	}
}

func queryAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", truncateSQL(sql)),
	}
}

// truncateSQL caps statements such as bulk offer links so one query cannot flood the log.
func truncateSQL(sql string) string {
	if len(sql) <= maxLoggedSQLLength {
		return sql
	}

	return fmt.Sprintf("%s... (%d bytes)", sql[:maxLoggedSQLLength], len(sql))
}
