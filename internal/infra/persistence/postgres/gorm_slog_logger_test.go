package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"supermall/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingGormLogger(cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), &buf
}

func TestGormSlogLogger_SlowThresholdFromConfig(t *testing.T) {
	cfg := &config.Config{Postgres: &config.PostgresConfig{SlowQueryThreshold: time.Millisecond}}
	l, buf := newCapturingGormLogger(cfg)

	begin := time.Now().Add(-10 * time.Millisecond)
	l.Trace(context.Background(), begin, func() (string, int64) { return "SELECT 1", 1 }, nil)

	assert.Contains(t, buf.String(), "slow query")
	assert.Contains(t, buf.String(), "threshold=1ms")
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sql := func() (string, int64) { return "SELECT * FROM shops", 3 }

	testCases := []struct {
		name    string
		debug   bool
		err     error
		want    string
		wantNot bool
	}{
		{name: "error is logged", err: errors.New("deadlock"), want: "query failed"},
		{name: "record not found is ignored", err: gorm.ErrRecordNotFound, wantNot: true},
		{name: "fast query hidden at warn", wantNot: true},
		{name: "fast query shown in debug", debug: true, want: "msg=query"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Env.Debug = tc.debug
			l, buf := newCapturingGormLogger(cfg)

			l.Trace(context.Background(), time.Now(), sql, tc.err)

			if tc.wantNot {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tc.want)
			assert.Contains(t, buf.String(), "component=gorm")
		})
	}
}

func TestGormSlogLogger_Silent(t *testing.T) {
	l, buf := newCapturingGormLogger(nil)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), func() (string, int64) { return "x", 0 }, errors.New("boom"))
	assert.Empty(t, buf.String())
}

func TestTruncateSQL(t *testing.T) {
	assert.Equal(t, "SELECT 1", truncateSQL("SELECT 1"))

	long := strings.Repeat("x", maxLoggedSQLLength+10)
	got := truncateSQL(long)
	assert.True(t, strings.HasPrefix(got, strings.Repeat("x", maxLoggedSQLLength)+"..."))
	assert.Contains(t, got, "(2058 bytes)")
}
