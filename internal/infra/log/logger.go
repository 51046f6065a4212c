// Package logs builds the process-wide slog logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"supermall/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the logger described by env.log, writing to stdout.
func New(params Params) (*slog.Logger, error) {
	return build(os.Stdout, params.Config)
}

// build tags every record with the service name and environment so API and worker logs can share a sink.
func build(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	var attrs []slog.Attr
	if cfg.Env.ServiceName != "" {
		attrs = append(attrs, slog.String("service", cfg.Env.ServiceName))
	}
	if cfg.Env.Env != "" {
		attrs = append(attrs, slog.String("env", cfg.Env.Env))
	}

	return slog.New(handler.WithAttrs(attrs)), nil
}

// parseLogLevel maps env.log.level onto slog; empty means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
