package middleware

import (
	"log/slog"
	"time"

	"supermall/config"
	deliverycontext "supermall/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access-log line per request. Outside debug mode only server failures are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := statusOf(c, err)
		if level := accessLevel(status); m.debug || level == slog.LevelError {
			m.logRequest(c, start, status, level, err)
		}

		return err
	}
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, level slog.Level, err error) {
	req := c.Request()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if session := deliverycontext.GetSession(c); session != nil {
		attrs = append(attrs, slog.String("user_id", session.UserID))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	// The request ID middleware stores a logger already tagged with request_id.
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP request", attrs...)
}
