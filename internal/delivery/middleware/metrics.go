package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/errors"
	"supermall/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route
type MetricsMiddleware struct {
	metrics *metrics.HTTPMetrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.HTTPMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes the request after the handler returns
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		m.metrics.Observe(
			c.Request().Method,
			c.Path(),
			strconv.Itoa(statusOf(c, err)),
			time.Since(start).Seconds(),
		)

		return err
	}
}

// statusOf predicts the status the error handler will write for err.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
