// Package api assembles the public HTTP API server.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"supermall/config"
	"supermall/internal/delivery"
	apimiddleware "supermall/internal/delivery/api/middleware"
	"supermall/internal/delivery/api/router"
	"supermall/internal/delivery/api/validator"
	"supermall/internal/delivery/middleware"
	"supermall/internal/domain/lifecycle"
	"supermall/internal/errors"
	"supermall/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	HTTPMetrics  *metrics.HTTPMetrics
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger, params.HTTPMetrics)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		echo:   e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho builds the echo instance with the middleware chain but no routes.
// Order matters: recover wraps everything and the request ID must exist before the access log.
func newEcho(cfg *config.Config, logger *slog.Logger, httpMetrics *metrics.HTTPMetrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		middleware.NewMetricsMiddleware(httpMetrics).Handle,
		echomiddleware.CORSWithConfig(corsConfig(cfg.HTTP.CORSAllowOrigins)),
		// Image uploads are bounded by blob.maxUploadSize in the product handler.
		echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
			Limit:   cfg.HTTP.MaxRequestBodySize,
			Skipper: isMultipart,
		}),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func corsConfig(origins []string) echomiddleware.CORSConfig {
	cors := echomiddleware.DefaultCORSConfig
	if len(origins) > 0 {
		cors.AllowOrigins = origins
	}
	cors.AllowHeaders = []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID}
	cors.ExposeHeaders = []string{echo.HeaderXRequestID}

	return cors
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))

	h2 := &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout}
	if err := s.echo.StartH2CServer(hostPort, h2); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
