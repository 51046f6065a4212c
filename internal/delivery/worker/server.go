// Package worker serves the Pub/Sub push endpoint of the session event consumer.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"supermall/config"
	"supermall/internal/delivery"
	"supermall/internal/delivery/api/router/handler"
	"supermall/internal/delivery/middleware"
	workerhandler "supermall/internal/delivery/worker/handler"
	"supermall/internal/domain/lifecycle"
	"supermall/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type workerServer struct {
	port   int
	logger *slog.Logger
	echo   *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics
	PushHandler *workerhandler.PushHandler
}

// NewServer builds the worker server listening on worker.port.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		port:   params.Cfg.Worker.Port,
		logger: params.Logger,
		echo:   newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		middleware.NewMetricsMiddleware(params.HTTPMetrics).Handle,
	)

	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(params.Registry)))
	e.POST("/push", params.PushHandler.HandlePush)

	return e
}

func (s *workerServer) Serve(context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting session worker", slog.String("host_port", hostPort))

	if err := s.echo.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down session worker")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
