// Command sessionworker consumes the session events the API publishes on sign-in and sign-out.
package main

import (
	"context"
	"log/slog"

	"supermall/config"
	"supermall/internal/delivery"
	"supermall/internal/delivery/worker"
	"supermall/internal/delivery/worker/handler"
	logs "supermall/internal/infra/log"
	"supermall/internal/infra/metrics"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			metrics.NewRegistry,
			metrics.Registerer,
			metrics.NewHTTPMetrics,
			handler.NewPushHandler,
			worker.NewServer,
		),
		fx.Invoke(run),
	).Run()
}

// run serves in the background and shuts the app down with exit code 1 if the listener fails.
func run(ctx context.Context, lc fx.Lifecycle, shutdowner fx.Shutdowner, server delivery.Delivery, logger *slog.Logger) {
	lc.Append(fx.StartHook(func() {
		go func() {
			if err := server.Serve(ctx); err != nil {
				logger.Error("Session worker stopped", slog.Any("error", err))
				_ = shutdowner.Shutdown(fx.ExitCode(1))
			}
		}()
	}))
}
