package audit

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
)

// ReportFailures logs every failure the sink reports until the app stops.
func ReportFailures(lc fx.Lifecycle, sink *Sink, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				for {
					select {
					case <-ctx.Done():
						return
					case failure := <-sink.Failures():
						logger.Error("Audit record lost",
							slog.String("action", failure.Record.Action),
							slog.String("user_id", failure.Record.UserID),
							slog.Any("error", failure.Err),
						)
					}
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}
