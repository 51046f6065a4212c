package main

import (
	"context"
	"log/slog"
	"os"

	"supermall/config"
	"supermall/internal/delivery"
	"supermall/internal/delivery/api"
	"supermall/internal/delivery/api/middleware"
	"supermall/internal/delivery/api/router/handler"
	"supermall/internal/domain/service"
	"supermall/internal/infra/audit"
	"supermall/internal/infra/blob"
	"supermall/internal/infra/firebase"
	"supermall/internal/infra/identity"
	logs "supermall/internal/infra/log"
	"supermall/internal/infra/metrics"
	"supermall/internal/infra/persistence"
	"supermall/internal/infra/pubsub"
	"supermall/internal/infra/qrcode"
	"supermall/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			audit.ReportFailures,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.New,
		metrics.NewRegistry,
		metrics.Registerer,
		metrics.NewHTTPMetrics,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				blob.NewStorage,
				fx.As(new(service.BlobStorage)),
				fx.As(new(service.BlobReader)),
			),
			identity.NewIdentityProvider,
			pubsub.NewEventPublisher,
			newQRCodeService,
			fx.Annotate(
				audit.NewSink,
				fx.As(fx.Self()),
				fx.As(new(service.AuditSink)),
			),
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuditService,
			impl.NewIdentityService,
			impl.NewShopService,
			impl.NewProductService,
			impl.NewOfferService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewShopHandler,
			handler.NewProductHandler,
			handler.NewOfferHandler,
			handler.NewMediaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, srv := range params.Deliveries {
		go func() {
			if err := srv.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
