// Package pubsub publishes session events to Google Pub/Sub or a local push endpoint.
package pubsub

import (
	"context"
	"log/slog"

	"supermall/config"
	"supermall/internal/domain/constants"
	"supermall/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for SessionEventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.SessionEventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.SessionEventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Session events disabled")

		return discardPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Publishing session events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Publishing session events to Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// discardPublisher drops events when no provider is configured.
type discardPublisher struct {
	logger *slog.Logger
}

func (p discardPublisher) PublishSessionEvent(ctx context.Context, event *service.SessionEvent) error {
	p.logger.DebugContext(ctx, "Session event discarded",
		slog.String("type", string(event.Type)),
		slog.String("user_id", event.UserID),
	)

	return nil
}

func (discardPublisher) Close() error {
	return nil
}
