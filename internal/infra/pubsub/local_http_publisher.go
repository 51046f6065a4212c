package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"supermall/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/session-events"
	localPushTimeout  = 10 * time.Second
)

// localHTTPPublisher posts push envelopes straight to the session worker, standing in for a Pub/Sub push subscription.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.SessionEventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
		now:      time.Now,
	}
}

func (p *localHTTPPublisher) PublishSessionEvent(ctx context.Context, event *service.SessionEvent) error {
	data, attrs, err := encodeEvent(event)
	if err != nil {
		return err
	}

	envelope := PushEnvelope{
		Message: PushMessage{
			Data:        data,
			Attributes:  attrs,
			MessageID:   uuid.NewString(),
			PublishTime: p.now().UTC(),
		},
		Subscription: localSubscription,
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.Wrap(err, "marshal push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push to %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push to %s: status %d", p.endpoint, resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Session event pushed",
		slog.String("message_id", envelope.Message.MessageID),
		slog.String("type", string(event.Type)),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
