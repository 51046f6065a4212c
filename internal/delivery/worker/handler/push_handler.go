// Package handler consumes session events pushed by Pub/Sub.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"supermall/config"
	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/domain/constants"
	"supermall/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// tokenValidator checks the OIDC token Pub/Sub attaches to authenticated pushes
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler acknowledges session events and counts them by type.
// Malformed messages get 400 so the subscription dead-letters them instead of retrying forever.
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	validate       tokenValidator
	received       *prometheus.CounterVec
	logger         *slog.Logger
}

type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Registerer prometheus.Registerer
	Logger     *slog.Logger
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	received := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_events_received_total",
		Help: "Session events consumed from the push subscription.",
	}, []string{"type"})
	params.Registerer.MustRegister(received)

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: requiresPushAuth(params.Config),
		pushAudience:   audience,
		validate:       idtoken.Validate,
		received:       received,
		logger:         params.Logger,
	}
}

// requiresPushAuth is true only for real Google pushes; the local publisher sends no token.
func requiresPushAuth(cfg *config.Config) bool {
	return cfg.PubSub != nil &&
		cfg.PubSub.Provider == constants.PubSubProviderGoogle &&
		cfg.Env.Env != constants.EnvLocal
}

// HandlePush handles POST /push
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyPushAuth {
		if err := h.verifyToken(c); err != nil {
			logger.WarnContext(ctx, "Rejected push", slog.String("error", err.Error()))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		logger.ErrorContext(ctx, "Unreadable push body", slog.String("error", err.Error()))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pubsub.DecodeSessionEvent(&envelope.Message)
	if err != nil {
		logger.ErrorContext(ctx, "Invalid session event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.String("error", err.Error()),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Prefer the ID of the API request that produced the event over the push request's own.
	if event.RequestID != "" {
		logger = h.logger.With(slog.String("request_id", event.RequestID))
	}

	h.received.WithLabelValues(string(event.Type)).Inc()
	logger.InfoContext(ctx, "Session event received",
		slog.String("message_id", envelope.Message.MessageID),
		slog.String("type", string(event.Type)),
		slog.String("user_id", event.UserID),
		slog.Time("occurred_at", event.OccurredAt),
		slog.Duration("delivery_lag", envelope.Message.PublishTime.Sub(event.OccurredAt)),
	)

	return c.NoContent(http.StatusNoContent)
}

// verifyToken validates the push OIDC token against the configured audience,
// falling back to this endpoint's public URL.
// See https://cloud.google.com/pubsub/docs/authenticate-push-subscriptions
func (h *PushHandler) verifyToken(c echo.Context) error {
	req := c.Request()
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	audience := h.pushAudience
	if audience == "" {
		// Scheme honours X-Forwarded-Proto set by a TLS-terminating proxy.
		audience = c.Scheme() + "://" + req.Host + req.URL.Path
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "validate token")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("unexpected issuer %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("service account email not verified")
	}

	return nil
}
