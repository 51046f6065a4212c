// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/service"
	"supermall/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const msgCredentialsRequired = "Email and password are required"

// identityService implements the IdentityUsecase interface.
type identityService struct {
	provider  service.IdentityProvider
	publisher service.SessionEventPublisher
	audit     service.AuditLogger
	logger    *slog.Logger
	now       func() time.Time
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	Provider  service.IdentityProvider
	Publisher service.SessionEventPublisher
	Audit     service.AuditLogger
	Logger    *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		provider:  params.Provider,
		publisher: params.Publisher,
		audit:     params.Audit,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers an account with the identity provider.
func (srv *identityService) SignUp(ctx context.Context, email, password string) (*entity.Session, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		err := domainerrors.ErrValidationFailed.WithMessage(msgCredentialsRequired)
		auditFailure(ctx, srv.audit, nil, entity.ActionSignupError, err, map[string]any{"email": email})

		return nil, err
	}

	session, err := srv.provider.SignUp(ctx, email, password)
	if err != nil {
		mapped := mapIdentityError(err)
		srv.log(ctx).Warn("Signup failed", slog.String("email", email), slog.Any("error", err))
		auditFailure(ctx, srv.audit, nil, entity.ActionSignupError, mapped, map[string]any{"email": email})

		return nil, mapped
	}

	srv.log(ctx).Info("User signed up", slog.String("user_id", session.UserID))
	srv.audit.LogAction(ctx, session, entity.ActionSignup, map[string]any{"email": email})
	srv.publish(ctx, entity.SessionSignedIn, session)

	return session, nil
}

// Login verifies email and password with the identity provider.
func (srv *identityService) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		err := domainerrors.ErrValidationFailed.WithMessage(msgCredentialsRequired)
		auditFailure(ctx, srv.audit, nil, entity.ActionLoginError, err, map[string]any{"email": email})

		return nil, err
	}

	session, err := srv.provider.SignIn(ctx, email, password)
	if err != nil {
		mapped := mapIdentityError(err)
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))
		auditFailure(ctx, srv.audit, nil, entity.ActionLoginError, mapped, map[string]any{"email": email})

		return nil, mapped
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", session.UserID))
	srv.audit.LogAction(ctx, session, entity.ActionLogin, map[string]any{"email": email})
	srv.publish(ctx, entity.SessionSignedIn, session)

	return session, nil
}

// Logout revokes the refresh tokens of the session user.
func (srv *identityService) Logout(ctx context.Context, session *entity.Session) error {
	if err := requireSession(session); err != nil {
		auditFailure(ctx, srv.audit, session, entity.ActionLogoutError, err, nil)

		return err
	}

	if err := srv.provider.RevokeSessions(ctx, session.UserID); err != nil {
		mapped := mapIdentityError(err)
		srv.log(ctx).Warn("Logout failed", slog.String("user_id", session.UserID), slog.Any("error", err))
		auditFailure(ctx, srv.audit, session, entity.ActionLogoutError, mapped, nil)

		return mapped
	}

	srv.log(ctx).Info("User logged out", slog.String("user_id", session.UserID))
	srv.audit.LogAction(ctx, session, entity.ActionLogout, map[string]any{"userId": session.UserID})
	srv.publish(ctx, entity.SessionSignedOut, session)

	return nil
}

// Authenticate resolves a bearer ID token.
func (srv *identityService) Authenticate(ctx context.Context, idToken string) (*entity.Session, error) {
	if idToken == "" {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	session, err := srv.provider.VerifyToken(ctx, idToken)
	if err != nil {
		if errors.Is(err, service.ErrIdentityUnreachable) {
			return nil, domainerrors.ErrNetwork
		}

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		srv.log(ctx).Debug("Token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken
	}

	return session, nil
}

// publish broadcasts a session transition. Failures never fail the identity call.
func (srv *identityService) publish(ctx context.Context, eventType entity.SessionEventType, session *entity.Session) {
	event := &service.SessionEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     session.UserID,
		Email:      session.Email,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishSessionEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish session event",
			slog.Any("error", err),
			slog.String("type", string(eventType)),
			slog.String("user_id", session.UserID),
		)
	}
}

// mapIdentityError passes provider errors through, except transport failures which become NETWORK_ERROR.
func mapIdentityError(err error) error {
	if errors.Is(err, service.ErrIdentityUnreachable) {
		return domainerrors.ErrNetwork
	}

	return err
}
