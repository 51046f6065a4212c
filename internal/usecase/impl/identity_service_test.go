package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/service"
	mockService "supermall/internal/mocks/service"
	"supermall/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service   usecase.IdentityUsecase
	provider  *mockService.MockIdentityProvider
	publisher *mockService.MockSessionEventPublisher
	audit     *mockService.MockAuditLogger
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	provider := mockService.NewMockIdentityProvider(t)
	publisher := mockService.NewMockSessionEventPublisher(t)
	audit := mockService.NewMockAuditLogger(t)

	svc := NewIdentityService(IdentityServiceParams{
		Provider:  provider,
		Publisher: publisher,
		Audit:     audit,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	svc.(*identityService).now = func() time.Time { return fixedNow }

	return identityServiceFixtures{
		service:   svc,
		provider:  provider,
		publisher: publisher,
		audit:     audit,
	}
}

func TestIdentityService_SignUp_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	session := &entity.Session{UserID: "u1", Email: "a@b.com", IDToken: "id-token"}

	fx.provider.EXPECT().SignUp(ctx, "a@b.com", "secret1").Return(session, nil)
	fx.audit.EXPECT().LogAction(ctx, session, entity.ActionSignup, map[string]any{"email": "a@b.com"}).Return()
	fx.publisher.EXPECT().
		PublishSessionEvent(ctx, &service.SessionEvent{
			Type:       entity.SessionSignedIn,
			UserID:     "u1",
			Email:      "a@b.com",
			OccurredAt: fixedNow,
		}).
		Return(nil)

	result, err := fx.service.SignUp(ctx, " a@b.com ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u1", result.UserID)
}

func TestIdentityService_SignUp_EmailExists(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	fx.provider.EXPECT().SignUp(ctx, "a@b.com", "secret1").Return(nil, domainerrors.ErrEmailAlreadyExists)
	fx.audit.EXPECT().
		LogAction(ctx, (*entity.Session)(nil), entity.ActionSignupError, map[string]any{
			"email": "a@b.com",
			"error": domainerrors.ErrEmailAlreadyExists.Message(),
		}).
		Return()

	_, err := fx.service.SignUp(ctx, "a@b.com", "secret1")
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
	fx.publisher.AssertNotCalled(t, "PublishSessionEvent", mock.Anything, mock.Anything)
}

func TestIdentityService_Login_MissingCredentials(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	fx.audit.EXPECT().
		LogAction(ctx, (*entity.Session)(nil), entity.ActionLoginError, map[string]any{
			"email": "",
			"error": msgCredentialsRequired,
		}).
		Return()

	_, err := fx.service.Login(ctx, "   ", "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", domainerrors.CodeOf(err))
	fx.provider.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
}

func TestIdentityService_Login_Unreachable(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	fx.provider.EXPECT().
		SignIn(ctx, "a@b.com", "pw").
		Return(nil, errors.Wrap(service.ErrIdentityUnreachable, "dial tcp"))
	fx.audit.EXPECT().LogAction(ctx, (*entity.Session)(nil), entity.ActionLoginError, mock.Anything).Return()

	_, err := fx.service.Login(ctx, "a@b.com", "pw")
	assert.True(t, errors.Is(err, domainerrors.ErrNetwork))
}

func TestIdentityService_Login_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	session := &entity.Session{UserID: "u1", Email: "a@b.com"}

	fx.provider.EXPECT().SignIn(ctx, "a@b.com", "pw").Return(session, nil)
	fx.audit.EXPECT().LogAction(ctx, session, entity.ActionLogin, mock.Anything).Return()
	fx.publisher.EXPECT().PublishSessionEvent(ctx, mock.Anything).Return(errors.New("topic not found"))

	result, err := fx.service.Login(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	assert.Same(t, session, result)
}

func TestIdentityService_Logout(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	session := &entity.Session{UserID: "u1", Email: "a@b.com"}

	fx.provider.EXPECT().RevokeSessions(ctx, "u1").Return(nil)
	fx.audit.EXPECT().LogAction(ctx, session, entity.ActionLogout, map[string]any{"userId": "u1"}).Return()
	fx.publisher.EXPECT().
		PublishSessionEvent(ctx, mock.MatchedBy(func(e *service.SessionEvent) bool {
			return e.Type == entity.SessionSignedOut && e.UserID == "u1"
		})).
		Return(nil)

	require.NoError(t, fx.service.Logout(ctx, session))
}

func TestIdentityService_Logout_WithoutSession(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	fx.audit.EXPECT().LogAction(ctx, (*entity.Session)(nil), entity.ActionLogoutError, mock.Anything).Return()

	err := fx.service.Logout(ctx, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
}

func TestIdentityService_Authenticate(t *testing.T) {
	testCases := []struct {
		name        string
		token       string
		providerErr error
		wantCode    string
	}{
		{name: "empty token", token: "", wantCode: "AUTHENTICATION_REQUIRED"},
		{name: "bad signature", token: "t", providerErr: errors.New("signature invalid"), wantCode: "INVALID_TOKEN"},
		{name: "unreachable", token: "t", providerErr: service.ErrIdentityUnreachable, wantCode: "NETWORK_ERROR"},
		{name: "app error passes through", token: "t", providerErr: domainerrors.ErrIdentityProviderFailed, wantCode: "IDENTITY_PROVIDER_FAILED"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestIdentityService(t)

			ctx := context.Background()
			if tc.token != "" {
				fx.provider.EXPECT().VerifyToken(ctx, tc.token).Return(nil, tc.providerErr)
			}

			_, err := fx.service.Authenticate(ctx, tc.token)
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, domainerrors.CodeOf(err))
		})
	}
}

func TestIdentityService_Authenticate_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	session := &entity.Session{UserID: "u1"}
	fx.provider.EXPECT().VerifyToken(ctx, "good").Return(session, nil)

	result, err := fx.service.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Same(t, session, result)
}
