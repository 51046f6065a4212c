package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/service"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// fakeVerifier stands in for the Admin Auth client.
type fakeVerifier struct {
	token      *fbauth.Token
	err        error
	checked    bool
	revokedUID string
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, _ string) (*fbauth.Token, error) {
	return f.token, f.err
}

func (f *fakeVerifier) VerifyIDTokenAndCheckRevoked(_ context.Context, _ string) (*fbauth.Token, error) {
	f.checked = true

	return f.token, f.err
}

func (f *fakeVerifier) RevokeRefreshTokens(_ context.Context, uid string) error {
	f.revokedUID = uid

	return f.err
}

// newIdentityToolkitServer emulates the relying party endpoints.
func newIdentityToolkitServer(t *testing.T) *httptest.Server {
	t.Helper()

	writeError := func(w http.ResponseWriter, message string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": http.StatusBadRequest, "message": message},
		})
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch r.URL.Path {
		case "/signupNewUser":
			switch {
			case body.Email == "taken@example.com":
				writeError(w, "EMAIL_EXISTS")

				return
			case len(body.Password) < 6:
				writeError(w, "WEAK_PASSWORD : Password should be at least 6 characters")

				return
			}
		case "/verifyPassword":
			if body.Password != "secret1" {
				writeError(w, "INVALID_LOGIN_CREDENTIALS")

				return
			}
		default:
			writeError(w, "OPERATION_NOT_ALLOWED")

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"localId":      "uid-1",
			"email":        body.Email,
			"idToken":      "id-token",
			"refreshToken": "refresh-token",
		})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newTestRelyingParty(t *testing.T, endpoint string) *identitytoolkit.RelyingpartyService {
	t.Helper()

	svc, err := identitytoolkit.NewService(context.Background(),
		option.WithAPIKey("test-key"),
		option.WithEndpoint(endpoint+"/"),
	)
	require.NoError(t, err)

	return svc.Relyingparty
}

func TestFirebaseProvider_SignUp(t *testing.T) {
	srv := newIdentityToolkitServer(t)
	provider := newFirebaseProvider(newTestRelyingParty(t, srv.URL), &fakeVerifier{}, false)
	ctx := context.Background()

	session, err := provider.SignUp(ctx, "new@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", session.UserID)
	assert.Equal(t, "new@example.com", session.Email)
	assert.Equal(t, "id-token", session.IDToken)
	assert.Equal(t, "refresh-token", session.RefreshToken)

	_, err = provider.SignUp(ctx, "taken@example.com", "secret1")
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))

	_, err = provider.SignUp(ctx, "new@example.com", "123")
	assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
}

func TestFirebaseProvider_SignIn(t *testing.T) {
	srv := newIdentityToolkitServer(t)
	provider := newFirebaseProvider(newTestRelyingParty(t, srv.URL), &fakeVerifier{}, false)
	ctx := context.Background()

	session, err := provider.SignIn(ctx, "a@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", session.UserID)

	_, err = provider.SignIn(ctx, "a@example.com", "wrong")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestFirebaseProvider_Unreachable(t *testing.T) {
	srv := newIdentityToolkitServer(t)
	relyingParty := newTestRelyingParty(t, srv.URL)
	srv.Close()

	provider := newFirebaseProvider(relyingParty, &fakeVerifier{}, false)

	_, err := provider.SignIn(context.Background(), "a@example.com", "secret1")
	assert.True(t, errors.Is(err, service.ErrIdentityUnreachable))
}

func TestFirebaseProvider_VerifyToken(t *testing.T) {
	verifier := &fakeVerifier{token: &fbauth.Token{UID: "uid-1", Claims: map[string]any{"email": "a@example.com"}}}
	provider := newFirebaseProvider(nil, verifier, true)

	session, err := provider.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.True(t, verifier.checked)
	assert.Equal(t, "uid-1", session.UserID)
	assert.Equal(t, "a@example.com", session.Email)
	assert.Equal(t, "id-token", session.IDToken)
}

func TestFirebaseProvider_VerifyTokenRejected(t *testing.T) {
	provider := newFirebaseProvider(nil, &fakeVerifier{err: errors.New("ID token has expired")}, false)

	_, err := provider.VerifyToken(context.Background(), "id-token")
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrIdentityUnreachable))
	assert.Empty(t, domainerrors.CodeOf(err))
}

func TestFirebaseProvider_RevokeSessions(t *testing.T) {
	verifier := &fakeVerifier{}
	provider := newFirebaseProvider(nil, verifier, false)

	require.NoError(t, provider.RevokeSessions(context.Background(), "uid-1"))
	assert.Equal(t, "uid-1", verifier.revokedUID)
}

func TestMapProviderError(t *testing.T) {
	testCases := []struct {
		name     string
		message  string
		wantCode string
	}{
		{name: "email exists", message: "EMAIL_EXISTS", wantCode: "EMAIL_ALREADY_EXISTS"},
		{name: "unknown email", message: "EMAIL_NOT_FOUND", wantCode: "INVALID_CREDENTIALS"},
		{name: "wrong password", message: "INVALID_PASSWORD", wantCode: "INVALID_CREDENTIALS"},
		{name: "weak password with hint", message: "WEAK_PASSWORD : Password should be at least 6 characters", wantCode: "WEAK_PASSWORD"},
		{name: "anything else", message: "TOO_MANY_ATTEMPTS_TRY_LATER", wantCode: "IDENTITY_PROVIDER_FAILED"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := mapProviderError(&googleapi.Error{Code: http.StatusBadRequest, Message: tc.message})
			assert.Equal(t, tc.wantCode, domainerrors.CodeOf(err))
		})
	}
}
