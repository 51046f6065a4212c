package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	mockUsecase "supermall/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// newAuthTestEcho serves GET /required and GET /optional, echoing the session user id.
func newAuthTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockIdentityUsecase) {
	identity := mockUsecase.NewMockIdentityUsecase(t)
	m := NewAuthMiddleware(identity)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	whoami := func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetSession(c).UID())
	}
	e.GET("/required", whoami, m.RequireSession)
	e.GET("/optional", whoami, m.OptionalSession)

	return e, identity
}

func serve(e *echo.Echo, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequireSession(t *testing.T) {
	testCases := []struct {
		name          string
		authorization string
		verifyErr     error
		wantStatus    int
		wantBody      string
	}{
		{name: "valid token", authorization: "Bearer good", wantStatus: http.StatusOK, wantBody: "u1"},
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantBody: "AUTHENTICATION_REQUIRED"},
		{name: "not a bearer token", authorization: "Basic abc", wantStatus: http.StatusUnauthorized, wantBody: "INVALID_TOKEN"},
		{name: "empty bearer token", authorization: "Bearer   ", wantStatus: http.StatusUnauthorized, wantBody: "INVALID_TOKEN"},
		{name: "rejected token", authorization: "Bearer bad", verifyErr: domainerrors.ErrInvalidToken, wantStatus: http.StatusUnauthorized, wantBody: "INVALID_TOKEN"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, identity := newAuthTestEcho(t)

			switch tc.authorization {
			case "Bearer good":
				identity.EXPECT().Authenticate(mock.Anything, "good").Return(&entity.Session{UserID: "u1"}, nil)
			case "Bearer bad":
				identity.EXPECT().Authenticate(mock.Anything, "bad").Return(nil, tc.verifyErr)
			}

			rec := serve(e, "/required", tc.authorization)
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
		})
	}
}

func TestOptionalSession(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		e, _ := newAuthTestEcho(t)

		rec := serve(e, "/optional", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("signed in", func(t *testing.T) {
		e, identity := newAuthTestEcho(t)
		identity.EXPECT().Authenticate(mock.Anything, "good").Return(&entity.Session{UserID: "u1"}, nil)

		rec := serve(e, "/optional", "Bearer good")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u1", rec.Body.String())
	})

	t.Run("invalid token is still rejected", func(t *testing.T) {
		e, identity := newAuthTestEcho(t)
		identity.EXPECT().Authenticate(mock.Anything, "bad").Return(nil, domainerrors.ErrInvalidToken)

		rec := serve(e, "/optional", "Bearer bad")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
