package middleware

import (
	"strings"

	deliverycontext "supermall/internal/delivery/context"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves bearer ID tokens into sessions.
type AuthMiddleware struct {
	identity usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// RequireSession rejects requests without a valid bearer token.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, present, err := bearerToken(c)
		if err != nil {
			return err
		}
		if !present {
			return domainerrors.ErrAuthenticationRequired
		}

		return m.authenticate(c, token, next)
	}
}

// OptionalSession attaches a session when a bearer token is sent. A token that
// is sent but invalid is still rejected.
func (m *AuthMiddleware) OptionalSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, present, err := bearerToken(c)
		if err != nil {
			return err
		}
		if !present {
			return next(c)
		}

		return m.authenticate(c, token, next)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, token string, next echo.HandlerFunc) error {
	session, err := m.identity.Authenticate(c.Request().Context(), token)
	if err != nil {
		return err
	}

	deliverycontext.SetSession(c, session)

	return next(c)
}

// bearerToken extracts the token of an "Authorization: Bearer" header.
func bearerToken(c echo.Context) (token string, present bool, err error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false, nil
	}

	if !strings.HasPrefix(header, bearerPrefix) {
		return "", true, domainerrors.ErrInvalidToken.WithDetails("must be a Bearer token")
	}

	token = strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", true, domainerrors.ErrInvalidToken
	}

	return token, true, nil
}
