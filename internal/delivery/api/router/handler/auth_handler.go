package handler

import (
	"log/slog"
	"net/http"

	"supermall/internal/delivery/api/response"
	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/domain/entity"
	"supermall/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// AuthHandler serves signup, login and logout.
type AuthHandler struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// CredentialsRequest is the body of signup and login.
// Presence is checked by the identity use case so the failure is audited.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"max=320"`
	Password string `json:"password" validate:"max=4096"`
}

// SessionResponse is returned after a successful signup or login.
type SessionResponse struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

func newSessionResponse(session *entity.Session) SessionResponse {
	return SessionResponse{
		UserID:       session.UserID,
		Email:        session.Email,
		IDToken:      session.IDToken,
		RefreshToken: session.RefreshToken,
	}
}

// SignUp handles account registration
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.identityUC.SignUp(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newSessionResponse(session))
}

// Login handles email and password sign-in
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.identityUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// Logout revokes the caller's sessions
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.identityUC.Logout(c.Request().Context(), deliverycontext.GetSession(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
