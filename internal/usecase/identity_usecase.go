package usecase

import (
	"context"

	"supermall/internal/domain/entity"
)

// IdentityUsecase defines the interface for signup, login and logout
type IdentityUsecase interface {
	// SignUp registers a new account and returns its session
	SignUp(ctx context.Context, email, password string) (*entity.Session, error)

	// Login signs in with email and password
	Login(ctx context.Context, email, password string) (*entity.Session, error)

	// Logout revokes the session's refresh tokens
	Logout(ctx context.Context, session *entity.Session) error

	// Authenticate resolves a bearer ID token into a session
	Authenticate(ctx context.Context, idToken string) (*entity.Session, error)
}
