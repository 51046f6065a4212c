package service

import (
	"context"

	"supermall/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrIdentityUnreachable is returned by providers when the identity backend cannot be reached.
var ErrIdentityUnreachable = errors.New("identity provider unreachable")

// IdentityProvider is the external identity backend.
// Implementations return domain app errors for rejected credentials and
// ErrIdentityUnreachable for transport failures.
type IdentityProvider interface {
	// SignUp registers a new email/password account and signs it in.
	SignUp(ctx context.Context, email, password string) (*entity.Session, error)

	// SignIn verifies email/password credentials.
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)

	// RevokeSessions invalidates every refresh token issued to the user.
	RevokeSessions(ctx context.Context, userID string) error

	// VerifyToken resolves an ID token into the session it belongs to.
	VerifyToken(ctx context.Context, idToken string) (*entity.Session, error)
}
