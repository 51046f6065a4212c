// Package identity implements the identity providers behind signup, login and token verification.
package identity

import (
	"context"
	"net"
	"net/url"
	"strings"

	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/service"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// tokenVerifier is the subset of the Admin Auth client used here.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*fbauth.Token, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// firebaseProvider signs users up and in through the Identity Toolkit REST API
// and verifies tokens with the Admin SDK.
type firebaseProvider struct {
	relyingParty *identitytoolkit.RelyingpartyService
	verifier     tokenVerifier
	checkRevoked bool
}

// newRelyingPartyService builds the Identity Toolkit client, pointing it at the
// auth emulator when emulatorHost is set.
func newRelyingPartyService(ctx context.Context, apiKey, emulatorHost string) (*identitytoolkit.RelyingpartyService, error) {
	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if emulatorHost != "" {
		opts = append(opts, option.WithEndpoint("http://"+emulatorHost+"/www.googleapis.com/identitytoolkit/v3/relyingparty/"))
	}

	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit service")
	}

	return svc.Relyingparty, nil
}

func newFirebaseProvider(relyingParty *identitytoolkit.RelyingpartyService, verifier tokenVerifier, checkRevoked bool) *firebaseProvider {
	return &firebaseProvider{
		relyingParty: relyingParty,
		verifier:     verifier,
		checkRevoked: checkRevoked,
	}
}

// SignUp creates an email/password account
func (p *firebaseProvider) SignUp(ctx context.Context, email, password string) (*entity.Session, error) {
	resp, err := p.relyingParty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return nil, mapProviderError(err)
	}

	return &entity.Session{
		UserID:       resp.LocalId,
		Email:        resp.Email,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// SignIn verifies email/password credentials
func (p *firebaseProvider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	resp, err := p.relyingParty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, mapProviderError(err)
	}

	return &entity.Session{
		UserID:       resp.LocalId,
		Email:        resp.Email,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// RevokeSessions revokes all refresh tokens of the user
func (p *firebaseProvider) RevokeSessions(ctx context.Context, userID string) error {
	if err := p.verifier.RevokeRefreshTokens(ctx, userID); err != nil {
		return mapProviderError(err)
	}

	return nil
}

// VerifyToken checks an ID token signature, expiry and optionally revocation
func (p *firebaseProvider) VerifyToken(ctx context.Context, idToken string) (*entity.Session, error) {
	var (
		token *fbauth.Token
		err   error
	)
	if p.checkRevoked {
		token, err = p.verifier.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	} else {
		token, err = p.verifier.VerifyIDToken(ctx, idToken)
	}
	if err != nil {
		if isTransportError(err) {
			return nil, errors.Wrap(service.ErrIdentityUnreachable, err.Error())
		}

		return nil, errors.Wrap(err, "failed to verify id token")
	}

	email, _ := token.Claims["email"].(string)

	return &entity.Session{
		UserID:  token.UID,
		Email:   email,
		IDToken: idToken,
	}, nil
}

// mapProviderError turns Identity Toolkit error reasons into app errors.
func mapProviderError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch errorReason(apiErr.Message) {
		case "EMAIL_EXISTS":
			return domainerrors.ErrEmailAlreadyExists
		case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "INVALID_EMAIL":
			return domainerrors.ErrInvalidCredentials
		case "WEAK_PASSWORD":
			return domainerrors.ErrWeakPassword
		default:
			return domainerrors.ErrIdentityProviderFailed.WithDetails(apiErr.Message)
		}
	}

	if isTransportError(err) {
		return errors.Wrap(service.ErrIdentityUnreachable, err.Error())
	}

	return errors.Wrap(err, "identity provider request failed")
}

// errorReason extracts the leading code of messages like "WEAK_PASSWORD : Password should be ...".
func errorReason(message string) string {
	fields := strings.FieldsFunc(message, func(r rune) bool {
		return r == ' ' || r == ':'
	})
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

func isTransportError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}
