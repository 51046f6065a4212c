// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"supermall/config"
	"supermall/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultIDTokenTTL      = time.Hour
	defaultRefreshTokenTTL = time.Hour * 24 * 30
	tokenIssuer            = "supermall"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	idSecret      []byte        // Secret key for signing ID tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	idTTL         time.Duration // Time-to-live for ID tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		idSecret:      []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		idTTL:         defaultIDTokenTTL,
		refreshTTL:    defaultRefreshTokenTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new ID token and refresh token for a given user.
func (s *jwtService) GenerateTokens(userID, email string) (idToken string, refreshToken string, err error) {
	idToken, err = s.generateToken(userID, email, s.idTTL, s.idSecret, service.TokenTypeID)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, "", s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return idToken, refreshToken, nil
}

// ValidateToken checks the signature and expiry of a token string. The secret is
// picked from the unverified type claim and the type is checked again after verification.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		switch claims.Type {
		case service.TokenTypeID:
			return s.idSecret, nil
		case service.TokenTypeRefresh:
			return s.refreshSecret, nil
		default:
			return nil, errors.Errorf("unknown token type %q", claims.Type)
		}
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !token.Valid {
		return nil, errors.WithStack(jwt.ErrTokenInvalidClaims)
	}

	return claims, nil
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID, email string, ttl time.Duration, secret []byte, tokenType string) (string, error) {
	now := s.now()
	claims := service.Claims{
		UserID: userID,
		Email:  email,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}
