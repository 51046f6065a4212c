package identity

import (
	"context"
	"strings"
	"sync"

	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const minPasswordLength = 6

var errTokenRevoked = errors.New("token has been revoked")

type localAccount struct {
	uid          string
	email        string
	passwordHash string
}

// localProvider keeps accounts in memory. It backs development setups and tests
// where no identity backend is available.
type localProvider struct {
	hasher service.PasswordHasher
	tokens service.TokenService

	mu      sync.RWMutex
	byEmail map[string]*localAccount
	// live holds the ID tokens issued per user that have not been revoked.
	live map[string]map[string]struct{}
}

// NewLocalProvider creates an in-memory identity provider
func NewLocalProvider(hasher service.PasswordHasher, tokens service.TokenService) service.IdentityProvider {
	return &localProvider{
		hasher:  hasher,
		tokens:  tokens,
		byEmail: make(map[string]*localAccount),
		live:    make(map[string]map[string]struct{}),
	}
}

// SignUp registers a new account and signs it in
func (p *localProvider) SignUp(_ context.Context, email, password string) (*entity.Session, error) {
	if len(password) < minPasswordLength {
		return nil, domainerrors.ErrWeakPassword
	}

	key := normalizeEmail(email)

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	p.mu.Lock()
	if _, exists := p.byEmail[key]; exists {
		p.mu.Unlock()

		return nil, domainerrors.ErrEmailAlreadyExists
	}
	account := &localAccount{uid: uuid.NewString(), email: key, passwordHash: hash}
	p.byEmail[key] = account
	p.mu.Unlock()

	return p.issue(account)
}

// SignIn verifies email/password credentials
func (p *localProvider) SignIn(_ context.Context, email, password string) (*entity.Session, error) {
	p.mu.RLock()
	account, ok := p.byEmail[normalizeEmail(email)]
	p.mu.RUnlock()

	if !ok || !p.hasher.Check(password, account.passwordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return p.issue(account)
}

// RevokeSessions invalidates every token issued to the user so far
func (p *localProvider) RevokeSessions(_ context.Context, userID string) error {
	p.mu.Lock()
	delete(p.live, userID)
	p.mu.Unlock()

	return nil
}

// VerifyToken validates an ID token and rejects revoked ones
func (p *localProvider) VerifyToken(_ context.Context, idToken string) (*entity.Session, error) {
	claims, err := p.tokens.ValidateToken(idToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != service.TokenTypeID {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	p.mu.RLock()
	_, live := p.live[claims.UserID][idToken]
	p.mu.RUnlock()

	if !live {
		return nil, errTokenRevoked
	}

	return &entity.Session{
		UserID:  claims.UserID,
		Email:   claims.Email,
		IDToken: idToken,
	}, nil
}

func (p *localProvider) issue(account *localAccount) (*entity.Session, error) {
	idToken, refreshToken, err := p.tokens.GenerateTokens(account.uid, account.email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	p.mu.Lock()
	if p.live[account.uid] == nil {
		p.live[account.uid] = make(map[string]struct{})
	}
	p.live[account.uid][idToken] = struct{}{}
	p.mu.Unlock()

	return &entity.Session{
		UserID:       account.uid,
		Email:        account.email,
		IDToken:      idToken,
		RefreshToken: refreshToken,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
