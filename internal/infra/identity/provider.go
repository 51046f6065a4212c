package identity

import (
	"context"
	"log/slog"

	"supermall/config"
	"supermall/internal/domain/service"
	"supermall/internal/infra/auth"
	"supermall/internal/infra/firebase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the identity provider, injected by Fx
type Params struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebase.App
}

// NewIdentityProvider creates the provider selected by identity.provider
func NewIdentityProvider(params Params) (service.IdentityProvider, error) {
	switch provider := params.Config.Identity.Provider; provider {
	case config.IdentityProviderFirebase:
		fbCfg := params.Firebase.Config()

		authClient, err := params.Firebase.Auth()
		if err != nil {
			return nil, err
		}

		var emulatorHost string
		if fbCfg.Emulator != nil {
			emulatorHost = fbCfg.Emulator.AuthHost
		}

		relyingParty, err := newRelyingPartyService(params.Ctx, fbCfg.APIKey, emulatorHost)
		if err != nil {
			return nil, err
		}

		params.Logger.Info("Using Firebase identity provider",
			slog.String("project_id", fbCfg.ProjectID),
			slog.Bool("check_revoked", fbCfg.CheckRevoked),
		)

		return newFirebaseProvider(relyingParty, authClient, fbCfg.CheckRevoked), nil

	case config.IdentityProviderLocal:
		tokens, err := auth.NewJWTService(params.Config)
		if err != nil {
			return nil, err
		}

		params.Logger.Warn("Using in-memory identity provider; accounts are lost on restart")

		return NewLocalProvider(auth.NewBcryptHasher(params.Config), tokens), nil

	default:
		return nil, errors.Errorf("unknown identity provider: %s", provider)
	}
}
