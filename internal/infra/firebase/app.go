// Package firebase owns the Firebase Admin app shared by the Firestore store and the identity provider.
package firebase

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"supermall/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Emulator environment variables honoured by the Google SDKs.
const (
	envFirestoreEmulatorHost = "FIRESTORE_EMULATOR_HOST"
	envAuthEmulatorHost      = "FIREBASE_AUTH_EMULATOR_HOST"
	envStorageEmulatorHost   = "STORAGE_EMULATOR_HOST"
)

// App lazily initialises the Firebase Admin SDK. Nothing talks to Google until a client is requested,
// so deployments using the postgres driver and the local identity provider never need credentials.
type App struct {
	ctx    context.Context
	cfg    *config.FirebaseConfig
	logger *slog.Logger

	appOnce sync.Once
	app     *firebase.App
	appErr  error

	firestoreOnce sync.Once
	firestore     *firestore.Client
	firestoreErr  error

	authOnce sync.Once
	auth     *auth.Client
	authErr  error
}

// Params holds dependencies for App, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the lazy Firebase app and closes its clients on shutdown
func New(params Params) *App {
	cfg := params.Config.Firebase
	if cfg == nil {
		cfg = &config.FirebaseConfig{}
	}

	applyEmulatorEnv(cfg.Emulator, params.Logger)

	a := &App{
		ctx:    params.Ctx,
		cfg:    cfg,
		logger: params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return a.Close()
		},
	})

	return a
}

// applyEmulatorEnv exports the configured emulator hosts so every SDK picks them up
func applyEmulatorEnv(emulator *config.FirebaseEmulatorConfig, logger *slog.Logger) {
	if emulator == nil {
		return
	}

	hosts := map[string]string{
		envFirestoreEmulatorHost: emulator.FirestoreHost,
		envAuthEmulatorHost:      emulator.AuthHost,
		envStorageEmulatorHost:   emulator.StorageHost,
	}
	for key, host := range hosts {
		if host == "" || os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, host); err != nil {
			logger.Warn("Failed to set emulator host", slog.String("key", key), slog.Any("error", err))

			continue
		}
		logger.Info("Using Firebase emulator", slog.String("key", key), slog.String("host", host))
	}
}

// Config returns the Firebase settings the app was built from
func (a *App) Config() *config.FirebaseConfig {
	return a.cfg
}

// App returns the initialised Firebase Admin app
func (a *App) App() (*firebase.App, error) {
	a.appOnce.Do(func() {
		if a.cfg.ProjectID == "" {
			a.appErr = errors.New("firebase.projectId is not configured")

			return
		}

		var opts []option.ClientOption
		if a.cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(a.cfg.CredentialsPath))
		}

		a.app, a.appErr = firebase.NewApp(a.ctx, &firebase.Config{ProjectID: a.cfg.ProjectID}, opts...)
		if a.appErr != nil {
			a.appErr = errors.Wrap(a.appErr, "failed to initialize Firebase app")

			return
		}

		a.logger.Info("Firebase app initialized", slog.String("project_id", a.cfg.ProjectID))
	})

	return a.app, a.appErr
}

// Firestore returns the shared Firestore client
func (a *App) Firestore() (*firestore.Client, error) {
	a.firestoreOnce.Do(func() {
		app, err := a.App()
		if err != nil {
			a.firestoreErr = err

			return
		}

		a.firestore, a.firestoreErr = app.Firestore(a.ctx)
		if a.firestoreErr != nil {
			a.firestoreErr = errors.Wrap(a.firestoreErr, "failed to get firestore client")
		}
	})

	return a.firestore, a.firestoreErr
}

// Auth returns the shared Admin Auth client
func (a *App) Auth() (*auth.Client, error) {
	a.authOnce.Do(func() {
		app, err := a.App()
		if err != nil {
			a.authErr = err

			return
		}

		a.auth, a.authErr = app.Auth(a.ctx)
		if a.authErr != nil {
			a.authErr = errors.Wrap(a.authErr, "failed to get auth client")
		}
	})

	return a.auth, a.authErr
}

// Close releases the Firestore client if it was ever created
func (a *App) Close() error {
	if a.firestore == nil {
		return nil
	}

	a.logger.Info("Closing Firestore client")

	return errors.WithStack(a.firestore.Close())
}
