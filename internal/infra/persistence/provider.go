// Package persistence selects the storage driver backing the catalog and the audit log.
package persistence

import (
	"log/slog"

	"supermall/config"
	"supermall/internal/domain/repository"
	"supermall/internal/infra/firebase"
	"supermall/internal/infra/persistence/firestore"
	"supermall/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Params holds dependencies for NewRepositories, injected by Fx
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebase.App

	Registerer prometheus.Registerer `optional:"true"`
}

// Repositories are the repositories of the selected driver
type Repositories struct {
	fx.Out

	Shops    repository.ShopRepository
	Products repository.ProductRepository
	Offers   repository.OfferRepository
	Audit    repository.AuditRepository
}

// NewRepositories builds the repositories for storage.driver. Only the selected
// backend is ever connected.
func NewRepositories(params Params) (Repositories, error) {
	switch driver := params.Config.Storage.Driver; driver {
	case config.StorageDriverFirestore:
		client, err := params.Firebase.Firestore()
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using Firestore storage driver", slog.String("project_id", params.Firebase.Config().ProjectID))

		return Repositories{
			Shops:    firestore.NewShopRepository(client),
			Products: firestore.NewProductRepository(client),
			Offers:   firestore.NewOfferRepository(client),
			Audit:    firestore.NewAuditRepository(client),
		}, nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle:  params.Lc,
			Config:     params.Config,
			Logger:     params.Logger,
			Registerer: params.Registerer,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL storage driver", slog.Int("replicas", len(params.Config.Postgres.Replicas)))

		return Repositories{
			Shops:    postgres.NewShopRepository(db),
			Products: postgres.NewProductRepository(db),
			Offers:   postgres.NewOfferRepository(db),
			Audit:    postgres.NewAuditRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}
