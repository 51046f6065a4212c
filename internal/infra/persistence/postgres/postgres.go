// Package postgres implements the repositories on PostgreSQL through GORM.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"supermall/config"
	"supermall/internal/domain/lifecycle"
	"supermall/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const dbStatsName = "supermall_postgres"

type Params struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	Registerer prometheus.Registerer
}

// New connects to postgres.dsn with reads spread over postgres.replicas.
// The connection is checked and migrations run when the app starts.
func New(params Params) (*gorm.DB, error) {
	cfg := params.Config.Postgres
	if cfg == nil || cfg.DSN == "" {
		return nil, errors.New("postgres.dsn is not configured")
	}

	db, err := gorm.Open(pgdriver.Open(cfg.DSN), &gorm.Config{
		// Every repository write is a single statement.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	if err := useReplicas(db, cfg); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get postgres sql.DB")
	}
	configurePool(sqlDB, cfg)

	if params.Registerer != nil {
		if err := params.Registerer.Register(collectors.NewDBStatsCollector(sqlDB, dbStatsName)); err != nil {
			return nil, errors.Wrap(err, "register postgres pool metrics")
		}
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			if !cfg.AutoMigrate {
				return nil
			}

			if err := Migrate(ctx, sqlDB); err != nil {
				return err
			}
			params.Logger.Info("PostgreSQL migrations applied")

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

func useReplicas(db *gorm.DB, cfg *config.PostgresConfig) error {
	if len(cfg.Replicas) == 0 {
		return nil
	}

	replicas := make([]gorm.Dialector, 0, len(cfg.Replicas))
	for _, dsn := range cfg.Replicas {
		replicas = append(replicas, pgdriver.Open(dsn))
	}

	resolver := dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	})
	configureResolverPool(resolver, cfg)

	return errors.Wrap(db.Use(resolver), "register postgres replicas")
}

func configurePool(sqlDB *sql.DB, cfg *config.PostgresConfig) {
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// configureResolverPool applies the same limits to every replica pool.
func configureResolverPool(resolver *dbresolver.DBResolver, cfg *config.PostgresConfig) {
	if cfg.MaxOpenConns > 0 {
		resolver.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		resolver.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		resolver.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}
