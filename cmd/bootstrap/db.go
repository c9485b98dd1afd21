package bootstrap

import (
	"context"
	"log/slog"

	"gearshare/internal/infra/db"
	"gearshare/internal/infra/migrate"
	"gearshare/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(RunMigrations),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func RunMigrations(pool *pgxpool.Pool, cfg config.Config) error {
	if !cfg.DB.RunMigrations {
		return nil
	}

	migrator, err := migrate.NewMigrator(pool, cfg.DB.MigrationsPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrator.Close(); cerr != nil {
			slog.Warn("failed to close migrator", "error", cerr)
		}
	}()

	if err := migrator.Up(context.Background()); err != nil {
		return err
	}

	version, err := migrator.Version(context.Background())
	if err != nil {
		return err
	}
	slog.Info("database migrated", "version", version)
	return nil
}
