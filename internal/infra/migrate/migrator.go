package migrate

import (
	"context"
	"database/sql"

	"gearshare/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrator applies goose SQL migrations over the shared pgx pool.
type Migrator struct {
	db   *sql.DB
	path string
}

func NewMigrator(pool *pgxpool.Pool, path string) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, errs.Wrap(err, "failed to set goose dialect")
	}
	return &Migrator{
		db:   stdlib.OpenDBFromPool(pool),
		path: path,
	}, nil
}

func (m *Migrator) Up(ctx context.Context) error {
	if err := goose.UpContext(ctx, m.db, m.path); err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}
	return nil
}

func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, errs.Wrap(err, "failed to read migration version")
	}
	return version, nil
}

func (m *Migrator) Close() error {
	return m.db.Close()
}
