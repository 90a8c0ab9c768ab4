// This adapter wires the Postgres backend into the storage-agnostic factory.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"flightetl/internal/storage"
)

// newRepository is a test hook that points to NewRepository by default.
var newRepository = NewRepository

var _ storage.Repository = (*wrappedRepo)(nil)

func init() {
	storage.Register("postgres", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, closeFn, err := newRepository(ctx, Config{
			DSN:        cfg.DSN,
			Table:      cfg.Table,
			KeyColumns: cfg.KeyColumns,
		})
		if err != nil {
			return nil, err
		}
		return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
	})

	storage.RegisterDDL("postgres", func(ctx context.Context, repo storage.Repository, cfg storage.Config) error {
		return repo.Exec(ctx, createTableSQL(cfg))
	})
}

// wrappedRepo adapts *postgres.Repository to storage.Repository.
type wrappedRepo struct {
	*Repository
	closeFn func()
}

func (w *wrappedRepo) Close() { w.closeFn() }

// createTableSQL renders a CREATE TABLE IF NOT EXISTS for the flight table.
func createTableSQL(cfg storage.Config) string {
	defs := make([]string, 0, len(cfg.Columns))
	for _, c := range cfg.Columns {
		defs = append(defs, pgIdent(c)+" "+pgType(c))
	}
	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s)",
		pgFQN(cfg.Table),
		strings.Join(defs, ", "),
	)
}

func pgType(col string) string {
	switch col {
	case "flight_code":
		return "integer NOT NULL"
	case storage.FingerprintColumn:
		return "bigint"
	}
	return "text"
}
