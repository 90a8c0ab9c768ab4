// This adapter wires the SQLite backend into the storage-agnostic factory.
package sqlite

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
	storage.Register("sqlite", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, closeFn, err := newRepository(ctx, Config{
			DSN:   cfg.DSN,
			Table: cfg.Table,
		})
		if err != nil {
			return nil, err
		}
		return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
	})

	storage.RegisterDDL("sqlite", func(ctx context.Context, repo storage.Repository, cfg storage.Config) error {
		return repo.Exec(ctx, createTableSQL(cfg))
	})
}

// wrappedRepo adapts *sqlite.Repository to storage.Repository.
type wrappedRepo struct {
	*Repository
	closeFn func()
}

func (w *wrappedRepo) Close() { w.closeFn() }

// createTableSQL renders a CREATE TABLE IF NOT EXISTS for the flight table.
// flight_code maps to INTEGER, the fingerprint column to INTEGER, everything
// else to TEXT.
func createTableSQL(cfg storage.Config) string {
	defs := make([]string, 0, len(cfg.Columns))
	for _, c := range cfg.Columns {
		defs = append(defs, quoteIdent(c)+" "+sqliteType(c))
	}
	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s)",
		quoteIdent(cfg.Table),
		strings.Join(defs, ", "),
	)
}

func sqliteType(col string) string {
	switch col {
	case "flight_code", storage.FingerprintColumn:
		return "INTEGER"
	}
	return "TEXT"
}
