// This adapter wires the MySQL backend into the storage-agnostic factory.
package mysql

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
	storage.Register("mysql", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, closeFn, err := newRepository(ctx, Config{
			DSN:   cfg.DSN,
			Table: cfg.Table,
		})
		if err != nil {
			return nil, err
		}
		return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
	})

	storage.RegisterDDL("mysql", func(ctx context.Context, repo storage.Repository, cfg storage.Config) error {
		return repo.Exec(ctx, createTableSQL(cfg))
	})
}

// wrappedRepo adapts *mysql.Repository to storage.Repository.
type wrappedRepo struct {
	*Repository
	closeFn func()
}

func (w *wrappedRepo) Close() { w.closeFn() }

// createTableSQL renders a CREATE TABLE IF NOT EXISTS for the flight table.
func createTableSQL(cfg storage.Config) string {
	defs := make([]string, 0, len(cfg.Columns))
	for _, c := range cfg.Columns {
		defs = append(defs, quoteIdent(c)+" "+mysqlType(c))
	}
	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s)",
		quoteIdent(cfg.Table),
		strings.Join(defs, ", "),
	)
}

func mysqlType(col string) string {
	switch col {
	case "flight_code":
		return "INT NOT NULL"
	case storage.FingerprintColumn:
		return "BIGINT"
	}
	return "TEXT"
}
