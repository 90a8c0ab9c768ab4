// Package postgres implements a Postgres repository using pgx v5. Plain
// loads COPY directly into the target table; when key columns are
// configured, rows COPY into a temporary staging table and replace matching
// rows in the target, making reloads of the same flight table idempotent.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config holds Postgres repository configuration.
type Config struct {
	DSN        string   // connection string for pgxpool
	Table      string   // target table, optionally schema-qualified ("public.flights")
	KeyColumns []string // columns identifying a row for replace-on-reload
}

// Repository is a Postgres-backed implementation of storage.Repository.
type Repository struct {
	pool *pgxpool.Pool
	cfg  Config
}

// NewRepository constructs a Repository and returns a Close function for
// cleanup.
func NewRepository(ctx context.Context, cfg Config) (*Repository, func(), error) {
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("pgxpool: %w", err)
	}
	return &Repository{pool: pool, cfg: cfg}, pool.Close, nil
}

// CopyFrom bulk-inserts rows aligned to columns. Without key columns it is a
// single COPY into the target table. With key columns it stages through a
// temp table and deletes matching target rows first, so re-running a load
// never duplicates flights.
func (r *Repository) CopyFrom(ctx context.Context, columns []string, rows [][]any) (int64, error) {
	if len(columns) == 0 {
		return 0, fmt.Errorf("postgres: CopyFrom: columns must not be empty")
	}
	if len(rows) == 0 {
		return 0, nil
	}

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("postgres: acquire: %w", err)
	}
	defer conn.Release()

	if len(r.cfg.KeyColumns) == 0 {
		n, err := conn.CopyFrom(ctx, tableIdent(r.cfg.Table), columns, pgx.CopyFromRows(rows))
		if err != nil {
			return n, fmt.Errorf("postgres: copy: %w", err)
		}
		return n, nil
	}
	return r.stagedReplace(ctx, conn, columns, rows)
}

// stagedReplace implements the keyed load: COPY into a temp table shaped
// like the target, delete target rows that match on the key columns, then
// insert the staged rows.
func (r *Repository) stagedReplace(ctx context.Context, conn *pgxpool.Conn, columns []string, rows [][]any) (int64, error) {
	tmp := "tmp_" + strings.ReplaceAll(r.cfg.Table, ".", "_")
	fq := pgFQN(r.cfg.Table)

	create := fmt.Sprintf(
		"CREATE TEMP TABLE %s ON COMMIT DROP AS SELECT %s FROM %s WHERE false",
		pgIdent(tmp), strings.Join(mapIdent(columns), ", "), fq,
	)

	tx, err := conn.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("postgres: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, create); err != nil {
		return 0, fmt.Errorf("postgres: create temp: %w", err)
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{tmp}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("postgres: copy temp: %w", err)
	}

	del := fmt.Sprintf(
		"DELETE FROM %s AS t USING %s AS s WHERE %s",
		fq, pgIdent(tmp), keyCondition(r.cfg.KeyColumns),
	)
	if _, err := tx.Exec(ctx, del); err != nil {
		return 0, fmt.Errorf("postgres: delete matching: %w", err)
	}

	ins := fmt.Sprintf(
		"INSERT INTO %s (%s) SELECT %s FROM %s",
		fq, strings.Join(mapIdent(columns), ", "),
		strings.Join(mapIdent(columns), ", "), pgIdent(tmp),
	)
	if _, err := tx.Exec(ctx, ins); err != nil {
		return 0, fmt.Errorf("postgres: insert from temp: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("postgres: commit: %w", err)
	}
	return n, nil
}

// Exec executes an arbitrary SQL statement, typically DDL.
func (r *Repository) Exec(ctx context.Context, sqlText string) error {
	if strings.TrimSpace(sqlText) == "" {
		return fmt.Errorf("postgres: Exec: empty statement")
	}
	if _, err := r.pool.Exec(ctx, sqlText); err != nil {
		return fmt.Errorf("postgres: exec: %w", err)
	}
	return nil
}

// keyCondition builds "t.a = s.a AND t.b = s.b" for the key columns.
func keyCondition(keys []string) string {
	conds := make([]string, len(keys))
	for i, k := range keys {
		conds[i] = fmt.Sprintf("t.%s = s.%s", pgIdent(k), pgIdent(k))
	}
	return strings.Join(conds, " AND ")
}

// pgIdent double-quotes a single identifier; "to" and "from" are reserved.
func pgIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// pgFQN quotes an optionally schema-qualified table name part by part.
func pgFQN(table string) string {
	parts := strings.Split(table, ".")
	for i, p := range parts {
		parts[i] = pgIdent(p)
	}
	return strings.Join(parts, ".")
}

// tableIdent converts an optionally schema-qualified name to a pgx
// Identifier for CopyFrom.
func tableIdent(table string) pgx.Identifier {
	return pgx.Identifier(strings.Split(table, "."))
}

func mapIdent(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = pgIdent(c)
	}
	return out
}
