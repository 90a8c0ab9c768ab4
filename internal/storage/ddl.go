package storage

import (
	"context"
	"fmt"
	"sync"
)

// DDLBootstrapper creates (or verifies) the target table for a backend,
// typically via CREATE TABLE IF NOT EXISTS through repo.Exec. Backends
// register their implementation for a storage kind at init time.
type DDLBootstrapper func(ctx context.Context, repo Repository, cfg Config) error

var (
	ddlMu  sync.RWMutex
	ddlFns = map[string]DDLBootstrapper{}
)

// RegisterDDL registers (or replaces) a DDLBootstrapper for the given
// storage kind.
func RegisterDDL(kind string, fn DDLBootstrapper) {
	ddlMu.Lock()
	defer ddlMu.Unlock()
	ddlFns[kind] = fn
}

// EnsureTable invokes the DDL bootstrapper registered for cfg.Kind. Callers
// do not need to know which backend they are using.
func EnsureTable(ctx context.Context, repo Repository, cfg Config) error {
	ddlMu.RLock()
	fn, ok := ddlFns[cfg.Kind]
	ddlMu.RUnlock()
	if !ok {
		return fmt.Errorf("no DDL bootstrapper registered for storage kind %q", cfg.Kind)
	}
	return fn(ctx, repo, cfg)
}
