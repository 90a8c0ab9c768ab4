// Package storage contains storage-agnostic contracts and utilities for
// sinking parsed flight records into a tabular backend. Concrete backends
// (postgres, sqlite, mysql) register themselves with the factory at init
// time; callers select one by kind and never import driver packages.
package storage

import (
	"context"
	"fmt"
	"sync"
)

// Repository abstracts a tabular sink. CopyFrom inserts rows aligned to the
// given column order and reports how many were written; Exec runs arbitrary
// SQL (typically DDL).
type Repository interface {
	CopyFrom(ctx context.Context, columns []string, rows [][]any) (int64, error)
	Exec(ctx context.Context, sql string) error
	Close()
}

// Config selects and configures a backend.
type Config struct {
	Kind       string   // registered backend kind, e.g. "postgres"
	DSN        string   // driver connection string
	Table      string   // target table name
	Columns    []string // ordered columns for insert
	KeyColumns []string // conflict target columns for upserting backends
}

// Factory constructs a Repository from a Config.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register registers (or replaces) the factory for a storage kind. It is
// called from backend packages' init functions.
func Register(kind string, fn Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[kind] = fn
}

// New opens the backend registered for cfg.Kind.
func New(ctx context.Context, cfg Config) (Repository, error) {
	mu.RLock()
	fn, ok := factories[cfg.Kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no storage backend registered for kind %q", cfg.Kind)
	}
	return fn(ctx, cfg)
}

// Kinds returns the registered backend kinds, for diagnostics.
func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	return out
}
