package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.json")
	body := `{
		"source":  { "path": "flights.csv" },
		"storage": {
			"kind": "sqlite",
			"db": { "dsn": "flights.db", "table": "flights", "auto_create_table": true, "fingerprint": true }
		},
		"runtime": { "batch_size": 250 }
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := p.Source.Path, "flights.csv"; got != want {
		t.Fatalf("source.path = %q, want %q", got, want)
	}
	if got, want := p.Storage.Kind, "sqlite"; got != want {
		t.Fatalf("storage.kind = %q, want %q", got, want)
	}
	if !p.Storage.DB.AutoCreateTable || !p.Storage.DB.Fingerprint {
		t.Fatalf("db flags not decoded: %#v", p.Storage.DB)
	}
	if got, want := p.Runtime.BatchSize, 250; got != want {
		t.Fatalf("runtime.batch_size = %d, want %d", got, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidatePipeline(t *testing.T) {
	valid := Pipeline{}
	valid.Storage.Kind = "postgres"
	valid.Storage.DB.DSN = "postgres://localhost/flights"
	valid.Storage.DB.Table = "public.flights"

	tests := []struct {
		name     string
		mutate   func(*Pipeline)
		wantPath string
		severity IssueSeverity
	}{
		{
			name:   "valid pipeline has no issues",
			mutate: func(p *Pipeline) {},
		},
		{
			name:     "empty kind",
			mutate:   func(p *Pipeline) { p.Storage.Kind = "" },
			wantPath: "storage.kind",
			severity: SeverityError,
		},
		{
			name:     "unknown kind warns",
			mutate:   func(p *Pipeline) { p.Storage.Kind = "oracle" },
			wantPath: "storage.kind",
			severity: SeverityWarning,
		},
		{
			name:     "missing dsn",
			mutate:   func(p *Pipeline) { p.Storage.DB.DSN = " " },
			wantPath: "storage.db.dsn",
			severity: SeverityError,
		},
		{
			name:     "missing table",
			mutate:   func(p *Pipeline) { p.Storage.DB.Table = "" },
			wantPath: "storage.db.table",
			severity: SeverityError,
		},
		{
			name:     "negative batch size",
			mutate:   func(p *Pipeline) { p.Runtime.BatchSize = -1 },
			wantPath: "runtime.batch_size",
			severity: SeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)

			issues := ValidatePipeline(p)
			if tt.wantPath == "" {
				if len(issues) != 0 {
					t.Fatalf("expected no issues, got %v", issues)
				}
				return
			}
			for _, iss := range issues {
				if iss.Path == tt.wantPath && iss.Severity == tt.severity {
					return
				}
			}
			t.Fatalf("no %s issue at %q in %v", tt.severity, tt.wantPath, issues)
		})
	}
}
