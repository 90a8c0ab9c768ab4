// Package config defines the JSON-serializable pipeline configuration for
// the flightetl binary: where the input table comes from and where parsed
// records go. It is deliberately small and decoded by the standard library;
// no third-party config machinery is warranted for a structure this flat.
//
// Example:
//
//	{
//	  "source":  { "path": "flights.csv" },
//	  "storage": {
//	    "kind": "sqlite",
//	    "db": { "dsn": "flights.db", "table": "flights", "auto_create_table": true }
//	  },
//	  "runtime": { "batch_size": 500 }
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pipeline is the top-level object decoded from a pipeline file.
type Pipeline struct {
	// Source describes where the raw flight table comes from.
	Source Source `json:"source"`

	// Storage describes where resolved records are written.
	Storage Storage `json:"storage"`

	// Runtime controls batching.
	Runtime Runtime `json:"runtime"`
}

// Source identifies the input table. An empty Path means standard input.
type Source struct {
	Path string `json:"path"`
}

// Storage selects and configures the sink backend.
type Storage struct {
	// Kind selects a registered backend: "postgres", "sqlite", or "mysql".
	Kind string `json:"kind"`

	DB DB `json:"db"`
}

// DB carries backend connection and table options.
type DB struct {
	DSN             string   `json:"dsn"`
	Table           string   `json:"table"`
	AutoCreateTable bool     `json:"auto_create_table"`
	KeyColumns      []string `json:"key_columns,omitempty"`

	// Fingerprint adds a derived row_hash column holding a content hash of
	// each row, letting reloads be detected downstream.
	Fingerprint bool `json:"fingerprint,omitempty"`
}

// Runtime controls batching for the loader.
type Runtime struct {
	BatchSize     int `json:"batch_size"`
	ChannelBuffer int `json:"channel_buffer"`
}

// Load decodes a Pipeline from a JSON file.
func Load(path string) (Pipeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pipeline{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var p Pipeline
	if err := json.NewDecoder(f).Decode(&p); err != nil {
		return Pipeline{}, fmt.Errorf("decode config: %w", err)
	}
	return p, nil
}
