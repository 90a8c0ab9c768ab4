package config

import (
	"fmt"
	"strings"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a finding worth surfacing that need not block.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding for a Pipeline. Path is a
// dotted path into the config (e.g. "storage.db.dsn").
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as one.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// knownStorageKinds mirrors the backends wired in internal/storage/all.
var knownStorageKinds = map[string]bool{
	"postgres": true,
	"sqlite":   true,
	"mysql":    true,
}

// ValidatePipeline performs static validation of a Pipeline without mutating
// it. Callers decide whether warnings are fatal.
func ValidatePipeline(p Pipeline) []Issue {
	var issues []Issue

	kind := strings.TrimSpace(p.Storage.Kind)
	if kind == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.kind",
			Message:  "storage.kind must not be empty",
		})
	} else if !knownStorageKinds[kind] {
		// Unknown kinds are warnings for forward compatibility; the factory
		// will reject them at open time if nothing registered.
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "storage.kind",
			Message:  fmt.Sprintf("unknown storage kind %q", kind),
		})
	}

	if kind != "" {
		if strings.TrimSpace(p.Storage.DB.DSN) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "storage.db.dsn",
				Message:  "storage.db.dsn must not be empty",
			})
		}
		if strings.TrimSpace(p.Storage.DB.Table) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "storage.db.table",
				Message:  "storage.db.table must not be empty",
			})
		}
	}

	if p.Runtime.BatchSize < 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "runtime.batch_size",
			Message:  "runtime.batch_size must not be negative",
		})
	}
	if p.Runtime.ChannelBuffer < 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "runtime.channel_buffer",
			Message:  "runtime.channel_buffer must not be negative",
		})
	}

	return issues
}
