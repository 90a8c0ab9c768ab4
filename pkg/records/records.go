// Package records defines the in-memory record shape shared by parsers,
// transformers, and storage backends.
package records

// Record maps a canonical field name to its value. A nil value means the
// field was absent or empty in the source data; "" is never stored for an
// empty field.
type Record map[string]any
