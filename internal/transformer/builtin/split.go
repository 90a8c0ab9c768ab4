// Package builtin contains the reusable record transformers of the flight
// pipeline: field splitting, sequential code repair, and normalization.
package builtin

import (
	"flightetl/internal/parser/table"
	"flightetl/internal/schema"
	"flightetl/pkg/records"
)

// SplitField removes one combined field from each record and decodes its raw
// text against a sub-schema using a secondary separator, merging the derived
// fields back into the record. The combined field never survives in the
// output; every sub-schema column is always present, coerced independently.
type SplitField struct {
	// Field is the name of the combined field to remove and split.
	Field string

	// Sep is the secondary separator inside the combined value.
	Sep string

	// Into is the ordered sub-schema of the pieces to extract.
	Into []schema.Column
}

func (s SplitField) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		v := r[s.Field]
		delete(r, s.Field)

		raw, ok := v.(string)
		if !ok || raw == "" {
			// Absent combined value: every derived field is nil.
			for _, col := range s.Into {
				r[col.Name] = nil
			}
			continue
		}
		for k, sub := range table.DecodeRow(raw, s.Sep, s.Into) {
			r[k] = sub
		}
	}
	return in
}
