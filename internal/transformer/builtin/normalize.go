package builtin

import (
	"strings"

	"flightetl/pkg/records"
)

// Normalize trims surrounding whitespace from every string field and folds
// non-breaking spaces to plain spaces. Fields trimmed down to "" become nil.
type Normalize struct{}

func (Normalize) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		for k, v := range r {
			if s, ok := v.(string); ok {
				s = strings.TrimSpace(strings.ReplaceAll(s, " ", " "))
				if s == "" {
					r[k] = nil
					continue
				}
				r[k] = s
			}
		}
	}
	return in
}
