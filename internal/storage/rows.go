package storage

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"

	"flightetl/pkg/records"
)

// FingerprintColumn is the derived column appended to a row when content
// fingerprinting is enabled. It holds an xxh3 hash of the row's field values
// so reloads of identical source data produce identical rows.
const FingerprintColumn = "row_hash"

// Rows projects records onto the ordered columns, producing driver-ready
// values: integer lists render to their bracketed text form, nil stays nil
// (SQL NULL). When fingerprint is true each row gains a trailing
// FingerprintColumn value; callers must extend the column list accordingly.
func Rows(recs []records.Record, columns []string, fingerprint bool) [][]any {
	out := make([][]any, len(recs))
	for i, rec := range recs {
		row := make([]any, 0, len(columns)+1)
		for _, c := range columns {
			row = append(row, toDBValue(rec[c]))
		}
		if fingerprint {
			row = append(row, int64(Fingerprint(rec, columns)))
		}
		out[i] = row
	}
	return out
}

// Fingerprint hashes the record's values for the given columns into a stable
// 64-bit content key. Nil fields hash distinctly from empty strings.
func Fingerprint(rec records.Record, columns []string) uint64 {
	var b strings.Builder
	for i, c := range columns {
		if i > 0 {
			b.WriteByte('\x1f')
		}
		v := rec[c]
		if v == nil {
			b.WriteByte('\x00')
			continue
		}
		fmt.Fprint(&b, v)
	}
	return xxh3.HashString(b.String())
}

// toDBValue maps a record value to something every SQL driver accepts.
func toDBValue(v any) any {
	switch t := v.(type) {
	case nil, string, int, int64, float64, bool:
		return v
	case []int:
		return fmt.Sprint(t)
	default:
		return fmt.Sprint(t)
	}
}
