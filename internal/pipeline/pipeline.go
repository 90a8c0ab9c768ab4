// Package pipeline wires the flight table parse end-to-end: positional row
// decoding against the primary schema, splitting the combined route column
// into destination and origin, and repairing missing flight codes by
// sequential fill. The whole table is materialized in memory; one call, one
// pass, no state shared between calls.
package pipeline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"flightetl/internal/parser/table"
	"flightetl/internal/schema"
	"flightetl/internal/transformer"
	"flightetl/internal/transformer/builtin"
	"flightetl/pkg/records"
)

const (
	// FieldSep separates fields within a data line.
	FieldSep = ";"

	// RouteSep separates destination from origin inside the combined column.
	RouteSep = "_"

	// Header is the fixed header line emitted by Serialize.
	Header = "Airline Code;DelayTimes;FlightCodes;To;From"
)

// Parse decodes the semicolon-delimited flight table from r into fully
// resolved records, in input line order. The first line is discarded as a
// header. Every record in the result carries a non-nil flight_code. An empty
// or header-only input yields an empty result and no error.
func Parse(r io.Reader) ([]records.Record, error) {
	p := table.NewParser(table.Options{
		Sep:       FieldSep,
		HasHeader: true,
		Schema:    schema.Flights(),
	})
	recs, err := p.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse flight table: %w", err)
	}

	chain := transformer.Chain{
		builtin.Normalize{},
		builtin.SplitField{Field: schema.FieldRoute, Sep: RouteSep, Into: schema.Route()},
		builtin.FillSequential{Field: schema.FieldFlightCode},
	}
	return chain.Apply(recs), nil
}

// ParseString is Parse over an in-memory table.
func ParseString(text string) ([]records.Record, error) {
	return Parse(strings.NewReader(text))
}

// OutputColumns is the record field order used by Serialize and by storage
// sinks when projecting records to rows.
var OutputColumns = []string{
	schema.FieldAirline,
	schema.FieldDelayTimes,
	schema.FieldFlightCode,
	schema.FieldTo,
	schema.FieldFrom,
}

// Serialize renders parsed records back to delimited text: the fixed Header
// line, then one semicolon-joined line per record in order. Integer lists
// render bracketed and space-separated ("[21 40]", "[]" when empty); nil
// renders empty. No quoting or escaping is applied, and no line break
// follows the last record.
func Serialize(recs []records.Record) string {
	var b strings.Builder
	b.WriteString(Header)
	for _, r := range recs {
		b.WriteByte('\n')
		for i, col := range OutputColumns {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(RenderValue(r[col]))
		}
	}
	return b.String()
}

// RenderValue produces the natural text form of a record value.
func RenderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}
