// Package schema describes the flight table as data: an ordered list of
// column name / coercer pairs. Decoding is strictly positional; the header
// line of the source table is decorative and never consulted.
package schema

import "flightetl/internal/coerce"

// Canonical field names used across the pipeline and storage layers.
const (
	FieldAirline    = "airline_code"
	FieldDelayTimes = "delay_times"
	FieldFlightCode = "flight_code"
	FieldRoute      = "to_from"
	FieldTo         = "to"
	FieldFrom       = "from"
)

// Column pairs a canonical field name with the coercer applied to its raw
// text value. A nil Coerce keeps the raw string as-is.
type Column struct {
	Name   string
	Coerce coerce.Func
}

// Flights is the primary schema for one raw data line, in source column
// order. The combined to_from column is kept raw here; the route splitter
// decodes it against Route afterwards.
func Flights() []Column {
	return []Column{
		{Name: FieldAirline, Coerce: coerce.AirlineName},
		{Name: FieldDelayTimes, Coerce: coerce.DelayTimes},
		{Name: FieldFlightCode, Coerce: coerce.FlightCode},
		{Name: FieldRoute},
	}
}

// Route is the sub-schema for the combined destination/origin field,
// in the order the pieces appear around the secondary separator.
func Route() []Column {
	return []Column{
		{Name: FieldTo, Coerce: coerce.TitleCase},
		{Name: FieldFrom, Coerce: coerce.TitleCase},
	}
}

// Names returns the column names of cols in order.
func Names(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name
	}
	return out
}
