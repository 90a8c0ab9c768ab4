package coerce

import (
	"reflect"
	"testing"
)

// TestAirlineName locks in the cleaning behavior: digits, punctuation, and
// symbols are dropped anywhere in the value, then the result is trimmed.
func TestAirlineName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "leading number and trailing symbols",
			in:   `123 Air Canada **.\`,
			want: "Air Canada",
		},
		{
			name: "already clean",
			in:   "KLM",
			want: "KLM",
		},
		{
			name: "punctuation inside the name",
			in:   "Air-France (12!)",
			want: "AirFrance",
		},
		{
			name: "interior spaces survive",
			in:   " British Airways ",
			want: "British Airways",
		},
		{
			name: "nothing left after stripping",
			in:   "12 **",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AirlineName(tt.in)
			if got != tt.want {
				t.Fatalf("AirlineName(%q) = %#v, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestDelayTimes covers the bracketed integer list in both its source form
// (comma-separated) and its re-serialized form (space-separated), plus the
// malformed inputs that resolve to nil.
func TestDelayTimes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want any
	}{
		{name: "comma separated", in: "[21, 40]", want: []int{21, 40}},
		{name: "space separated", in: "[21 40]", want: []int{21, 40}},
		{name: "single element", in: "[60]", want: []int{60}},
		{name: "empty list", in: "[]", want: []int{}},
		{name: "negative element", in: "[-5, 12]", want: []int{-5, 12}},
		{name: "missing brackets", in: "21, 40", want: nil},
		{name: "non-integer element", in: "[21, x]", want: nil},
		{name: "bare text", in: "soon", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DelayTimes(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("DelayTimes(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

// TestFlightCode verifies decimal parsing with truncation toward zero; the
// feed writes codes like "171.00" and the fractional part is never rounded.
func TestFlightCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want any
	}{
		{name: "trailing .00", in: "171.00", want: 171},
		{name: "plain integer", in: "2055", want: 2055},
		{name: "fraction truncates, not rounds", in: "12.9", want: 12},
		{name: "surrounding spaces", in: " 20015.0 ", want: 20015},
		{name: "not a number", in: "n/a", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlightCode(tt.in)
			if got != tt.want {
				t.Fatalf("FlightCode(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

// TestTitleCase verifies per-word capitalization and single-space rejoining.
func TestTitleCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want any
	}{
		{name: "lower and upper mixed", in: "new YORK", want: "New York"},
		{name: "mid-word capitals reset", in: "LONDON HEathrow", want: "London Heathrow"},
		{name: "already titled is stable", in: "New York", want: "New York"},
		{name: "extra spaces collapse", in: "  sao   PAULO ", want: "Sao Paulo"},
		{name: "only whitespace", in: "   ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TitleCase(tt.in)
			if got != tt.want {
				t.Fatalf("TitleCase(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}
