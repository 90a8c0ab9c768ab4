// Package coerce provides per-column field coercers for the flight table.
// A coercer takes one raw, non-empty text field and returns its typed value,
// or nil when the text cannot be interpreted. Coercers never fail hard; the
// pipeline prefers a nil field over a rejected row.
package coerce

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Func converts a raw text field into a typed value. Callers must not invoke
// a Func on the empty string; empty fields are resolved to nil upstream.
type Func func(string) any

// AirlineName strips every rune that is not an ASCII letter or a space, then
// trims surrounding whitespace. Digits, punctuation, and symbols anywhere in
// the value are dropped, e.g. `123 Air Canada **.\` -> "Air Canada".
func AirlineName(raw string) any {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == ' ':
			return r
		}
		return -1
	}, raw)
	return strings.TrimSpace(cleaned)
}

// DelayTimes parses a bracketed integer list such as "[21, 40]" or "[21 40]"
// into a []int. "[]" yields an empty slice. Anything that is not bracketed,
// or contains a non-integer element, yields nil; the feed is assumed to keep
// this column well-formed and malformed values are not repaired.
func DelayTimes(raw string) any {
	s := strings.TrimSpace(raw)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil
	}
	body := strings.FieldsFunc(s[1:len(s)-1], func(r rune) bool {
		return r == ',' || r == ' '
	})
	out := make([]int, 0, len(body))
	for _, tok := range body {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil
		}
		out = append(out, n)
	}
	return out
}

// FlightCode parses a decimal flight code, tolerating values written with a
// fractional part ("171.00"), and truncates toward zero to an int.
func FlightCode(raw string) any {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return int(f)
}

// TitleCase splits the value on internal whitespace, title-cases each word,
// and rejoins with single spaces: "new YORK" -> "New York". A fresh Caser is
// built per call; cases.Caser carries transform state and is not safe to
// share across goroutines.
func TitleCase(raw string) any {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return nil
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}
