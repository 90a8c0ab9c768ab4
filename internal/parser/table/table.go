// Package table implements a schema-driven decoder for small delimited text
// tables. Unlike encoding/csv it performs no quoting or escaping: a line is
// split on the separator, and each positional field is paired with its schema
// column by index. The header line carries no meaning beyond occupying the
// first row; column identity comes from the schema order alone.
package table

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"flightetl/internal/schema"
	"flightetl/pkg/records"
)

// Options configures the table parser. Zero values get sensible defaults.
type Options struct {
	// Sep is the field separator. When empty, ";" is used.
	Sep string

	// HasHeader indicates whether the first line is a header to discard.
	HasHeader bool

	// Schema is the ordered column schema applied to each data line.
	Schema []schema.Column
}

// Parser decodes delimited lines against an ordered column schema. It is
// safe to reuse across inputs; a Parser holds no per-run state.
type Parser struct{ opt Options }

// NewParser constructs a Parser with the provided Options.
func NewParser(opt Options) *Parser {
	if opt.Sep == "" {
		opt.Sep = ";"
	}
	return &Parser{opt: opt}
}

// utf8BOM is stripped from the start of the first line if present.
const utf8BOM = "\ufeff"

// Parse reads lines from r and decodes each data line into a record. The
// header line (when configured) is discarded unread; every remaining line
// yields exactly one record, so the output length always equals the number
// of data lines. Empty input yields an empty slice.
func (p *Parser) Parse(r io.Reader) ([]records.Record, error) {
	sc := bufio.NewScanner(r)

	var out []records.Record
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
			if p.opt.HasHeader {
				continue
			}
		}
		out = append(out, DecodeRow(line, p.opt.Sep, p.opt.Schema))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan table: %w", err)
	}
	return out, nil
}

// DecodeRow splits one raw line on sep and decodes it against cols. Fields
// and columns are matched strictly by position: excess raw fields are
// ignored, and columns beyond the raw field count resolve to nil. An empty
// raw field resolves to nil without invoking the column's coercer.
func DecodeRow(line, sep string, cols []schema.Column) records.Record {
	fields := strings.Split(line, sep)
	rec := make(records.Record, len(cols))
	for i, col := range cols {
		if i >= len(fields) {
			rec[col.Name] = nil
			continue
		}
		raw := fields[i]
		if raw == "" {
			rec[col.Name] = nil
			continue
		}
		if col.Coerce == nil {
			rec[col.Name] = raw
			continue
		}
		rec[col.Name] = col.Coerce(raw)
	}
	return rec
}
