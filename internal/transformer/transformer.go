// Package transformer defines the record transformation contract and an
// ordered chain for composing transforms.
package transformer

import "flightetl/pkg/records"

// Transformer rewrites a batch of records. Implementations may mutate
// records in place and must preserve slice order.
type Transformer interface {
	Apply([]records.Record) []records.Record
}

// Chain is an ordered list of transformers applied left to right.
type Chain []Transformer

func (c Chain) Apply(in []records.Record) []records.Record {
	out := in
	for _, t := range c {
		out = t.Apply(out)
	}
	return out
}
