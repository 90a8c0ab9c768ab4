package builtin

import "flightetl/pkg/records"

// FillSequential backfills missing integer codes by fixed-step extrapolation
// from the most recently seen explicit value. Records are processed strictly
// in input order with a fold-style local counter:
//
//   - explicit code: the counter is reset to it, even when that breaks the
//     arithmetic sequence implied by earlier rows (last explicit value wins);
//   - missing code: the counter advances by Step and the record gets the
//     advanced value, so k consecutive gaps after v fill as v+Step..v+k*Step.
//
// The counter starts at 0 and lives only for one Apply call, keeping the
// transformer reentrant when separate batches are repaired concurrently.
type FillSequential struct {
	// Field is the name of the integer code field to repair.
	Field string

	// Step is the fill increment; 0 means the default of 10.
	Step int
}

func (f FillSequential) Apply(in []records.Record) []records.Record {
	step := f.Step
	if step == 0 {
		step = 10
	}
	current := 0
	for _, r := range in {
		if v, ok := r[f.Field].(int); ok {
			current = v
			continue
		}
		current += step
		r[f.Field] = current
	}
	return in
}
