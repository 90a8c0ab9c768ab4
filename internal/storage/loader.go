package storage

import (
	"context"
	"fmt"
	"log"
	"time"
)

// CopyFn abstracts a backend's bulk insert capability. Implementations
// insert the provided rows (aligned to the column order) and return the
// number of rows written. Repository.CopyFrom satisfies this shape.
type CopyFn func(ctx context.Context, columns []string, rows [][]any) (int64, error)

// LoadBatches drains rows from in, groups them into batches of batchSize,
// and calls copyFn for each non-empty batch. It returns the total number of
// rows reported by copyFn and the first error encountered. On cancellation
// it returns (total, ctx.Err()). A concise progress line with running totals
// and instantaneous rows/sec is logged on every successful flush.
func LoadBatches(
	ctx context.Context,
	columns []string,
	in <-chan []any,
	batchSize int,
	copyFn CopyFn,
) (int64, error) {
	if batchSize <= 0 {
		return 0, fmt.Errorf("batchSize must be > 0")
	}
	if copyFn == nil {
		return 0, fmt.Errorf("copyFn must not be nil")
	}

	var (
		total       int64
		batches     int64
		batch       = make([][]any, 0, batchSize)
		lastFlushTS = time.Now()
		lastTotal   int64
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := copyFn(ctx, columns, batch)
		total += n
		if err != nil {
			return err
		}
		batches++

		now := time.Now()
		elapsed := now.Sub(lastFlushTS).Seconds()
		rate := float64(total-lastTotal)
		if elapsed > 0 {
			rate /= elapsed
		}
		log.Printf("load: batch=%d rows=%d total=%d (%.0f rows/s)", batches, n, total, rate)
		lastFlushTS = now
		lastTotal = total

		batch = batch[:0]
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		case row, ok := <-in:
			if !ok {
				if err := flush(); err != nil {
					return total, err
				}
				return total, nil
			}
			batch = append(batch, row)
			if len(batch) >= batchSize {
				if err := flush(); err != nil {
					return total, err
				}
			}
		}
	}
}
