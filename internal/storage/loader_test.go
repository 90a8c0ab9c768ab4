package storage

import (
	"context"
	"errors"
	"testing"
)

func feedRows(n int) chan []any {
	ch := make(chan []any, n)
	for i := 0; i < n; i++ {
		ch <- []any{i}
	}
	close(ch)
	return ch
}

// TestLoadBatches_FlushesInBatchSizes verifies rows group into full batches
// plus one trailing partial flush, in order.
func TestLoadBatches_FlushesInBatchSizes(t *testing.T) {
	var sizes []int
	copyFn := func(ctx context.Context, columns []string, rows [][]any) (int64, error) {
		sizes = append(sizes, len(rows))
		return int64(len(rows)), nil
	}

	total, err := LoadBatches(context.Background(), []string{"n"}, feedRows(7), 3, copyFn)
	if err != nil {
		t.Fatalf("LoadBatches: %v", err)
	}
	if total != 7 {
		t.Fatalf("total = %d, want 7", total)
	}
	if len(sizes) != 3 || sizes[0] != 3 || sizes[1] != 3 || sizes[2] != 1 {
		t.Fatalf("batch sizes = %v, want [3 3 1]", sizes)
	}
}

func TestLoadBatches_EmptyChannel(t *testing.T) {
	calls := 0
	copyFn := func(ctx context.Context, columns []string, rows [][]any) (int64, error) {
		calls++
		return 0, nil
	}

	total, err := LoadBatches(context.Background(), []string{"n"}, feedRows(0), 5, copyFn)
	if err != nil {
		t.Fatalf("LoadBatches: %v", err)
	}
	if total != 0 || calls != 0 {
		t.Fatalf("total = %d calls = %d, want 0 and 0", total, calls)
	}
}

// TestLoadBatches_PropagatesCopyError verifies the first copy error stops
// the loader and surfaces to the caller.
func TestLoadBatches_PropagatesCopyError(t *testing.T) {
	boom := errors.New("copy failed")
	copyFn := func(ctx context.Context, columns []string, rows [][]any) (int64, error) {
		return 0, boom
	}

	_, err := LoadBatches(context.Background(), []string{"n"}, feedRows(4), 2, copyFn)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestLoadBatches_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan []any) // never fed, never closed
	_, err := LoadBatches(ctx, []string{"n"}, in, 2, func(context.Context, []string, [][]any) (int64, error) {
		return 0, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestLoadBatches_RejectsBadArgs(t *testing.T) {
	if _, err := LoadBatches(context.Background(), nil, feedRows(0), 0, func(context.Context, []string, [][]any) (int64, error) {
		return 0, nil
	}); err == nil {
		t.Fatalf("expected error for batchSize 0")
	}
	if _, err := LoadBatches(context.Background(), nil, feedRows(0), 1, nil); err == nil {
		t.Fatalf("expected error for nil copyFn")
	}
}
