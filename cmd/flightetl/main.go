// Command flightetl parses a semicolon-delimited flight table, repairs
// missing flight codes, and either prints the re-serialized table to stdout
// or loads the records into a configured storage backend. The CLI layer
// stays thin: it supplies raw text to the pipeline and hands the resulting
// records to a storage-agnostic Repository, never importing drivers
// directly.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"flightetl/internal/config"
	"flightetl/internal/pipeline"
	"flightetl/internal/storage"
	"flightetl/pkg/records"

	// register all storage backends with the factory.
	_ "flightetl/internal/storage/all"
)

func main() {
	var (
		inPath   string
		cfgPath  string
		validate bool
	)

	flag.StringVar(&inPath, "in", "", "input flight table path (empty or - for stdin)")
	flag.StringVar(&cfgPath, "config", "", "pipeline config JSON path; when empty the parsed table is re-serialized to stdout")
	flag.BoolVar(&validate, "validate", false, "validate the configuration and exit")
	flag.Parse()

	if cfgPath == "" {
		recs, err := parseFrom(inPath)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Println(pipeline.Serialize(recs))
		return
	}

	p, err := config.Load(cfgPath)
	if err != nil {
		fatalf("%v", err)
	}

	issues := config.ValidatePipeline(p)
	hasError := false
	for _, iss := range issues {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
		if iss.Severity == config.SeverityError {
			hasError = true
		}
	}
	if hasError {
		fatalf("configuration is invalid: %v", cfgPath)
	}
	if validate {
		log.Printf("configuration is valid: %v", cfgPath)
		return
	}

	if inPath == "" {
		inPath = p.Source.Path
	}
	recs, err := parseFrom(inPath)
	if err != nil {
		fatalf("%v", err)
	}

	if err := runLoad(context.Background(), p, recs); err != nil {
		fatalf("load: %v", err)
	}
}

// parseFrom parses the flight table at path; "" or "-" reads stdin.
func parseFrom(path string) ([]records.Record, error) {
	if path == "" || path == "-" {
		return pipeline.Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return pipeline.Parse(f)
}

// runLoad projects records to rows and streams them into the configured
// backend: a producer feeds a bounded channel while the batched loader
// drains it, so peak memory stays around one batch plus the buffer.
func runLoad(ctx context.Context, p config.Pipeline, recs []records.Record) error {
	columns := pipeline.OutputColumns
	if p.Storage.DB.Fingerprint {
		columns = append(append([]string{}, columns...), storage.FingerprintColumn)
	}
	rows := storage.Rows(recs, pipeline.OutputColumns, p.Storage.DB.Fingerprint)

	repo, err := storage.New(ctx, storage.Config{
		Kind:       p.Storage.Kind,
		DSN:        p.Storage.DB.DSN,
		Table:      p.Storage.DB.Table,
		Columns:    columns,
		KeyColumns: p.Storage.DB.KeyColumns,
	})
	if err != nil {
		return err
	}
	defer repo.Close()

	if p.Storage.DB.AutoCreateTable {
		if err := storage.EnsureTable(ctx, repo, storage.Config{
			Kind:    p.Storage.Kind,
			Table:   p.Storage.DB.Table,
			Columns: columns,
		}); err != nil {
			return err
		}
	}

	batchSize := p.Runtime.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}
	buffer := p.Runtime.ChannelBuffer
	if buffer <= 0 {
		buffer = 256
	}

	g, ctx := errgroup.WithContext(ctx)
	ch := make(chan []any, buffer)

	g.Go(func() error {
		defer close(ch)
		for _, row := range rows {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ch <- row:
			}
		}
		return nil
	})

	g.Go(func() error {
		total, err := storage.LoadBatches(ctx, columns, ch, batchSize, repo.CopyFrom)
		if err != nil {
			return err
		}
		log.Printf("load: done, %d rows into %s/%s", total, p.Storage.Kind, p.Storage.DB.Table)
		return nil
	})

	return g.Wait()
}

func fatalf(format string, args ...any) {
	log.Printf(format, args...)
	os.Exit(1)
}
