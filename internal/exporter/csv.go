// Package exporter writes the normalized records to the comma-delimited
// report file.
package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"optcli/internal/pipeline"
)

// WriteRecords writes one CSV row per record, in order, with the report
// header. The file is created or truncated.
func WriteRecords(path string, records []pipeline.Record) error {
	slog.Info("writing report",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}
