// Package export serializes compiled record sets and validation reports to
// tabular and structured sinks.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/depthchart-compiler/internal/types"
)

// csvColumns is the fixed column set for tabular export.
var csvColumns = []string{
	"name", "team", "position", "depth", "position_group",
	"injury_status", "source", "jersey_number", "captured_at",
}

// WriteCSV serializes records to a CSV file, one row per record.
func WriteCSV(records []types.PlayerRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(csvColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Name,
			rec.Team,
			rec.Position,
			rec.DepthRank,
			string(rec.PositionGroup),
			rec.InjuryStatus,
			string(rec.Source),
			rec.JerseyNumber,
			rec.CapturedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
