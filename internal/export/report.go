package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/depthchart-compiler/internal/types"
)

// WriteReport serializes a validation report to a JSON file.
func WriteReport(report *types.ValidationReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
