package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/depthchart-compiler/internal/schemas"
	"github.com/jonathan/depthchart-compiler/internal/types"
)

// CompilerVersion is stamped into every export envelope.
const CompilerVersion = "1.0.0"

// Metadata is the envelope header for a structured export.
type Metadata struct {
	CompiledAt      string `json:"compiled_at"`
	TotalPlayers    int    `json:"total_players"`
	UniquePlayers   int    `json:"unique_players"`
	TeamsProcessed  int    `json:"teams_processed"`
	CompilerVersion string `json:"compiler_version"`
}

// Envelope is the structured export document: metadata plus all records.
type Envelope struct {
	Metadata Metadata             `json:"metadata"`
	Players  []types.PlayerRecord `json:"players"`
}

// BuildEnvelope assembles the export document for a record set.
func BuildEnvelope(records []types.PlayerRecord, teamsProcessed int, compiledAt time.Time) *Envelope {
	unique := make(map[string]struct{}, len(records))
	for _, rec := range records {
		unique[rec.Name] = struct{}{}
	}
	players := records
	if players == nil {
		players = []types.PlayerRecord{}
	}
	return &Envelope{
		Metadata: Metadata{
			CompiledAt:      compiledAt.UTC().Format(time.RFC3339),
			TotalPlayers:    len(records),
			UniquePlayers:   len(unique),
			TeamsProcessed:  teamsProcessed,
			CompilerVersion: CompilerVersion,
		},
		Players: players,
	}
}

// WriteJSON validates the envelope against the export schema and writes it
// out with indentation.
func WriteJSON(envelope *Envelope, path string) error {
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}

	if err := schemas.ValidateExport(data); err != nil {
		return fmt.Errorf("export failed schema validation: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON export %s: %w", path, err)
	}
	return nil
}

// ReadJSON loads a previously written export document.
func ReadJSON(path string) (*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export %s: %w", path, err)
	}

	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse export %s: %w", path, err)
	}
	return &envelope, nil
}
