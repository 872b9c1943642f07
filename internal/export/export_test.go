package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/depthchart-compiler/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []types.PlayerRecord {
	capturedAt := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	return []types.PlayerRecord{
		{
			Name:          "Patrick Mahomes",
			Team:          "KC",
			Position:      "QB",
			PositionGroup: types.GroupOffense,
			DepthRank:     "1st",
			InjuryStatus:  types.StatusActive,
			Source:        types.SourcePrimaryScrape,
			CapturedAt:    capturedAt,
		},
		{
			Name:          "Travis Kelce",
			Team:          "KC",
			Position:      "TE",
			PositionGroup: types.GroupOffense,
			DepthRank:     "1st",
			InjuryStatus:  "Q",
			Source:        types.SourceBackupAPI,
			JerseyNumber:  "87",
			CapturedAt:    capturedAt,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, WriteCSV(sampleRecords(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvColumns, rows[0])
	assert.Equal(t, "Patrick Mahomes", rows[1][0])
	assert.Equal(t, "KC", rows[1][1])
	assert.Equal(t, "Offense", rows[1][4])
	assert.Equal(t, "87", rows[2][7])
	assert.Equal(t, "2025-09-01T12:00:00Z", rows[1][8])
}

func TestWriteCSVEmptyRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteCSV(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(string(data)), "\n")+1) // header only
}

func TestJSONRoundTrip(t *testing.T) {
	compiledAt := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	envelope := BuildEnvelope(sampleRecords(), 1, compiledAt)

	assert.Equal(t, 2, envelope.Metadata.TotalPlayers)
	assert.Equal(t, 2, envelope.Metadata.UniquePlayers)
	assert.Equal(t, CompilerVersion, envelope.Metadata.CompilerVersion)

	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, WriteJSON(envelope, path))

	loaded, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, envelope.Metadata, loaded.Metadata)
	require.Len(t, loaded.Players, 2)
	assert.Equal(t, "Travis Kelce", loaded.Players[1].Name)
}

func TestWriteJSONEmptyDataset(t *testing.T) {
	envelope := BuildEnvelope(nil, 0, time.Now())
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, WriteJSON(envelope, path))
}

func TestWriteReport(t *testing.T) {
	report := &types.ValidationReport{
		TotalPlayers:  100,
		ExpectedTotal: 2553,
		PlayersByTeam: map[string]int{"KC": 100},
		Warnings:      []string{"Team KC has 100 players (expected at most 90)"},
		Errors:        []string{},
	}

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteReport(report, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total_players": 100`)
}

func TestBuildSummary(t *testing.T) {
	report := &types.ValidationReport{
		TotalPlayers:     2553,
		UniquePlayers:    2500,
		TeamsProcessed:   30,
		TeamsFailed:      2,
		ExpectedTotal:    2553,
		MeetsExpectation: true,
		PlayersByPositionGroup: map[types.PositionGroup]int{
			types.GroupOffense: 1200,
			types.GroupDefense: 1100,
		},
		Warnings: []string{"some warning"},
		Errors:   []string{"Missing teams: KC, SF"},
	}

	summary := BuildSummary(report, []string{"SF", "KC"}, time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC))

	assert.Contains(t, summary, "NFL DEPTH CHART COMPILATION SUMMARY")
	assert.Contains(t, summary, "Total Players: 2553")
	assert.Contains(t, summary, "Teams Processed: 30/32")
	assert.Contains(t, summary, "FAILED TEAMS:\n  KC, SF")
	assert.Contains(t, summary, "Offense: 1200")
	assert.Contains(t, summary, "WARNINGS (1):")
	assert.Contains(t, summary, "ERRORS (1):")

	path := filepath.Join(t.TempDir(), "summary.txt")
	require.NoError(t, WriteSummary(summary, path))
}
