package roster

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonathan/depthchart-compiler/internal/teams"
	"github.com/jonathan/depthchart-compiler/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterFixture = `{
	"athletes": [
		{
			"position": "offense",
			"items": [
				{"fullName": "Patrick Mahomes", "jersey": "15", "position": {"abbreviation": "QB"}},
				{"fullName": "Backup Passer", "jersey": "8", "position": {"abbreviation": "QB"}},
				{"displayName": "Fallback Name", "position": {"abbreviation": "WR"},
				 "status": {"type": "Questionable"}}
			]
		},
		{
			"position": "specialTeam",
			"items": [
				{"fullName": "Leg Booter", "jersey": "7", "position": {"abbreviation": "K"}}
			]
		}
	]
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func kcTeam(t *testing.T) teams.Team {
	t.Helper()
	team, ok := teams.Lookup("KC")
	require.True(t, ok)
	return team
}

func TestFetchRosterMapsAthletes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teams/12/roster", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(rosterFixture))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, time.Second, testLogger())
	records, err := client.FetchRoster(context.Background(), kcTeam(t))
	require.NoError(t, err)
	require.Len(t, records, 4)

	first := records[0]
	assert.Equal(t, "Patrick Mahomes", first.Name)
	assert.Equal(t, "KC", first.Team)
	assert.Equal(t, "QB", first.Position)
	assert.Equal(t, types.GroupOffense, first.PositionGroup)
	assert.Equal(t, "1st", first.DepthRank)
	assert.Equal(t, "15", first.JerseyNumber)
	assert.Equal(t, types.SourceBackupAPI, first.Source)
	assert.Equal(t, types.StatusActive, first.InjuryStatus)

	assert.Equal(t, "2nd", records[1].DepthRank)

	// displayName fallback and status mapping.
	assert.Equal(t, "Fallback Name", records[2].Name)
	assert.Equal(t, "Questionable", records[2].InjuryStatus)

	// Depth rank resets per athlete group.
	assert.Equal(t, "Leg Booter", records[3].Name)
	assert.Equal(t, "1st", records[3].DepthRank)
	assert.Equal(t, types.GroupSpecialTeams, records[3].PositionGroup)
}

func TestFetchRosterHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, time.Second, testLogger())
	_, err := client.FetchRoster(context.Background(), kcTeam(t))
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "KC", apiErr.Team)
}

func TestFetchRosterSkipsNamelessEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"athletes": [{"position": "offense", "items": [{"jersey": "1"}]}]}`))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, time.Second, testLogger())
	records, err := client.FetchRoster(context.Background(), kcTeam(t))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchRosterGroupLabelFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"athletes": [{"position": "offense", "items": [{"fullName": "No Abbrev Guy"}]}]}`))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, time.Second, testLogger())
	records, err := client.FetchRoster(context.Background(), kcTeam(t))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "OFFENSE", records[0].Position)
	assert.Equal(t, types.GroupUnknown, records[0].PositionGroup)
}
