package roster

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/depthchart-compiler/internal/fetch"
	"github.com/jonathan/depthchart-compiler/internal/teams"
	"github.com/jonathan/depthchart-compiler/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageFetcher serves canned bodies by URL.
type pageFetcher struct {
	pages map[string]string
}

func (f *pageFetcher) Fetch(_ context.Context, urlStr string) (*fetch.Result, error) {
	body, ok := f.pages[urlStr]
	if !ok {
		return nil, fmt.Errorf("%w: %s", fetch.ErrUnavailable, urlStr)
	}
	return &fetch.Result{URL: urlStr, Body: body, StatusCode: 200}, nil
}

const depthChartHTML = `
<table>
	<tr><th>QB</th></tr>
	<tr><td>Player One</td></tr>
	<tr><td>Player Two (Q)</td></tr>
	<tr><th>RB</th></tr>
	<tr><td>Player Three</td></tr>
</table>`

func newTestBuilder(pages map[string]string, api *APIClient, minPerTeam int) *Builder {
	return NewBuilder(BuilderConfig{
		Fetcher:    &pageFetcher{pages: pages},
		API:        api,
		Logger:     testLogger(),
		MinPerTeam: minPerTeam,
		ScrapeURLs: func(team teams.Team) []string {
			return []string{"http://test/" + team.Slug + "/depth"}
		},
		Now: func() time.Time { return time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC) },
	})
}

func TestBuildTeamEndToEnd(t *testing.T) {
	builder := newTestBuilder(map[string]string{"http://test/kc/depth": depthChartHTML}, nil, 1)

	records, err := builder.BuildTeam(context.Background(), "KC")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Player One", records[0].Name)
	assert.Equal(t, "QB", records[0].Position)
	assert.Equal(t, types.GroupOffense, records[0].PositionGroup)
	assert.Equal(t, "1st", records[0].DepthRank)
	assert.Equal(t, types.StatusActive, records[0].InjuryStatus)

	assert.Equal(t, "Player Two", records[1].Name)
	assert.Equal(t, "2nd", records[1].DepthRank)
	assert.Equal(t, "Q", records[1].InjuryStatus)

	assert.Equal(t, "Player Three", records[2].Name)
	assert.Equal(t, "RB", records[2].Position)
	assert.Equal(t, "1st", records[2].DepthRank)

	for _, rec := range records {
		assert.Equal(t, "KC", rec.Team)
		assert.Equal(t, types.SourcePrimaryScrape, rec.Source)
		assert.False(t, rec.CapturedAt.IsZero())
	}
}

func TestBuildTeamUnknownCode(t *testing.T) {
	fetcher := &pageFetcher{pages: map[string]string{}}
	builder := NewBuilder(BuilderConfig{Fetcher: fetcher, Logger: testLogger()})

	records, err := builder.BuildTeam(context.Background(), "ZZZ")
	require.Error(t, err)
	assert.Nil(t, records)

	var unknownErr *UnknownTeamError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "ZZZ", unknownErr.Code)
}

func TestBuildTeamDiscardsNoiseTokens(t *testing.T) {
	html := `
	<table>
		<tr><th>QB</th></tr>
		<tr><td>OK</td></tr>
		<tr><td>--</td></tr>
		<tr><td>Real Player</td></tr>
	</table>`
	builder := newTestBuilder(map[string]string{"http://test/kc/depth": html}, nil, 1)

	records, err := builder.BuildTeam(context.Background(), "KC")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Real Player", records[0].Name)
}

func TestBuildTeamAPIFallbackWhenUnderYield(t *testing.T) {
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(rosterFixture))
	}))
	defer apiServer.Close()

	api := NewAPIClient(apiServer.URL, time.Second, testLogger())
	builder := newTestBuilder(map[string]string{"http://test/kc/depth": depthChartHTML}, api, 53)

	records, err := builder.BuildTeam(context.Background(), "KC")
	require.NoError(t, err)

	// 3 scraped + 4 from the API, no identity collisions.
	require.Len(t, records, 7)
	// Scrape records come first and keep priority.
	assert.Equal(t, types.SourcePrimaryScrape, records[0].Source)
	assert.Equal(t, types.SourceBackupAPI, records[3].Source)
}

func TestBuildTeamScrapePriorityOnCollision(t *testing.T) {
	// API returns the same player-slot as the scrape with a jersey number;
	// the scraped record must win whole-record.
	apiJSON := `{"athletes": [{"position": "offense", "items": [
		{"fullName": "Player One", "jersey": "15", "position": {"abbreviation": "QB"}}
	]}]}`
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(apiJSON))
	}))
	defer apiServer.Close()

	api := NewAPIClient(apiServer.URL, time.Second, testLogger())
	builder := newTestBuilder(map[string]string{"http://test/kc/depth": depthChartHTML}, api, 53)

	records, err := builder.BuildTeam(context.Background(), "KC")
	require.NoError(t, err)
	require.Len(t, records, 3)

	for _, rec := range records {
		if rec.Name == "Player One" {
			assert.Equal(t, types.SourcePrimaryScrape, rec.Source)
			assert.Empty(t, rec.JerseyNumber)
		}
	}
}

func TestBuildTeamAllSourcesUnavailable(t *testing.T) {
	builder := newTestBuilder(map[string]string{}, nil, 53)

	records, err := builder.BuildTeam(context.Background(), "KC")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestBuildTeamKeepsScrapeWhenAPIFails(t *testing.T) {
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer apiServer.Close()

	api := NewAPIClient(apiServer.URL, time.Second, testLogger())
	builder := newTestBuilder(map[string]string{"http://test/kc/depth": depthChartHTML}, api, 53)

	records, err := builder.BuildTeam(context.Background(), "KC")
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestBuildTeamTriesNextURLOnFailure(t *testing.T) {
	builder := NewBuilder(BuilderConfig{
		Fetcher: &pageFetcher{pages: map[string]string{
			"http://test/kc/roster": depthChartHTML,
		}},
		Logger:     testLogger(),
		MinPerTeam: 1,
		ScrapeURLs: func(team teams.Team) []string {
			return []string{
				"http://test/" + team.Slug + "/depth",
				"http://test/" + team.Slug + "/roster",
			}
		},
	})

	records, err := builder.BuildTeam(context.Background(), "KC")
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.True(t, strings.HasPrefix(records[0].Name, "Player"))
}
