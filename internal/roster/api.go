package roster

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jonathan/depthchart-compiler/internal/parsing"
	"github.com/jonathan/depthchart-compiler/internal/teams"
	"github.com/jonathan/depthchart-compiler/internal/types"
)

// DefaultAPIBaseURL is the ESPN site API root for NFL team rosters.
const DefaultAPIBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"

// rosterResponse mirrors the roster API payload: athletes are grouped by
// side of the ball, each group carrying an ordered item list.
type rosterResponse struct {
	Athletes []athleteGroup `json:"athletes"`
}

type athleteGroup struct {
	Position string         `json:"position"`
	Items    []athleteEntry `json:"items"`
}

type athleteEntry struct {
	FullName    string           `json:"fullName"`
	DisplayName string           `json:"displayName"`
	Jersey      string           `json:"jersey"`
	Position    *athletePosition `json:"position,omitempty"`
	Status      *athleteStatus   `json:"status,omitempty"`
}

type athletePosition struct {
	Abbreviation string `json:"abbreviation"`
}

type athleteStatus struct {
	Type string `json:"type"`
}

// APIClient fetches structured rosters from the backup API.
type APIClient struct {
	http   *resty.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewAPIClient creates a roster API client. An empty baseURL uses the
// default endpoint.
func NewAPIClient(baseURL string, timeout time.Duration, logger *slog.Logger) *APIClient {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	return &APIClient{http: client, logger: logger, now: time.Now}
}

// FetchRoster retrieves the team's roster and maps it to player records
// tagged with backup-API provenance.
func (c *APIClient) FetchRoster(ctx context.Context, team teams.Team) ([]types.PlayerRecord, error) {
	var payload rosterResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/teams/" + team.APIID + "/roster")
	if err != nil {
		return nil, &APIError{Team: team.Code, Message: "request failed", Cause: err}
	}
	if resp.IsError() {
		return nil, &APIError{Team: team.Code, Message: "HTTP status " + resp.Status()}
	}

	records := c.mapRoster(&payload, team)
	c.logger.Info("fetched roster from API", "team", team.Code, "players", len(records))
	return records, nil
}

// mapRoster converts the API payload into canonical records. Depth ranks
// come from item order within each athlete group, clamped to the last
// defined label.
func (c *APIClient) mapRoster(payload *rosterResponse, team teams.Team) []types.PlayerRecord {
	capturedAt := c.now().UTC()
	var records []types.PlayerRecord

	for _, group := range payload.Athletes {
		for i, athlete := range group.Items {
			name := athlete.FullName
			if name == "" {
				name = athlete.DisplayName
			}
			if name == "" {
				continue
			}

			position := athletePositionLabel(group, athlete)
			status := types.StatusActive
			if athlete.Status != nil && athlete.Status.Type != "" {
				status = athlete.Status.Type
			}

			records = append(records, types.PlayerRecord{
				Name:          name,
				Team:          team.Code,
				Position:      position,
				PositionGroup: parsing.ClassifyPosition(position),
				DepthRank:     types.DepthLabel(i),
				InjuryStatus:  status,
				Source:        types.SourceBackupAPI,
				JerseyNumber:  athlete.Jersey,
				CapturedAt:    capturedAt,
			})
		}
	}

	return records
}

// athletePositionLabel prefers the athlete's own position abbreviation over
// the group label, which is a side-of-ball word like "offense".
func athletePositionLabel(group athleteGroup, athlete athleteEntry) string {
	if athlete.Position != nil && athlete.Position.Abbreviation != "" {
		return strings.ToUpper(athlete.Position.Abbreviation)
	}
	if group.Position != "" {
		return strings.ToUpper(group.Position)
	}
	return "UNK"
}
