package roster

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/depthchart-compiler/internal/extraction"
	"github.com/jonathan/depthchart-compiler/internal/fetch"
	"github.com/jonathan/depthchart-compiler/internal/merge"
	"github.com/jonathan/depthchart-compiler/internal/parsing"
	"github.com/jonathan/depthchart-compiler/internal/teams"
	"github.com/jonathan/depthchart-compiler/internal/types"
)

// MinNameLength is the shortest normalized name accepted as a player.
// Shorter tokens are whitespace artifacts or stray punctuation, not errors.
const MinNameLength = 3

// DefaultMinPlayersPerTeam is the scrape yield below which the builder
// invokes the roster API fallback.
const DefaultMinPlayersPerTeam = 53

// defaultScrapeURLs returns the ranked candidate page URLs for a team: the
// depth chart page first, the roster page second.
func defaultScrapeURLs(team teams.Team) []string {
	return []string{
		"https://www.espn.com/nfl/team/depth/_/name/" + team.Slug,
		"https://www.espn.com/nfl/team/roster/_/name/" + team.Slug,
	}
}

// BuilderConfig configures a Builder. Zero values get defaults.
type BuilderConfig struct {
	Fetcher    fetch.Fetcher
	API        *APIClient
	Logger     *slog.Logger
	MinPerTeam int
	// ScrapeURLs overrides the candidate page URLs per team; tests point it
	// at a local server.
	ScrapeURLs func(teams.Team) []string
	Now        func() time.Time
}

// Builder produces canonical player records for one team at a time.
type Builder struct {
	fetcher    fetch.Fetcher
	api        *APIClient
	logger     *slog.Logger
	minPerTeam int
	scrapeURLs func(teams.Team) []string
	now        func() time.Time
}

// NewBuilder creates a Builder from config.
func NewBuilder(cfg BuilderConfig) *Builder {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.MinPerTeam <= 0 {
		cfg.MinPerTeam = DefaultMinPlayersPerTeam
	}
	if cfg.ScrapeURLs == nil {
		cfg.ScrapeURLs = defaultScrapeURLs
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Builder{
		fetcher:    cfg.Fetcher,
		api:        cfg.API,
		logger:     cfg.Logger,
		minPerTeam: cfg.MinPerTeam,
		scrapeURLs: cfg.ScrapeURLs,
		now:        cfg.Now,
	}
}

// BuildTeam compiles the record set for one team code. Unknown codes are
// rejected before any fetch. If the scrape under-yields, the roster API is
// queried and the two candidate sets are deduplicated with scrape priority;
// the larger result wins.
func (b *Builder) BuildTeam(ctx context.Context, code string) ([]types.PlayerRecord, error) {
	team, ok := teams.Lookup(code)
	if !ok {
		return nil, &UnknownTeamError{Code: code}
	}

	scraped := b.scrapeTeam(ctx, team)
	if len(scraped) >= b.minPerTeam {
		return scraped, nil
	}

	b.logger.Warn("scrape under-yielded, trying roster API",
		"team", team.Code, "scraped", len(scraped), "min", b.minPerTeam)

	apiRecords, err := b.fetchAPI(ctx, team)
	if err != nil {
		b.logger.Warn("roster API fallback failed", "team", team.Code, "err", err)
		return scraped, nil
	}

	merged := merge.Merge(scraped, apiRecords)
	if len(merged) > len(scraped) {
		return merged, nil
	}
	return scraped, nil
}

// scrapeTeam tries each candidate page URL in rank order and keeps the
// first one that yields records. A fetch failure on one URL is not fatal;
// the next candidate is tried.
func (b *Builder) scrapeTeam(ctx context.Context, team teams.Team) []types.PlayerRecord {
	for _, pageURL := range b.scrapeURLs(team) {
		result, err := b.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			b.logger.Warn("page unavailable", "team", team.Code, "url", pageURL, "err", err)
			continue
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.Body))
		if err != nil {
			b.logger.Warn("failed to parse page", "team", team.Code, "url", pageURL, "err", err)
			continue
		}

		slots := extraction.Extract(doc)
		records := b.buildRecords(team, slots)
		if len(records) > 0 {
			b.logger.Info("scraped depth chart", "team", team.Code, "url", pageURL, "players", len(records))
			return records
		}
	}
	return nil
}

// buildRecords turns extracted slots into canonical records, discarding
// noise tokens.
func (b *Builder) buildRecords(team teams.Team, slots []extraction.Slot) []types.PlayerRecord {
	capturedAt := b.now().UTC()
	records := make([]types.PlayerRecord, 0, len(slots))

	for _, slot := range slots {
		name, status := parsing.ParsePlayerText(slot.RawText)
		if utf8.RuneCountInString(name) < MinNameLength {
			continue
		}

		records = append(records, types.PlayerRecord{
			Name:          name,
			Team:          team.Code,
			Position:      slot.Position,
			PositionGroup: parsing.ClassifyPosition(slot.Position),
			DepthRank:     types.DepthLabel(slot.DepthIndex),
			InjuryStatus:  status,
			Source:        types.SourcePrimaryScrape,
			CapturedAt:    capturedAt,
		})
	}

	return records
}

func (b *Builder) fetchAPI(ctx context.Context, team teams.Team) ([]types.PlayerRecord, error) {
	if b.api == nil {
		return nil, &APIError{Team: team.Code, Message: "no API client configured"}
	}
	return b.api.FetchRoster(ctx, team)
}
