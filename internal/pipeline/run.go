// Package pipeline orchestrates the end-to-end depth chart compilation:
// per-team collection, validation, export, and optional persistence.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jonathan/depthchart-compiler/internal/db"
	"github.com/jonathan/depthchart-compiler/internal/export"
	"github.com/jonathan/depthchart-compiler/internal/fetch"
	"github.com/jonathan/depthchart-compiler/internal/roster"
	"github.com/jonathan/depthchart-compiler/internal/teams"
	"github.com/jonathan/depthchart-compiler/internal/types"
	"github.com/jonathan/depthchart-compiler/internal/validation"
)

// Stage identifies a progress event within a run.
type Stage string

const (
	StageTeamStart Stage = "team_start"
	StageTeamDone  Stage = "team_done"
	StageTeamFail  Stage = "team_fail"
	StageValidate  Stage = "validate"
	StageExport    Stage = "export"
)

// ProgressEvent is emitted as the run advances. Team is empty for
// run-level stages. Records carries the team's compiled records on
// StageTeamDone so verbose consumers can summarize them.
type ProgressEvent struct {
	Stage   Stage
	Team    string
	Index   int
	Total   int
	Players int
	Records []types.PlayerRecord
}

// Options configures a compilation run. Zero values get defaults.
type Options struct {
	Teams       []string
	OutputDir   string
	MaxRetries  int
	TeamDelay   time.Duration
	Bounds      validation.Bounds
	DatabaseURL string
	UseBrowser  bool
	ExportJSON  bool
	ExportCSV   bool
	Logger      *slog.Logger
	OnProgress  func(ProgressEvent)

	// Builder overrides the collection layer; tests inject one pointed at
	// local servers.
	Builder *roster.Builder
	Now     func() time.Time
}

// Result is the outcome of a full compilation run.
type Result struct {
	Records        []types.PlayerRecord
	Report         *types.ValidationReport
	TeamsProcessed map[string]struct{}
	FailedTeams    []string
	Elapsed        time.Duration
}

// Run executes the pipeline: each requested team is collected in turn,
// the merged dataset is validated, and exports are written. Individual
// team failures are recorded and do not abort the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.OnProgress == nil {
		opts.OnProgress = func(ProgressEvent) {}
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "output"
	}

	codes := opts.Teams
	if len(codes) == 0 {
		codes = teams.Codes()
	} else {
		codes = append([]string(nil), codes...)
		sort.Strings(codes)
	}

	builder := opts.Builder
	if builder == nil {
		builder = newDefaultBuilder(opts)
	}

	start := opts.Now()
	result := &Result{TeamsProcessed: make(map[string]struct{})}

	for i, code := range codes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i > 0 && opts.TeamDelay > 0 {
			// Fixed inter-team delay keeps request pacing polite.
			select {
			case <-time.After(opts.TeamDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		opts.OnProgress(ProgressEvent{Stage: StageTeamStart, Team: code, Index: i + 1, Total: len(codes)})

		records, err := builder.BuildTeam(ctx, code)
		if err != nil || len(records) == 0 {
			// A team with no records counts as failed even when every
			// source responded.
			opts.Logger.Warn("team compilation failed", "team", code, "error", err)
			result.FailedTeams = append(result.FailedTeams, code)
			opts.OnProgress(ProgressEvent{Stage: StageTeamFail, Team: code, Index: i + 1, Total: len(codes)})
			continue
		}

		result.Records = append(result.Records, records...)
		result.TeamsProcessed[code] = struct{}{}
		opts.Logger.Info("team compiled", "team", code, "players", len(records))
		opts.OnProgress(ProgressEvent{Stage: StageTeamDone, Team: code, Index: i + 1, Total: len(codes), Players: len(records), Records: records})
	}

	opts.OnProgress(ProgressEvent{Stage: StageValidate, Total: len(codes)})
	result.Report = validation.New(opts.Bounds).Validate(result.Records, result.TeamsProcessed, len(codes))

	opts.OnProgress(ProgressEvent{Stage: StageExport, Total: len(codes)})
	if err := writeExports(opts, result); err != nil {
		return result, err
	}

	if opts.DatabaseURL != "" {
		// Persistence is best-effort; file exports are the source of truth.
		if err := persist(ctx, opts, result); err != nil {
			opts.Logger.Warn("database persistence failed", "error", err)
		}
	}

	result.Elapsed = opts.Now().Sub(start)
	return result, nil
}

func newDefaultBuilder(opts Options) *roster.Builder {
	fetchOpts := fetch.DefaultOptions()
	var fetcher fetch.Fetcher = fetch.NewHTTPFetcher(fetchOpts)
	if opts.UseBrowser {
		fetcher = fetch.NewBrowserFetcher(fetcher, opts.Logger, fetchOpts.Timeout)
	}
	fetcher = fetch.NewRetryingFetcher(fetcher, opts.Logger, opts.MaxRetries, 0)

	return roster.NewBuilder(roster.BuilderConfig{
		Fetcher:    fetcher,
		API:        roster.NewAPIClient(roster.DefaultAPIBaseURL, fetchOpts.Timeout, opts.Logger),
		Logger:     opts.Logger,
		MinPerTeam: opts.Bounds.MinPerTeam,
		Now:        opts.Now,
	})
}

func writeExports(opts Options, result *Result) error {
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	compiledAt := opts.Now()

	if opts.ExportCSV {
		path := filepath.Join(opts.OutputDir, "depth_charts.csv")
		if err := export.WriteCSV(result.Records, path); err != nil {
			return err
		}
		opts.Logger.Info("wrote CSV export", "path", path)
	}

	if opts.ExportJSON {
		envelope := export.BuildEnvelope(result.Records, len(result.TeamsProcessed), compiledAt)
		path := filepath.Join(opts.OutputDir, "depth_charts.json")
		if err := export.WriteJSON(envelope, path); err != nil {
			return err
		}
		opts.Logger.Info("wrote JSON export", "path", path)
	}

	if err := export.WriteReport(result.Report, filepath.Join(opts.OutputDir, "validation_report.json")); err != nil {
		return err
	}

	summary := export.BuildSummary(result.Report, result.FailedTeams, compiledAt)
	return export.WriteSummary(summary, filepath.Join(opts.OutputDir, "summary.txt"))
}

func persist(ctx context.Context, opts Options, result *Result) error {
	store, err := db.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.CreateRun(ctx)
	if err != nil {
		return err
	}

	if err := store.UpsertPlayers(ctx, runID, result.Records); err != nil {
		return err
	}
	if err := store.SaveReport(ctx, runID, result.Report); err != nil {
		return err
	}

	status := "completed"
	if result.Report.HasErrors() {
		status = "completed_with_errors"
	}
	return store.CompleteRun(ctx, runID, status)
}
