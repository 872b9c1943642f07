package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/depthchart-compiler/internal/config"
	"github.com/jonathan/depthchart-compiler/internal/observability"
	"github.com/jonathan/depthchart-compiler/internal/pipeline"
	"github.com/jonathan/depthchart-compiler/internal/teams"
	"github.com/jonathan/depthchart-compiler/internal/validation"
)

var compileCommand = &cobra.Command{
	Use:   "compile",
	Short: "Compile depth charts for all teams end-to-end",
	Long: `Collects each team's depth chart, merges scraped and API records, validates the dataset, and writes CSV/JSON exports plus a validation report.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runCompileCmd,
}

var (
	compileConfigPath   string
	compileTeams        []string
	compileOutputDir    string
	compileMaxRetries   int
	compileTeamDelayMS  int
	compileExpected     int
	compileMinPlayers   int
	compileMaxPlayers   int
	compileUseBrowser   bool
	compileVerbose      bool
	compileDatabaseURL  string
	compileNoJSON       bool
	compileNoCSV        bool
	compileValidateOnly bool
)

func init() {
	// Config file flag (processed first)
	compileCommand.Flags().StringVar(&compileConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	compileCommand.Flags().StringSliceVarP(&compileTeams, "teams", "t", nil, "Team codes to compile (default: all 32)")
	compileCommand.Flags().StringVarP(&compileOutputDir, "output-dir", "o", "", "Directory for exported files")
	compileCommand.Flags().IntVar(&compileMaxRetries, "max-retries", 0, "Fetch attempts per page")
	compileCommand.Flags().IntVar(&compileTeamDelayMS, "team-delay-ms", 0, "Delay between teams in milliseconds")
	compileCommand.Flags().IntVar(&compileExpected, "expected-total", 0, "Expected league-wide player count")
	compileCommand.Flags().IntVar(&compileMinPlayers, "min-players", 0, "Minimum players per team before warning")
	compileCommand.Flags().IntVar(&compileMaxPlayers, "max-players", 0, "Maximum players per team before warning")
	compileCommand.Flags().BoolVar(&compileUseBrowser, "use-browser", false, "Use headless browser for JS-rendered pages (requires Chrome)")
	compileCommand.Flags().BoolVarP(&compileVerbose, "verbose", "v", false, "Print detailed progress information")
	compileCommand.Flags().BoolVar(&compileNoJSON, "no-json", false, "Skip the JSON export")
	compileCommand.Flags().BoolVar(&compileNoCSV, "no-csv", false, "Skip the CSV export")
	compileCommand.Flags().BoolVar(&compileValidateOnly, "validate-only", false, "Skip collection and validate the existing JSON export in the output directory")

	// Database URL for run persistence
	compileCommand.Flags().StringVar(&compileDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(compileCommand)
}

func runCompileCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if compileConfigPath != "" {
		loadedCfg, err := config.LoadConfig(compileConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if compileVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", compileConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("teams") {
		cfg.Teams = compileTeams
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = compileOutputDir
	}
	if cmd.Flags().Changed("max-retries") {
		cfg.MaxRetries = compileMaxRetries
	}
	if cmd.Flags().Changed("team-delay-ms") {
		cfg.TeamDelayMS = compileTeamDelayMS
	}
	if cmd.Flags().Changed("expected-total") {
		cfg.ExpectedTotal = compileExpected
	}
	if cmd.Flags().Changed("min-players") {
		cfg.MinPlayersPerTeam = compileMinPlayers
	}
	if cmd.Flags().Changed("max-players") {
		cfg.MaxPlayersPerTeam = compileMaxPlayers
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = compileUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = compileVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = compileDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 4: Database URL handling (persistence is optional)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	bounds := validation.Bounds{
		MinPerTeam:    cfg.MinPlayersPerTeam,
		MaxPerTeam:    cfg.MaxPlayersPerTeam,
		ExpectedTotal: cfg.ExpectedTotal,
	}

	// Validate-only runs touch no network: they re-check the export from a
	// previous compile.
	if compileValidateOnly {
		return validateExportFile(filepath.Join(cfg.OutputDir, "depth_charts.json"), bounds)
	}

	exportJSON := cfg.ExportJSON && !compileNoJSON
	exportCSV := cfg.ExportCSV && !compileNoCSV

	logLevel := slog.LevelWarn
	if cfg.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	printer := observability.NewPrinter(os.Stdout)
	codes := cfg.Teams
	if len(codes) == 0 {
		codes = teams.Codes()
	}
	if cfg.Verbose {
		printer.PrintRunHeader(codes, cfg.MinPlayersPerTeam, cfg.MaxPlayersPerTeam, cfg.ExpectedTotal)
	}

	opts := pipeline.Options{
		Teams:       cfg.Teams,
		OutputDir:   cfg.OutputDir,
		MaxRetries:  cfg.MaxRetries,
		TeamDelay:   time.Duration(cfg.TeamDelayMS) * time.Millisecond,
		Bounds:      bounds,
		DatabaseURL: cfg.DatabaseURL,
		UseBrowser:  cfg.UseBrowser,
		ExportJSON:  exportJSON,
		ExportCSV:   exportCSV,
		Logger:      logger,
		OnProgress: func(ev pipeline.ProgressEvent) {
			switch ev.Stage {
			case pipeline.StageTeamDone:
				if cfg.Verbose {
					printer.PrintTeamResult(ev.Team, ev.Records)
					return
				}
				fmt.Fprintf(os.Stdout, "[%d/%d] %s: %d players\n", ev.Index, ev.Total, ev.Team, ev.Players)
			case pipeline.StageTeamFail:
				fmt.Fprintf(os.Stdout, "[%d/%d] %s: FAILED\n", ev.Index, ev.Total, ev.Team)
			}
		},
	}

	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintReport(result.Report)
	}
	fmt.Fprintf(os.Stdout, "Compiled %d players from %d teams in %s\n",
		len(result.Records), len(result.TeamsProcessed), result.Elapsed.Round(time.Second))

	if result.Report.HasErrors() {
		return fmt.Errorf("validation failed with %d errors", len(result.Report.Errors))
	}
	return nil
}
