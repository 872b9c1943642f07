// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/depthchart-compiler/internal/teams"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Output
	OutputDir  string `json:"output_dir,omitempty"`  // Directory for exported files
	ExportJSON bool   `json:"export_json,omitempty"` // Write the JSON envelope
	ExportCSV  bool   `json:"export_csv,omitempty"`  // Write the CSV export

	// Collection
	Teams       []string `json:"teams,omitempty"`         // Team codes to compile; empty means all
	MaxRetries  int      `json:"max_retries,omitempty" validate:"gte=0,lte=10"`
	TeamDelayMS int      `json:"team_delay_ms,omitempty" validate:"gte=0"`
	UseBrowser  bool     `json:"use_browser,omitempty"` // Use headless browser for JS-rendered pages

	// Validation bounds
	ExpectedTotal     int `json:"expected_total,omitempty" validate:"gte=0"`
	MinPlayersPerTeam int `json:"min_players_per_team,omitempty" validate:"gte=0"`
	MaxPlayersPerTeam int `json:"max_players_per_team,omitempty" validate:"gte=0"`

	// Behavior
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		OutputDir:         "output",
		ExportJSON:        true,
		ExportCSV:         true,
		MaxRetries:        3,
		TeamDelayMS:       1000,
		ExpectedTotal:     2553,
		MinPlayersPerTeam: 53,
		MaxPlayersPerTeam: 90,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.MaxPlayersPerTeam > 0 && c.MinPlayersPerTeam > c.MaxPlayersPerTeam {
		return fmt.Errorf("config error: 'min_players_per_team' exceeds 'max_players_per_team'")
	}

	for _, code := range c.Teams {
		if !teams.IsValid(code) {
			return fmt.Errorf("config error: unknown team code %q", code)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-value fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if len(result.Teams) == 0 {
		result.Teams = defaults.Teams
	}

	if result.MaxRetries == 0 {
		result.MaxRetries = defaults.MaxRetries
	}
	if result.TeamDelayMS == 0 {
		result.TeamDelayMS = defaults.TeamDelayMS
	}
	if result.ExpectedTotal == 0 {
		result.ExpectedTotal = defaults.ExpectedTotal
	}
	if result.MinPlayersPerTeam == 0 {
		result.MinPlayersPerTeam = defaults.MinPlayersPerTeam
	}
	if result.MaxPlayersPerTeam == 0 {
		result.MaxPlayersPerTeam = defaults.MaxPlayersPerTeam
	}

	// Booleans only merge truthy defaults; JSON false is indistinguishable
	// from absent.
	if !result.ExportJSON {
		result.ExportJSON = defaults.ExportJSON
	}
	if !result.ExportCSV {
		result.ExportCSV = defaults.ExportCSV
	}
	if !result.UseBrowser {
		result.UseBrowser = defaults.UseBrowser
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
