// Package validation checks a compiled record set against roster-size
// expectations and produces a structured report. The validator never blocks
// anything itself; acting on the report is the caller's policy.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/depthchart-compiler/internal/teams"
	"github.com/jonathan/depthchart-compiler/internal/types"
)

// Bounds holds the roster-size expectations. The numbers are tied to a
// specific roster-rule season, so they are configuration, not literals.
type Bounds struct {
	MinPerTeam    int
	MaxPerTeam    int
	ExpectedTotal int
}

// DefaultBounds returns the expectations for a 53-man active roster with
// practice squads across 32 teams.
func DefaultBounds() Bounds {
	return Bounds{
		MinPerTeam:    53,
		MaxPerTeam:    90,
		ExpectedTotal: 2553,
	}
}

// expectedTotalTolerance is the fraction of the expected total below which
// the dataset is considered significantly incomplete.
const expectedTotalTolerance = 0.95

// Validator evaluates record sets against bounds.
type Validator struct {
	bounds Bounds
}

// New creates a Validator. Zero-valued bounds fields fall back to defaults.
func New(bounds Bounds) *Validator {
	defaults := DefaultBounds()
	if bounds.MinPerTeam <= 0 {
		bounds.MinPerTeam = defaults.MinPerTeam
	}
	if bounds.MaxPerTeam <= 0 {
		bounds.MaxPerTeam = defaults.MaxPerTeam
	}
	if bounds.ExpectedTotal <= 0 {
		bounds.ExpectedTotal = defaults.ExpectedTotal
	}
	return &Validator{bounds: bounds}
}

// Validate runs every check over the record set. Checks are independent and
// all evaluated; none short-circuits another.
//
// requested is the number of teams the run asked for; TeamsFailed is
// relative to it, so a deliberate subset run does not report the rest of
// the league as failed. Zero means a full-league run. The missing-teams
// check is always league-wide because the dataset claims league coverage.
func (v *Validator) Validate(records []types.PlayerRecord, teamsProcessed map[string]struct{}, requested int) *types.ValidationReport {
	if requested <= 0 {
		requested = teams.Count
	}
	failed := requested - len(teamsProcessed)
	if failed < 0 {
		failed = 0
	}
	report := &types.ValidationReport{
		TotalPlayers:           len(records),
		TeamsProcessed:         len(teamsProcessed),
		TeamsFailed:            failed,
		ExpectedTotal:          v.bounds.ExpectedTotal,
		PlayersByTeam:          make(map[string]int),
		PlayersByPositionGroup: make(map[types.PositionGroup]int),
		Warnings:               []string{},
		Errors:                 []string{},
	}

	uniqueNames := make(map[string]struct{}, len(records))
	for _, rec := range records {
		report.PlayersByTeam[rec.Team]++
		report.PlayersByPositionGroup[rec.PositionGroup]++
		uniqueNames[rec.Name] = struct{}{}
	}
	report.UniquePlayers = len(uniqueNames)

	v.checkTeamCounts(report)
	v.checkTotal(report)
	v.checkMissingTeams(report, teamsProcessed)

	return report
}

// checkTeamCounts flags teams outside the per-team bounds. Out-of-bounds
// counts are warnings only and never block export.
func (v *Validator) checkTeamCounts(report *types.ValidationReport) {
	codes := make([]string, 0, len(report.PlayersByTeam))
	for team := range report.PlayersByTeam {
		codes = append(codes, team)
	}
	sort.Strings(codes)

	for _, team := range codes {
		count := report.PlayersByTeam[team]
		if count < v.bounds.MinPerTeam {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Team %s has only %d players (expected at least %d)", team, count, v.bounds.MinPerTeam))
		} else if count > v.bounds.MaxPerTeam {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Team %s has %d players (expected at most %d)", team, count, v.bounds.MaxPerTeam))
		}
	}
}

// checkTotal compares the league-wide total against the expected total.
func (v *Validator) checkTotal(report *types.ValidationReport) {
	threshold := float64(v.bounds.ExpectedTotal) * expectedTotalTolerance
	if float64(report.TotalPlayers) < threshold {
		report.Errors = append(report.Errors,
			fmt.Sprintf("Total player count (%d) is significantly below expected (%d)",
				report.TotalPlayers, v.bounds.ExpectedTotal))
		return
	}
	report.MeetsExpectation = true
}

// checkMissingTeams flags any of the 32 codes absent from the processed set.
func (v *Validator) checkMissingTeams(report *types.ValidationReport, teamsProcessed map[string]struct{}) {
	var missing []string
	for _, code := range teams.Codes() {
		if _, ok := teamsProcessed[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		report.Errors = append(report.Errors,
			fmt.Sprintf("Missing teams: %s", strings.Join(missing, ", ")))
	}
}
