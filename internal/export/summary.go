package export

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/depthchart-compiler/internal/types"
)

const bannerWidth = 80

// BuildSummary renders a human-readable text summary of a compilation run.
func BuildSummary(report *types.ValidationReport, failedTeams []string, compiledAt time.Time) string {
	banner := strings.Repeat("=", bannerWidth)

	lines := []string{
		banner,
		"NFL DEPTH CHART COMPILATION SUMMARY",
		banner,
		fmt.Sprintf("Compilation Date: %s", compiledAt.UTC().Format("2006-01-02 15:04:05 UTC")),
		"",
		"STATISTICS:",
		fmt.Sprintf("  Total Players: %d", report.TotalPlayers),
		fmt.Sprintf("  Unique Players: %d", report.UniquePlayers),
		fmt.Sprintf("  Teams Processed: %d/32", report.TeamsProcessed),
		fmt.Sprintf("  Teams Failed: %d", report.TeamsFailed),
		fmt.Sprintf("  Expected Total: %d", report.ExpectedTotal),
		fmt.Sprintf("  Meets Expectation: %t", report.MeetsExpectation),
		"",
	}

	if len(failedTeams) > 0 {
		sorted := append([]string(nil), failedTeams...)
		sort.Strings(sorted)
		lines = append(lines,
			"FAILED TEAMS:",
			fmt.Sprintf("  %s", strings.Join(sorted, ", ")),
			"")
	}

	lines = append(lines, "POSITION GROUP BREAKDOWN:")
	groups := make([]string, 0, len(report.PlayersByPositionGroup))
	for group := range report.PlayersByPositionGroup {
		groups = append(groups, string(group))
	}
	sort.Strings(groups)
	for _, group := range groups {
		lines = append(lines, fmt.Sprintf("  %s: %d", group, report.PlayersByPositionGroup[types.PositionGroup(group)]))
	}

	if len(report.Warnings) > 0 {
		lines = append(lines, "", fmt.Sprintf("WARNINGS (%d):", len(report.Warnings)))
		for _, w := range report.Warnings {
			lines = append(lines, fmt.Sprintf("  - %s", w))
		}
	}
	if len(report.Errors) > 0 {
		lines = append(lines, "", fmt.Sprintf("ERRORS (%d):", len(report.Errors)))
		for _, e := range report.Errors {
			lines = append(lines, fmt.Sprintf("  - %s", e))
		}
	}

	lines = append(lines, banner)
	return strings.Join(lines, "\n")
}

// WriteSummary writes the text summary to a file.
func WriteSummary(summary, path string) error {
	if err := os.WriteFile(path, []byte(summary+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write summary %s: %w", path, err)
	}
	return nil
}
