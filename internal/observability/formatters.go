// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/depthchart-compiler/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRunHeader outputs the run parameters before compilation starts.
func (p *Printer) PrintRunHeader(teamCodes []string, minPerTeam, maxPerTeam, expectedTotal int) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Teams:          %d\n", len(teamCodes)))
	count := min(len(teamCodes), maxItemsToShow)
	if count > 0 {
		shown := strings.Join(teamCodes[:count], ", ")
		if len(teamCodes) > maxItemsToShow {
			shown += fmt.Sprintf(", ... and %d more", len(teamCodes)-maxItemsToShow)
		}
		sb.WriteString(fmt.Sprintf("                %s\n", shown))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Roster bounds:  %d-%d per team\n", minPerTeam, maxPerTeam))
	sb.WriteString(fmt.Sprintf("Expected total: %d players", expectedTotal))

	p.printBox("DEPTH CHART COMPILATION", sb.String())
}

// PrintTeamResult outputs a one-team summary after its depth chart is built.
func (p *Printer) PrintTeamResult(team string, records []types.PlayerRecord) {
	if len(records) == 0 {
		return
	}

	byGroup := make(map[types.PositionGroup]int)
	for _, rec := range records {
		byGroup[rec.PositionGroup]++
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Players found: %d\n", len(records)))

	groups := make([]string, 0, len(byGroup))
	for g := range byGroup {
		groups = append(groups, string(g))
	}
	sort.Strings(groups)
	for _, g := range groups {
		sb.WriteString(fmt.Sprintf("  • %-14s %d\n", g, byGroup[types.PositionGroup(g)]))
	}

	p.printBox(fmt.Sprintf("TEAM %s", team), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the validation report findings.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(report *types.ValidationReport) {
	if report == nil {
		return
	}

	if len(report.Warnings) == 0 && len(report.Errors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ VALIDATION PASSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total players:  %d / %d expected\n", report.TotalPlayers, report.ExpectedTotal))
	sb.WriteString(fmt.Sprintf("Teams:          %d processed, %d failed\n", report.TeamsProcessed, report.TeamsFailed))

	if len(report.Errors) > 0 {
		sb.WriteString("\n")
		count := min(len(report.Errors), maxItemsToShow)
		for i := 0; i < count; i++ {
			msg := report.Errors[i]
			if len(msg) > 45 {
				msg = msg[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("✗ %s\n", msg))
		}
		if len(report.Errors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more errors\n", len(report.Errors)-maxItemsToShow))
		}
	}

	if len(report.Warnings) > 0 {
		sb.WriteString("\n")
		count := min(len(report.Warnings), maxItemsToShow)
		for i := 0; i < count; i++ {
			msg := report.Warnings[i]
			if len(msg) > 45 {
				msg = msg[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("⚠ %s\n", msg))
		}
		if len(report.Warnings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more warnings\n", len(report.Warnings)-maxItemsToShow))
		}
	}

	p.printBox("VALIDATION REPORT", strings.TrimSuffix(sb.String(), "\n"))
}
