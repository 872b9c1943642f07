// Package types provides type definitions for structured data used throughout the depth chart compiler.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"
)

// PositionGroup is the coarse classification of a position abbreviation.
type PositionGroup string

const (
	GroupOffense      PositionGroup = "Offense"
	GroupDefense      PositionGroup = "Defense"
	GroupSpecialTeams PositionGroup = "Special Teams"
	GroupUnknown      PositionGroup = "Unknown"
)

// Source identifies where a record was observed. Used only for merge precedence.
type Source string

const (
	// SourcePrimaryScrape marks records parsed from depth chart pages.
	SourcePrimaryScrape Source = "ESPN"
	// SourceBackupAPI marks records fetched from the roster API fallback.
	SourceBackupAPI Source = "ESPN_API"
)

// DepthLabels are the ordinal rank labels assigned by document order.
var DepthLabels = []string{"1st", "2nd", "3rd", "4th", "5th", "6th"}

// DepthUnknown is used when a source carries no depth ordering at all.
const DepthUnknown = "UNK"

// DepthLabel returns the rank label for a zero-based slot index,
// clamped to the last defined label.
func DepthLabel(index int) string {
	if index < 0 {
		return DepthUnknown
	}
	if index >= len(DepthLabels) {
		return DepthLabels[len(DepthLabels)-1]
	}
	return DepthLabels[index]
}

// PlayerRecord is the canonical unit produced by the pipeline: one observation
// of one player-slot from one source. Records are never mutated after creation.
type PlayerRecord struct {
	Name          string        `json:"name"`
	Team          string        `json:"team"`
	Position      string        `json:"position"`
	PositionGroup PositionGroup `json:"position_group"`
	DepthRank     string        `json:"depth"`
	InjuryStatus  string        `json:"injury_status"`
	Source        Source        `json:"source"`
	JerseyNumber  string        `json:"jersey_number,omitempty"`
	CapturedAt    time.Time     `json:"captured_at"`
}

// Key returns the identity triple used for deduplication across sources.
// Two records sharing this key describe the same player-slot.
func (r PlayerRecord) Key() string {
	return fmt.Sprintf("%s|%s|%s", r.Name, r.Team, r.Position)
}

// StatusActive is the default injury status when no status token is found.
const StatusActive = "Active"
