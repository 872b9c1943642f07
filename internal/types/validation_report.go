package types

// ValidationReport summarizes how a compiled record set measures up against
// roster-size expectations. Errors mean the dataset should not be treated as
// authoritative; warnings are informational. Whether to halt an export on
// errors is the caller's policy, not the validator's.
type ValidationReport struct {
	TotalPlayers           int                   `json:"total_players"`
	UniquePlayers          int                   `json:"unique_players"`
	TeamsProcessed         int                   `json:"teams_processed"`
	TeamsFailed            int                   `json:"teams_failed"`
	ExpectedTotal          int                   `json:"expected_total"`
	MeetsExpectation       bool                  `json:"meets_expectation"`
	PlayersByTeam          map[string]int        `json:"players_by_team"`
	PlayersByPositionGroup map[PositionGroup]int `json:"players_by_position_group"`
	Warnings               []string              `json:"warnings"`
	Errors                 []string              `json:"errors"`
}

// HasErrors reports whether any error-level finding was recorded.
func (r *ValidationReport) HasErrors() bool {
	return len(r.Errors) > 0
}
