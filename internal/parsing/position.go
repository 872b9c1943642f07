package parsing

import (
	"strings"

	"github.com/jonathan/depthchart-compiler/internal/types"
)

// positionGroups maps position abbreviations to their group. The table is
// closed: codes outside it classify as Unknown, never as Offense or Defense
// by default.
var positionGroups = map[string]types.PositionGroup{
	// Offense
	"QB": types.GroupOffense, "RB": types.GroupOffense, "FB": types.GroupOffense,
	"WR": types.GroupOffense, "TE": types.GroupOffense,
	"LT": types.GroupOffense, "LG": types.GroupOffense, "C": types.GroupOffense,
	"RG": types.GroupOffense, "RT": types.GroupOffense,
	"OL": types.GroupOffense, "OT": types.GroupOffense, "OG": types.GroupOffense, "G": types.GroupOffense,
	// Defense
	"DE": types.GroupDefense, "DT": types.GroupDefense, "NT": types.GroupDefense,
	"LB": types.GroupDefense, "OLB": types.GroupDefense, "MLB": types.GroupDefense, "ILB": types.GroupDefense,
	"CB": types.GroupDefense, "S": types.GroupDefense, "FS": types.GroupDefense, "SS": types.GroupDefense,
	"DB": types.GroupDefense, "DL": types.GroupDefense,
	// Special teams
	"K": types.GroupSpecialTeams, "P": types.GroupSpecialTeams, "PK": types.GroupSpecialTeams,
	"H": types.GroupSpecialTeams, "LS": types.GroupSpecialTeams,
	"PR": types.GroupSpecialTeams, "KR": types.GroupSpecialTeams,
}

// ClassifyPosition maps a position abbreviation to its position group.
// Multi-position labels like "WR/TE" keep only the first token.
func ClassifyPosition(position string) types.PositionGroup {
	pos := strings.ToUpper(strings.TrimSpace(position))
	if slash := strings.Index(pos, "/"); slash >= 0 {
		pos = strings.TrimSpace(pos[:slash])
	}
	if group, ok := positionGroups[pos]; ok {
		return group
	}
	return types.GroupUnknown
}
