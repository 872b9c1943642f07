// Package teams holds the fixed 32-team NFL table and lookup helpers.
// The set is closed: any identifier outside it is rejected before a fetch
// is ever attempted.
package teams

import "sort"

// Team describes one NFL franchise and the identifiers the sources use for it.
type Team struct {
	Code  string // stable team code, e.g. "KC"
	Slug  string // ESPN URL slug, e.g. "kc"
	APIID string // ESPN site API team id, e.g. "12"
	Name  string // full franchise name
}

// table maps team code to its source identifiers. Codes are the canonical
// 32-element set; everything downstream keys on Code.
var table = map[string]Team{
	"ARI": {Code: "ARI", Slug: "ari", APIID: "22", Name: "Arizona Cardinals"},
	"ATL": {Code: "ATL", Slug: "atl", APIID: "1", Name: "Atlanta Falcons"},
	"BAL": {Code: "BAL", Slug: "bal", APIID: "33", Name: "Baltimore Ravens"},
	"BUF": {Code: "BUF", Slug: "buf", APIID: "2", Name: "Buffalo Bills"},
	"CAR": {Code: "CAR", Slug: "car", APIID: "29", Name: "Carolina Panthers"},
	"CHI": {Code: "CHI", Slug: "chi", APIID: "3", Name: "Chicago Bears"},
	"CIN": {Code: "CIN", Slug: "cin", APIID: "4", Name: "Cincinnati Bengals"},
	"CLE": {Code: "CLE", Slug: "cle", APIID: "5", Name: "Cleveland Browns"},
	"DAL": {Code: "DAL", Slug: "dal", APIID: "6", Name: "Dallas Cowboys"},
	"DEN": {Code: "DEN", Slug: "den", APIID: "7", Name: "Denver Broncos"},
	"DET": {Code: "DET", Slug: "det", APIID: "8", Name: "Detroit Lions"},
	"GB":  {Code: "GB", Slug: "gb", APIID: "9", Name: "Green Bay Packers"},
	"HOU": {Code: "HOU", Slug: "hou", APIID: "34", Name: "Houston Texans"},
	"IND": {Code: "IND", Slug: "ind", APIID: "11", Name: "Indianapolis Colts"},
	"JAX": {Code: "JAX", Slug: "jax", APIID: "30", Name: "Jacksonville Jaguars"},
	"KC":  {Code: "KC", Slug: "kc", APIID: "12", Name: "Kansas City Chiefs"},
	"LAC": {Code: "LAC", Slug: "lac", APIID: "24", Name: "Los Angeles Chargers"},
	"LAR": {Code: "LAR", Slug: "lar", APIID: "14", Name: "Los Angeles Rams"},
	"LV":  {Code: "LV", Slug: "lv", APIID: "13", Name: "Las Vegas Raiders"},
	"MIA": {Code: "MIA", Slug: "mia", APIID: "15", Name: "Miami Dolphins"},
	"MIN": {Code: "MIN", Slug: "min", APIID: "16", Name: "Minnesota Vikings"},
	"NE":  {Code: "NE", Slug: "ne", APIID: "17", Name: "New England Patriots"},
	"NO":  {Code: "NO", Slug: "no", APIID: "18", Name: "New Orleans Saints"},
	"NYG": {Code: "NYG", Slug: "nyg", APIID: "19", Name: "New York Giants"},
	"NYJ": {Code: "NYJ", Slug: "nyj", APIID: "20", Name: "New York Jets"},
	"PHI": {Code: "PHI", Slug: "phi", APIID: "21", Name: "Philadelphia Eagles"},
	"PIT": {Code: "PIT", Slug: "pit", APIID: "23", Name: "Pittsburgh Steelers"},
	"SF":  {Code: "SF", Slug: "sf", APIID: "25", Name: "San Francisco 49ers"},
	"SEA": {Code: "SEA", Slug: "sea", APIID: "26", Name: "Seattle Seahawks"},
	"TB":  {Code: "TB", Slug: "tb", APIID: "27", Name: "Tampa Bay Buccaneers"},
	"TEN": {Code: "TEN", Slug: "ten", APIID: "10", Name: "Tennessee Titans"},
	"WAS": {Code: "WAS", Slug: "was", APIID: "28", Name: "Washington Commanders"},
}

// Count is the number of teams in the league.
const Count = 32

// Lookup returns the team for a code, if it is one of the 32 known codes.
func Lookup(code string) (Team, bool) {
	t, ok := table[code]
	return t, ok
}

// IsValid reports whether code is one of the 32 known team codes.
func IsValid(code string) bool {
	_, ok := table[code]
	return ok
}

// Codes returns all 32 team codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
