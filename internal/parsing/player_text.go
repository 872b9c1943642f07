// Package parsing extracts player names, injury statuses, and position groups
// from the freeform text printed by depth chart sources.
package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/depthchart-compiler/internal/types"
)

// statusCodes is the closed set of injury/status tokens recognized when they
// trail a name as a bare word. Compared case-insensitively.
var statusCodes = map[string]struct{}{
	"Q":            {},
	"O":            {},
	"D":            {},
	"IR":           {},
	"PUP":          {},
	"SUS":          {},
	"OUT":          {},
	"QUESTIONABLE": {},
	"DOUBTFUL":     {},
	"PROBABLE":     {},
	"GT":           {},
	"ILLNESS":      {},
}

var (
	// "Travis Kelce (Q)": status is the entire parenthesized span.
	parenStatusRe = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)\s*$`)
	// "Mike Evans - OUT": dash-like separator followed by an uppercase-only
	// token. Hyphenated surnames keep mixed case and never match.
	dashStatusRe = regexp.MustCompile(`^(.+?)\s*[-–—]\s*([A-Z]+)$`)
)

// textRule is one step of the player-text grammar: it either extracts a
// (name, status) pair or declines.
type textRule func(text string) (name, status string, ok bool)

// playerTextRules is evaluated in order and the first match wins. The order
// is load-bearing: the patterns overlap, and the parenthesized form must be
// tried before the dash and trailing-token forms.
var playerTextRules = []textRule{
	parseParenStatus,
	parseDashStatus,
	parseTrailingStatus,
}

// ParsePlayerText splits a raw depth chart cell into a player name and an
// injury status. Text with no status marker is a healthy player.
func ParsePlayerText(raw string) (name, status string) {
	text := strings.TrimSpace(raw)
	for _, rule := range playerTextRules {
		if name, status, ok := rule(text); ok {
			return name, status
		}
	}
	return text, types.StatusActive
}

func parseParenStatus(text string) (string, string, bool) {
	m := parenStatusRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

func parseDashStatus(text string) (string, string, bool) {
	m := dashStatusRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

func parseTrailingStatus(text string) (string, string, bool) {
	idx := strings.LastIndexAny(text, " \t")
	if idx <= 0 {
		return "", "", false
	}
	head := strings.TrimSpace(text[:idx])
	tail := strings.TrimSpace(text[idx:])
	if head == "" || tail == "" {
		return "", "", false
	}
	if _, ok := statusCodes[strings.ToUpper(tail)]; !ok {
		return "", "", false
	}
	return head, tail, true
}
