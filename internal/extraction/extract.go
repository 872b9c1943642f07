// Package extraction converts parsed depth chart documents into ordered
// position/player slots. Source markup is inconsistent (tables, heading
// lists, generic containers), so extraction degrades through a chain of
// strategies instead of assuming one schema.
package extraction

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

const (
	// maxHeaderLen is the longest text still treated as a position header
	// cell by the primary strategy.
	maxHeaderLen = 4
	// maxSectionHeaderLen allows slightly longer labels in heading-based
	// layouts ("OLB", "ILB", plus padding the markup sometimes carries).
	maxSectionHeaderLen = 8
	// minCellLen filters out stray punctuation and whitespace artifacts.
	minCellLen = 3
)

// UnknownPosition is the synthetic label for slots found by the generic
// table fallback, which carries no position headers at all.
const UnknownPosition = "UNK"

// Slot is one extracted player-text occurrence: a position label, the
// zero-based depth index within that position, and the raw cell text.
// Slice order is document order, which downstream treats as depth order.
type Slot struct {
	Position   string
	DepthIndex int
	RawText    string
}

// Strategy inspects a document and returns extracted slots, or nil to pass
// to the next strategy in the chain.
type Strategy func(doc *goquery.Document) []Slot

// strategies is ordered from most to least structured. The first strategy
// returning a non-empty result wins.
var strategies = []Strategy{
	extractHeaderTables,
	extractHeadingSections,
	extractGenericTables,
}

// Extract runs the strategy chain over a document. A nil result means no
// strategy recognized anything; the caller treats that as a parse anomaly
// for the team, not a fatal error.
func Extract(doc *goquery.Document) []Slot {
	for _, strategy := range strategies {
		if slots := strategy(doc); len(slots) > 0 {
			return slots
		}
	}
	return nil
}

// extractHeaderTables walks table rows looking for short all-caps header
// cells. Each header opens a position section; the data cells that follow
// belong to it at incrementing depth until the next header.
func extractHeaderTables(doc *goquery.Document) []Slot {
	var slots []Slot

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		position := ""
		depth := 0

		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			if header := row.Find("th").First(); header.Length() > 0 {
				text := strings.TrimSpace(header.Text())
				if isPositionHeader(text, maxHeaderLen) {
					position = text
					depth = 0
					return
				}
			}
			if position == "" {
				return
			}
			row.Find("td").Each(func(_ int, cell *goquery.Selection) {
				slots, depth = appendCell(slots, position, depth, cellText(cell))
			})
		})
	})

	return slots
}

// extractHeadingSections handles layouts where positions are headings
// (h3/h4/strong) followed by a list of players.
func extractHeadingSections(doc *goquery.Document) []Slot {
	var slots []Slot

	doc.Find("h3, h4, strong").Each(func(_ int, heading *goquery.Selection) {
		text := strings.TrimSpace(heading.Text())
		if !isPositionHeader(text, maxSectionHeaderLen) {
			return
		}

		sibling := heading.Next()
		if sibling.Length() == 0 {
			return
		}

		items := sibling.Find("li")
		if items.Length() == 0 {
			items = sibling.Find("span")
		}

		depth := 0
		items.Each(func(_ int, item *goquery.Selection) {
			slots, depth = appendCell(slots, text, depth, cellText(item))
		})
	})

	return slots
}

// extractGenericTables is the last resort: tables whose header row mentions
// position, depth, or player. Each data row becomes one slot under the
// synthetic UNK label.
func extractGenericTables(doc *goquery.Document) []Slot {
	var slots []Slot

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		if !looksLikeRosterTable(table) {
			return
		}
		depth := 0
		table.Find("tr").Each(func(i int, row *goquery.Selection) {
			if i == 0 {
				return // header row
			}
			cell := row.Find("td").First()
			if cell.Length() == 0 {
				return
			}
			slots, depth = appendCell(slots, UnknownPosition, depth, cellText(cell))
		})
	})

	return slots
}

// appendCell splits a raw cell into candidate player texts and appends one
// slot per candidate at incrementing depth. Multi-player cells separated by
// commas, bullets, or pipes yield several slots.
func appendCell(slots []Slot, position string, depth int, raw string) ([]Slot, int) {
	for _, candidate := range SplitCandidates(raw) {
		if len(candidate) < minCellLen {
			continue
		}
		slots = append(slots, Slot{Position: position, DepthIndex: depth, RawText: candidate})
		depth++
	}
	return slots, depth
}

// SplitCandidates splits a raw cell that may encode several players into
// trimmed sub-tokens. A cell with no separator yields itself.
func SplitCandidates(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '•' || r == '|'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// isPositionHeader reports whether text looks like a position label: short,
// non-empty, all-caps, and containing at least one letter.
func isPositionHeader(text string, maxLen int) bool {
	if text == "" || len(text) > maxLen {
		return false
	}
	hasLetter := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// looksLikeRosterTable checks the first row's header cells for roster-ish
// column names.
func looksLikeRosterTable(table *goquery.Selection) bool {
	found := false
	table.Find("tr").First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(cell.Text()))
		if strings.Contains(text, "position") || strings.Contains(text, "depth") || strings.Contains(text, "player") {
			found = true
		}
	})
	return found
}

// cellText extracts the trimmed text of a cell, collapsing inner runs of
// whitespace the way mixed inline markup tends to produce them.
func cellText(cell *goquery.Selection) string {
	return strings.Join(strings.Fields(cell.Text()), " ")
}
